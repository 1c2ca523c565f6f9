// Command server runs the multimodal embedding inference service.
//
// Configuration is environment-driven; see each package's Config for the
// recognized variables. The process loads the model at startup and serves
// POST /embeddings until terminated.
package main

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/multimodal-embeddings/v1/codec"
	"github.com/Aleph-Alpha/multimodal-embeddings/v1/device"
	"github.com/Aleph-Alpha/multimodal-embeddings/v1/inference"
	"github.com/Aleph-Alpha/multimodal-embeddings/v1/logger"
	"github.com/Aleph-Alpha/multimodal-embeddings/v1/metrics"
	"github.com/Aleph-Alpha/multimodal-embeddings/v1/pipeline"
	"github.com/Aleph-Alpha/multimodal-embeddings/v1/server"
	"github.com/Aleph-Alpha/multimodal-embeddings/v1/tracer"
)

func main() {
	app := fx.New(
		logger.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		codec.FXModule,
		device.FXModule,
		inference.FXModule,
		pipeline.FXModule,
		server.FXModule,
	)

	app.Run()
}
