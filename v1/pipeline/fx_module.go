package pipeline

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/multimodal-embeddings/v1/device"
	"github.com/Aleph-Alpha/multimodal-embeddings/v1/inference"
	"github.com/Aleph-Alpha/multimodal-embeddings/v1/logger"
	"github.com/Aleph-Alpha/multimodal-embeddings/v1/metrics"
)

// FXModule wires the pipeline into Fx.
//
// It provides:
//   - Config           (NewConfig)
//   - *Planner         (NewPlanner)
//   - *Recovery        (NewRecovery)
//   - *Orchestrator    (NewOrchestrator)
//
// Requires *codec.Decoder, *inference.Step, *device.MemoryReclaimer,
// *logger.Logger and *metrics.Metrics in the container.
var FXModule = fx.Module("pipeline",
	fx.Provide(
		NewConfig,
		NewPlanner,
		func(s *inference.Step) Inferencer { return s },
		func(r *device.MemoryReclaimer) Reclaimer { return r },
		func(l *logger.Logger) Logger { return l },
		func(m *metrics.Metrics) Observer { return m },
		NewRecovery,
		NewOrchestrator,
	),
)
