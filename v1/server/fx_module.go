package server

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/multimodal-embeddings/v1/logger"
	"github.com/Aleph-Alpha/multimodal-embeddings/v1/metrics"
	"github.com/Aleph-Alpha/multimodal-embeddings/v1/pipeline"
)

// FXModule wires the HTTP server into Fx.
//
// It provides:
//   - Config     (NewConfig)
//   - *Server    (NewServer)
//
// and registers lifecycle hooks that start and stop the listener.
var FXModule = fx.Module("server",
	fx.Provide(
		NewConfig,
		func(o *pipeline.Orchestrator) EmbeddingsProducer { return o },
		func(l *logger.Logger) Logger { return l },
		func(m *metrics.Metrics) RequestObserver { return m },
		NewServer,
	),
	fx.Invoke(RegisterServerLifecycle),
)

// RegisterServerLifecycle manages the startup and shutdown lifecycle of
// the embedding HTTP server.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting embedding server", nil, map[string]interface{}{
					"address": s.HTTP.Addr,
				})

				if err := s.HTTP.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("error starting embedding server", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down embedding server", nil, nil)
			return s.HTTP.Shutdown(ctx)
		},
	})
}
