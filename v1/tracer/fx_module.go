package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/multimodal-embeddings/v1/logger"
)

// FXModule wires the tracer into Fx.
//
// It provides:
//   - Config    (NewConfig)
//   - *Tracer   (NewClient)
//
// and registers a shutdown hook that flushes pending spans.
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewConfig,
		func(l *logger.Logger) Logger { return l },
		NewClient,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle registers shutdown hooks for the tracer with the
// FX lifecycle, ensuring traces are flushed to exporters before the
// application terminates.
func RegisterTracerLifecycle(lc fx.Lifecycle, t *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if t.tracer == nil {
				return nil
			}
			return t.tracer.Shutdown(ctx)
		},
	})
}
