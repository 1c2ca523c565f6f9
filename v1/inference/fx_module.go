package inference

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/multimodal-embeddings/v1/device"
	"github.com/Aleph-Alpha/multimodal-embeddings/v1/logger"
)

// FXModule wires the inference system into Fx.
//
// It provides:
//   - *Config             (NewConfig)
//   - *Runtime            (NewRuntime)
//   - Processor, Model    (the *Runtime instance)
//   - device.Allocator    (the *Runtime instance)
//   - *Step               (NewStep)
//
// and registers a startup hook that loads the model onto the device.
var FXModule = fx.Module("inference",
	fx.Provide(
		NewConfig,
		func(l *logger.Logger) Logger { return l },
		NewRuntime,
		func(r *Runtime) Processor { return r },
		func(r *Runtime) Model { return r },
		func(r *Runtime) device.Allocator { return r },
		NewStep,
	),
	fx.Invoke(RegisterModelLifecycle),
)

// RegisterModelLifecycle loads the model at application startup. Model
// loading is a one-time, fallible step: if it fails the application does
// not come up, instead of failing every request later.
func RegisterModelLifecycle(lc fx.Lifecycle, r *Runtime) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return r.LoadModel(ctx)
		},
	})
}
