package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the logger into Fx.
//
// It provides:
//   - Config    (NewConfig)
//   - *Logger   (NewLoggerClient)
//
// and registers a shutdown hook that flushes buffered log entries.
var FXModule = fx.Module("logger",
	fx.Provide(
		NewConfig,
		NewLoggerClient,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle handles cleanup (sync) of the Zap logger on
// application shutdown so that no buffered entries are lost.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Zap.Sync() // flushes any buffered logs
		},
	})
}
