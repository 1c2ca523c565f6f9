package device

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/multimodal-embeddings/v1/logger"
	"github.com/Aleph-Alpha/multimodal-embeddings/v1/metrics"
)

// FXModule wires device memory management into Fx.
//
// It provides:
//   - Config              (NewConfig)
//   - *Guard              (NewGuard)
//   - *MemoryReclaimer    (NewMemoryReclaimer)
//
// An Allocator implementation must be available in the container; the
// inference runtime client provides one.
var FXModule = fx.Module("device",
	fx.Provide(
		NewConfig,
		NewGuard,
		func(l *logger.Logger) Logger { return l },
		func(m *metrics.Metrics) ReclaimObserver { return m },
		NewMemoryReclaimer,
	),
)
