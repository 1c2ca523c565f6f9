package device

import (
	"context"
	"runtime/debug"
)

// MemoryReclaimer releases device memory and forces allocator cleanup
// between processing steps.
//
// Reclaim is idempotent and best-effort: allocator failures are logged,
// never propagated, since a failed reclamation must not turn a successful
// batch into an error.
type MemoryReclaimer struct {
	allocator Allocator
	cfg       Config
	logger    Logger
	observer  ReclaimObserver
}

// ReclaimObserver is notified after every reclamation pass. The metrics
// collector satisfies it.
type ReclaimObserver interface {
	IncrementReclaims()
}

// NewMemoryReclaimer constructs a MemoryReclaimer. The observer may be nil.
func NewMemoryReclaimer(allocator Allocator, cfg Config, logger Logger, observer ReclaimObserver) *MemoryReclaimer {
	return &MemoryReclaimer{
		allocator: allocator,
		cfg:       cfg,
		logger:    logger,
		observer:  observer,
	}
}

// Reclaim instructs the device allocator to release cached-but-unused
// memory and triggers a generic host reclamation pass.
//
// Called after every batch and every singleton fallback attempt, success
// or failure. This is the only defense against cumulative fragmentation
// across many sequential batches within one long request.
func (r *MemoryReclaimer) Reclaim(ctx context.Context) {
	if err := r.allocator.ReleaseCached(ctx); err != nil {
		r.logger.Warn("device allocator release failed", err, nil)
	}

	if r.cfg.FreeOSMemory {
		debug.FreeOSMemory()
	}

	if r.observer != nil {
		r.observer.IncrementReclaims()
	}
}
