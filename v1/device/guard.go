package device

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Guard serializes access to the shared compute device.
//
// The device is a single shared resource across all concurrent requests in
// the process; no two inference calls may touch overlapping device memory
// unsynchronized. Guard makes device access mutually exclusive while still
// honoring context cancellation while waiting.
type Guard struct {
	sem *semaphore.Weighted
}

// NewGuard constructs a Guard admitting one holder at a time.
func NewGuard() *Guard {
	return &Guard{sem: semaphore.NewWeighted(1)}
}

// Acquire blocks until the device is available or the context is done.
func (g *Guard) Acquire(ctx context.Context) error {
	return g.sem.Acquire(ctx, 1)
}

// Release returns the device to the pool. Must be called exactly once per
// successful Acquire.
func (g *Guard) Release() {
	g.sem.Release(1)
}
