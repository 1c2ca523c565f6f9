package device

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type nopLogger struct{}

func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Debug(string, error, ...map[string]interface{}) {}
func (nopLogger) Warn(string, error, ...map[string]interface{})  {}
func (nopLogger) Error(string, error, ...map[string]interface{}) {}
func (nopLogger) Fatal(string, error, ...map[string]interface{}) {}

type fakeAllocator struct {
	calls int
	err   error
}

func (f *fakeAllocator) ReleaseCached(ctx context.Context) error {
	f.calls++
	return f.err
}

type countingObserver struct {
	reclaims int
}

func (c *countingObserver) IncrementReclaims() {
	c.reclaims++
}

func TestReclaim_CallsAllocatorAndObserver(t *testing.T) {
	alloc := &fakeAllocator{}
	obs := &countingObserver{}
	r := NewMemoryReclaimer(alloc, Config{FreeOSMemory: false}, nopLogger{}, obs)

	r.Reclaim(context.Background())
	r.Reclaim(context.Background())

	if alloc.calls != 2 {
		t.Errorf("expected 2 allocator calls, got %d", alloc.calls)
	}
	if obs.reclaims != 2 {
		t.Errorf("expected 2 observed reclaims, got %d", obs.reclaims)
	}
}

func TestReclaim_AllocatorFailureSwallowed(t *testing.T) {
	alloc := &fakeAllocator{err: errors.New("allocator unreachable")}
	r := NewMemoryReclaimer(alloc, Config{FreeOSMemory: false}, nopLogger{}, nil)

	// Must not panic or propagate.
	r.Reclaim(context.Background())

	if alloc.calls != 1 {
		t.Errorf("expected 1 allocator call, got %d", alloc.calls)
	}
}

func TestIsOutOfMemory_Sentinel(t *testing.T) {
	err := fmt.Errorf("forward pass: %w", ErrOutOfMemory)
	if !IsOutOfMemory(err) {
		t.Error("expected wrapped sentinel to match")
	}
}

func TestIsOutOfMemory_MessageMatch(t *testing.T) {
	err := errors.New("RuntimeError: CUDA Out of Memory. Tried to allocate 2.00 GiB")
	if !IsOutOfMemory(err) {
		t.Error("expected message match")
	}
}

func TestIsOutOfMemory_Negative(t *testing.T) {
	if IsOutOfMemory(nil) {
		t.Error("nil must not match")
	}
	if IsOutOfMemory(errors.New("connection refused")) {
		t.Error("unrelated error must not match")
	}
}

func TestGuard_MutualExclusion(t *testing.T) {
	g := NewGuard()

	if err := g.Acquire(context.Background()); err != nil {
		t.Fatalf("first acquire failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := g.Acquire(ctx); err == nil {
		t.Fatal("second acquire must block until release")
	}

	g.Release()

	if err := g.Acquire(context.Background()); err != nil {
		t.Fatalf("acquire after release failed: %v", err)
	}
	g.Release()
}
