package pipeline

import (
	"context"

	"github.com/Aleph-Alpha/multimodal-embeddings/v1/codec"
	"github.com/Aleph-Alpha/multimodal-embeddings/v1/failure"
)

// Recovery wraps the inference step with out-of-memory detection and a
// degrade-to-singleton fallback.
//
// Out-of-memory at batch granularity is usually transient and
// batch-size-driven; retrying item by item uses the least possible memory
// footprint and maximizes the chance that the request still returns
// useful, if partial, results.
type Recovery struct {
	step      Inferencer
	reclaimer Reclaimer
	logger    Logger
	observer  Observer
}

// dropped records an item omitted during singleton fallback, with its
// index relative to the batch.
type dropped struct {
	index  int
	reason string
}

// NewRecovery constructs a Recovery. The observer may be nil.
func NewRecovery(step Inferencer, reclaimer Reclaimer, logger Logger, observer Observer) *Recovery {
	return &Recovery{
		step:      step,
		reclaimer: reclaimer,
		logger:    logger,
		observer:  observer,
	}
}

// Run infers the batch, degrading to singleton retries on device
// out-of-memory. Memory is reclaimed after every inference attempt,
// success or failure.
//
// Returned vectors are in batch order with dropped items omitted. The
// error is non-nil only for fatal failures: Internal errors (never
// retried) and out-of-memory at singleton granularity.
func (r *Recovery) Run(ctx context.Context, items []codec.Item, inputType codec.InputType) ([][]float32, []dropped, error) {
	vectors, err := r.step.Infer(ctx, items, inputType)
	if err == nil {
		r.reclaimer.Reclaim(ctx)
		return vectors, nil, nil
	}

	if !failure.IsResourceExhausted(err) {
		// Internal and BadInput propagate immediately, no retry.
		return nil, nil, err
	}

	// The failed attempt may have left partially allocated tensors behind.
	r.reclaimer.Reclaim(ctx)

	if len(items) <= 1 {
		// Already at the smallest possible footprint.
		return nil, nil, err
	}

	r.logger.Warn("device out of memory on batch, falling back to singleton processing", err, map[string]interface{}{
		"batch_size": len(items),
		"input_type": string(inputType),
	})
	if r.observer != nil {
		r.observer.IncrementOOMFallbacks()
	}

	return r.runSingletons(ctx, items, inputType)
}

// runSingletons retries each item of a failed batch independently.
func (r *Recovery) runSingletons(ctx context.Context, items []codec.Item, inputType codec.InputType) ([][]float32, []dropped, error) {
	var vectors [][]float32
	var omitted []dropped

	for i, item := range items {
		if ctx.Err() != nil {
			return nil, nil, failure.Wrap(failure.Internal, ctx.Err(), "request canceled during singleton fallback")
		}

		singleton, err := r.step.Infer(ctx, []codec.Item{item}, inputType)
		r.reclaimer.Reclaim(ctx)

		if err != nil {
			if failure.IsResourceExhausted(err) {
				// A single item exceeds the device budget; nothing left to
				// degrade to.
				return nil, nil, err
			}

			r.logger.Warn("dropping item after singleton failure", err, map[string]interface{}{
				"batch_index": i,
			})
			omitted = append(omitted, dropped{index: i, reason: failure.KindOf(err).String()})
			continue
		}

		vectors = append(vectors, singleton...)
	}

	if r.observer != nil && len(omitted) > 0 {
		r.observer.IncrementItemsDropped(len(omitted))
	}

	return vectors, omitted, nil
}
