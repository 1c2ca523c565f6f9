package pipeline

import (
	"context"

	"github.com/Aleph-Alpha/multimodal-embeddings/v1/codec"
	"github.com/Aleph-Alpha/multimodal-embeddings/v1/failure"
)

// requestState tracks a request through the orchestrator. Completed and
// Failed are terminal; no request transitions out of them.
type requestState string

const (
	stateValidating requestState = "validating"
	stateProcessing requestState = "processing"
	stateCompleted  requestState = "completed"
	stateFailed     requestState = "failed"
)

// Orchestrator drives the full request: it validates the input, iterates
// planned batches, invokes recovery, and accumulates results in input
// order.
//
// An Orchestrator is stateless across requests; the result accumulator is
// owned by a single Process call and never shared.
type Orchestrator struct {
	planner   *Planner
	decoder   *codec.Decoder
	recovery  *Recovery
	reclaimer Reclaimer
	logger    Logger
	observer  Observer
}

// NewOrchestrator constructs an Orchestrator. The observer may be nil.
func NewOrchestrator(planner *Planner, decoder *codec.Decoder, recovery *Recovery, reclaimer Reclaimer, logger Logger, observer Observer) *Orchestrator {
	return &Orchestrator{
		planner:   planner,
		decoder:   decoder,
		recovery:  recovery,
		reclaimer: reclaimer,
		logger:    logger,
		observer:  observer,
	}
}

// Process runs one embedding request to a terminal state.
//
// Empty inputs complete immediately with an empty result and no device
// calls. An unrecognized input type fails with BadInput before any device
// call. The returned error, when non-nil, is always failure-classified.
func (o *Orchestrator) Process(ctx context.Context, req Request) (*Result, error) {
	state := stateValidating

	if len(req.Inputs) == 0 {
		return &Result{Embeddings: [][]float32{}}, nil
	}

	inputType, err := codec.ParseInputType(req.InputType)
	if err != nil {
		return nil, o.fail(ctx, state, err)
	}

	state = stateProcessing
	result := &Result{
		Embeddings: make([][]float32, 0, len(req.Inputs)),
		Items:      make([]ItemStatus, len(req.Inputs)),
	}

	for batch := range o.planner.Plan(req.Inputs, inputType) {
		items := make([]codec.Item, len(batch.Inputs))
		for i, raw := range batch.Inputs {
			item, derr := o.decoder.Decode(raw, inputType)
			if derr != nil {
				return nil, o.fail(ctx, state, derr)
			}
			items[i] = item
		}

		if o.observer != nil {
			o.observer.IncrementBatches(string(inputType))
		}

		vectors, omitted, rerr := o.recovery.Run(ctx, items, inputType)
		if rerr != nil {
			return nil, o.fail(ctx, state, rerr)
		}

		o.accumulate(result, batch, vectors, omitted)

		o.logger.Debug("batch processed", nil, map[string]interface{}{
			"start":      batch.Start,
			"batch_size": len(batch.Inputs),
			"omitted":    len(omitted),
		})
	}

	state = stateCompleted
	o.logger.Debug("embedding request completed", nil, map[string]interface{}{
		"state":   string(state),
		"vectors": len(result.Embeddings),
	})

	if count := result.OmittedCount(); count > 0 {
		o.logger.Warn("request completed with omitted items", nil, map[string]interface{}{
			"omitted": count,
			"total":   len(req.Inputs),
		})
	}

	return result, nil
}

// accumulate extends the result with one batch outcome, keeping vectors in
// input order and recording per-item statuses against original indexes.
func (o *Orchestrator) accumulate(result *Result, batch Batch, vectors [][]float32, omitted []dropped) {
	omittedByIndex := make(map[int]string, len(omitted))
	for _, d := range omitted {
		omittedByIndex[d.index] = d.reason
	}

	for i := range batch.Inputs {
		index := batch.Start + i
		if reason, ok := omittedByIndex[i]; ok {
			result.Items[index] = ItemStatus{Index: index, OK: false, Reason: reason}
			continue
		}
		result.Items[index] = ItemStatus{Index: index, OK: true}
	}

	result.Embeddings = append(result.Embeddings, vectors...)
}

// fail transitions the request to its Failed terminal state: one more
// best-effort reclamation, then the classified error surfaces to the
// boundary.
func (o *Orchestrator) fail(ctx context.Context, from requestState, err error) error {
	o.reclaimer.Reclaim(ctx)
	o.logger.Error("embedding request failed", err, map[string]interface{}{
		"state": string(from),
		"kind":  failure.KindOf(err).String(),
	})
	return err
}
