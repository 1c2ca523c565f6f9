package pipeline

import (
	"context"

	"github.com/Aleph-Alpha/multimodal-embeddings/v1/codec"
)

// Inferencer produces raw embedding vectors for a batch of decoded items,
// order-preserving and 1:1 with the batch. Errors carry a failure
// classification. Implemented by inference.Step.
type Inferencer interface {
	Infer(ctx context.Context, items []codec.Item, inputType codec.InputType) ([][]float32, error)
}

// Reclaimer releases device memory between processing steps. Implemented
// by device.MemoryReclaimer.
type Reclaimer interface {
	Reclaim(ctx context.Context)
}

// Observer is notified about pipeline events. The metrics collector
// satisfies it; a nil observer disables collection.
type Observer interface {
	IncrementBatches(inputType string)
	IncrementOOMFallbacks()
	IncrementItemsDropped(count int)
}

// Logger defines the interface for logging operations in the pipeline
// package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}
