package inference

import (
	"context"
	"image"
)

// Processor encodes decoded inputs into the model's expected tensor
// representation. Tokenization and image preprocessing internals are
// opaque to this service.
type Processor interface {
	EncodeText(ctx context.Context, texts []string) (*Tensor, error)
	EncodeImages(ctx context.Context, images []image.Image) (*Tensor, error)
}

// Model runs the forward pass over an encoded batch. Execution is
// inference-only: no gradient bookkeeping is kept by the collaborator.
type Model interface {
	Forward(ctx context.Context, batch *Tensor) (*Tensor, error)
}

// Logger defines the interface for logging operations in the inference
// package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}
