package inference

import (
	"context"
	"image"

	"github.com/Aleph-Alpha/multimodal-embeddings/v1/codec"
	"github.com/Aleph-Alpha/multimodal-embeddings/v1/device"
	"github.com/Aleph-Alpha/multimodal-embeddings/v1/failure"
)

// Step produces raw embedding vectors for a batch of decoded inputs.
//
// A Step holds no per-request state and is safe for concurrent use; the
// device guard serializes the actual compute.
type Step struct {
	model     Model
	processor Processor
	guard     *device.Guard
	logger    Logger
}

// NewStep constructs a Step around the model/processor pair.
func NewStep(model Model, processor Processor, guard *device.Guard, logger Logger) *Step {
	return &Step{
		model:     model,
		processor: processor,
		guard:     guard,
		logger:    logger,
	}
}

// Infer encodes the batch, runs the forward pass and returns one vector
// per item, order-preserving. All tensor references are released before
// returning.
//
// Device out-of-memory conditions are classified as
// failure.ResourceExhausted; any other model or runtime error as
// failure.Internal.
func (s *Step) Infer(ctx context.Context, items []codec.Item, inputType codec.InputType) ([][]float32, error) {
	if len(items) == 0 {
		return nil, nil
	}

	if err := s.guard.Acquire(ctx); err != nil {
		return nil, failure.Wrap(failure.Internal, err, "waiting for device access")
	}
	defer s.guard.Release()

	batch, err := s.encode(ctx, items, inputType)
	if err != nil {
		return nil, classify(err, "encoding batch failed")
	}
	defer batch.Release()

	out, err := s.model.Forward(ctx, batch)
	if err != nil {
		return nil, classify(err, "model forward failed")
	}
	defer out.Release()

	rows := out.Rows()
	if len(rows) != len(items) {
		return nil, failure.Newf(failure.Internal, "model returned %d vectors for %d inputs", len(rows), len(items))
	}

	return rows, nil
}

// encode dispatches the homogeneous batch to the matching processor call.
func (s *Step) encode(ctx context.Context, items []codec.Item, inputType codec.InputType) (*Tensor, error) {
	switch inputType {
	case codec.InputText:
		texts := make([]string, 0, len(items))
		for _, item := range items {
			text, ok := item.(codec.TextItem)
			if !ok {
				return nil, failure.Newf(failure.Internal, "text batch contains %T", item)
			}
			texts = append(texts, text.Text)
		}
		return s.processor.EncodeText(ctx, texts)

	case codec.InputImage:
		images := make([]image.Image, 0, len(items))
		for _, item := range items {
			img, ok := item.(codec.ImageItem)
			if !ok {
				return nil, failure.Newf(failure.Internal, "image batch contains %T", item)
			}
			images = append(images, img.Image)
		}
		return s.processor.EncodeImages(ctx, images)

	default:
		return nil, failure.Newf(failure.BadInput, "invalid input_type %q", inputType)
	}
}

// classify maps a collaborator error onto the failure taxonomy.
func classify(err error, detail string) error {
	if failure.IsBadInput(err) {
		return err
	}
	if device.IsOutOfMemory(err) {
		return failure.Wrap(failure.ResourceExhausted, err, detail)
	}
	return failure.Wrap(failure.Internal, err, detail)
}
