package codec

import "image"

// InputType selects how request inputs are interpreted and batched.
type InputType string

const (
	// InputText marks inputs as raw text passed straight to the processor.
	InputText InputType = "text"

	// InputImage marks inputs as base64 or data-URI encoded images.
	InputImage InputType = "image"
)

// Item is a single decoded input, consumed immediately by the inference
// step and never persisted.
type Item interface {
	isItem()
}

// TextItem is a validated text input.
type TextItem struct {
	Text string
}

func (TextItem) isItem() {}

// ImageItem is a decoded raster image input.
type ImageItem struct {
	Image image.Image
}

func (ImageItem) isItem() {}
