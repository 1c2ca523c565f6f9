package codec

import (
	"bytes"
	"encoding/base64"
	"image"
	"strings"

	// Raster formats accepted for image inputs.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/Aleph-Alpha/multimodal-embeddings/v1/failure"
)

// Decoder turns raw request strings into decoded items.
type Decoder struct{}

// NewDecoder constructs a Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// ParseInputType validates a request's input_type value.
func ParseInputType(raw string) (InputType, error) {
	switch InputType(raw) {
	case InputText:
		return InputText, nil
	case InputImage:
		return InputImage, nil
	default:
		return "", failure.Newf(failure.BadInput, "invalid input_type %q", raw)
	}
}

// Decode decodes a single input string according to the input type.
//
// Text requires no decoding. Images may carry a data URI prefix; the
// payload after the comma is base64 decoded and parsed as a raster image.
// Every failure is classified as BadInput.
func (d *Decoder) Decode(raw string, inputType InputType) (Item, error) {
	switch inputType {
	case InputText:
		return TextItem{Text: raw}, nil
	case InputImage:
		img, err := d.decodeImage(raw)
		if err != nil {
			return nil, err
		}
		return ImageItem{Image: img}, nil
	default:
		return nil, failure.Newf(failure.BadInput, "invalid input_type %q", inputType)
	}
}

func (d *Decoder) decodeImage(raw string) (image.Image, error) {
	payload := raw

	if strings.HasPrefix(payload, "data:") {
		_, rest, found := strings.Cut(payload, ",")
		if !found {
			return nil, failure.New(failure.BadInput, "malformed data URI string for image decoding")
		}
		payload = rest
	}

	imageBytes, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, failure.Wrap(failure.BadInput, err, "failed to decode base64 image")
	}

	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, failure.Wrap(failure.BadInput, err, "decoded bytes are not a valid image")
	}

	return img, nil
}
