package pipeline

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Aleph-Alpha/multimodal-embeddings/v1/codec"
)

// Batch size defaults, tuned to a 24 GB device running the default
// checkpoint. Images are far more memory-intensive per item than text and
// are never grouped by default.
const (
	DefaultTextBatchSize  = 4
	DefaultImageBatchSize = 1
)

// Config defines the batch sizing policy. Sizes are deployment-specific
// heuristics bound to the target device's memory budget, so they are
// injectable rather than hardcoded.
type Config struct {
	// TextBatchSize is the maximum number of text items per inference batch.
	TextBatchSize int `yaml:"text_batch_size" envconfig:"PIPELINE_TEXT_BATCH_SIZE"`

	// ImageBatchSize is the maximum number of image items per inference batch.
	ImageBatchSize int `yaml:"image_batch_size" envconfig:"PIPELINE_IMAGE_BATCH_SIZE"`
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	return Config{
		TextBatchSize:  envInt("PIPELINE_TEXT_BATCH_SIZE", DefaultTextBatchSize),
		ImageBatchSize: envInt("PIPELINE_IMAGE_BATCH_SIZE", DefaultImageBatchSize),
	}
}

// Validate ensures batch sizes are usable.
func (c Config) Validate() error {
	if c.TextBatchSize < 1 {
		return fmt.Errorf("pipeline: text batch size must be >= 1, got %d", c.TextBatchSize)
	}
	if c.ImageBatchSize < 1 {
		return fmt.Errorf("pipeline: image batch size must be >= 1, got %d", c.ImageBatchSize)
	}
	return nil
}

// sizeFor returns the window size for an input type.
func (c Config) sizeFor(inputType codec.InputType) int {
	if inputType == codec.InputImage {
		return c.ImageBatchSize
	}
	return c.TextBatchSize
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
