package inference

import (
	"fmt"
	"os"
	"strconv"
)

// RUNTIME_ENDPOINT must point to the root of the model runtime sidecar
// (no path appended). The client appends paths automatically, so callers
// only need to supply the host base URL.

type Config struct {
	// Runtime endpoint and auth
	Endpoint     string // Base URL of the model runtime sidecar
	ServiceToken string // Internal service token, optional
	ModelName    string // Checkpoint to load at startup
	HTTPTimeoutS int    // HTTP timeout seconds (default 120)
}

// DefaultModelName is the multilingual multimodal checkpoint served by
// default.
const DefaultModelName = "tsystems/colqwen2.5-3b-multilingual-v1.0"

// NewConfig reads from environment variables.
func NewConfig() *Config {
	timeout := 120
	if v := os.Getenv("RUNTIME_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	model := os.Getenv("RUNTIME_MODEL_NAME")
	if model == "" {
		model = DefaultModelName
	}

	return &Config{
		Endpoint:     os.Getenv("RUNTIME_ENDPOINT"),
		ServiceToken: os.Getenv("RUNTIME_SERVICE_TOKEN"),
		ModelName:    model,
		HTTPTimeoutS: timeout,
	}
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("inference: missing RUNTIME_ENDPOINT")
	}
	if c.ModelName == "" {
		return fmt.Errorf("inference: missing RUNTIME_MODEL_NAME")
	}
	return nil
}
