package server

import (
	"os"
	"strconv"
)

// DefaultAddress is used when no listen address is configured.
const DefaultAddress = ":8000"

// DefaultMaxBodyBytes bounds request bodies. Image payloads are large;
// 64 MiB comfortably fits a batch of base64-encoded page scans.
const DefaultMaxBodyBytes = 64 << 20

// Config defines the configuration structure for the HTTP server.
type Config struct {
	// Address determines the network address the server listens on.
	Address string `yaml:"address" envconfig:"SERVER_ADDRESS"`

	// MaxBodyBytes caps the accepted request body size.
	MaxBodyBytes int64 `yaml:"max_body_bytes" envconfig:"SERVER_MAX_BODY_BYTES"`
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = DefaultAddress
	}

	maxBody := int64(DefaultMaxBodyBytes)
	if v := os.Getenv("SERVER_MAX_BODY_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			maxBody = n
		}
	}

	return Config{
		Address:      address,
		MaxBodyBytes: maxBody,
	}
}
