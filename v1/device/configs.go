package device

import "os"

// Config defines the configuration structure for memory reclamation.
type Config struct {
	// FreeOSMemory controls whether a reclamation pass also forces the Go
	// runtime to return unused memory to the operating system. Disable
	// only when reclamation latency matters more than resident set size.
	FreeOSMemory bool `yaml:"free_os_memory" envconfig:"DEVICE_FREE_OS_MEMORY"`
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	return Config{
		FreeOSMemory: os.Getenv("DEVICE_FREE_OS_MEMORY") != "false",
	}
}
