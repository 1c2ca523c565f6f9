package tracer

import "os"

// Config defines the configuration structure for the tracer.
type Config struct {
	// ServiceName identifies this service in exported traces.
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv is the deployment environment tag (e.g. "production").
	AppEnv string `yaml:"app_env" envconfig:"APP_ENV"`

	// EnableExport controls whether spans are exported over OTLP/HTTP.
	// When false the provider only propagates context.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	service := os.Getenv("TRACER_SERVICE_NAME")
	if service == "" {
		service = "multimodal-embeddings"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	return Config{
		ServiceName:  service,
		AppEnv:       env,
		EnableExport: os.Getenv("TRACER_ENABLE_EXPORT") == "true",
	}
}
