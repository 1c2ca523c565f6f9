package device

import "context"

// Allocator is the device-side memory interface. It instructs the device
// allocator to release cached-but-unused memory back to the system
// allocator.
//
// The concrete implementation lives with the inference runtime client.
type Allocator interface {
	ReleaseCached(ctx context.Context) error
}

// Logger defines the interface for logging operations in the device package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}
