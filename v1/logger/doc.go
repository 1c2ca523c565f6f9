// Package logger provides structured JSON logging for the embedding
// service, built on Uber's Zap.
//
// All service packages log through the wrapper methods
// (Info/Debug/Warn/Error/Fatal), which take a message, an optional error
// and optional field maps:
//
//	log.Info("batch processed", nil, map[string]interface{}{
//	    "input_type": "text",
//	    "batch_size": 4,
//	})
//
// Packages that need logging declare a local Logger interface with this
// method set instead of importing the concrete type, so tests can swap in
// a fake.
//
// # Configuration
//
//	ZAP_LOGGER_LEVEL     debug | info | warning | error (default: info)
//	LOGGER_SERVICE_NAME  service label on every entry
//
// # Fx
//
// FXModule provides *Logger and flushes buffered entries on shutdown.
package logger
