// Package tracer provides distributed tracing for the embedding service
// using OpenTelemetry.
//
// The HTTP boundary opens a span per embedding request; errors are
// recorded on spans so failed requests stand out in the trace backend.
// Span export over OTLP/HTTP is disabled by default and enabled with
// TRACER_ENABLE_EXPORT=true, in which case the standard
// OTEL_EXPORTER_OTLP_* environment variables configure the exporter.
//
// # Fx
//
// FXModule provides *Tracer and shuts down the provider (flushing any
// pending spans) on application stop.
package tracer
