// Package metrics exposes Prometheus metrics for the embedding service.
//
// Each process owns an isolated registry wrapped with a constant
// service label and served at /metrics by a dedicated HTTP server.
//
// Built-in metrics cover the embedding pipeline:
//
//	requests_total{status}               processed requests by outcome
//	request_duration_seconds{endpoint}   request latency
//	batches_total{input_type}            inference batches by input type
//	oom_fallbacks_total                  batches degraded to singleton retries
//	items_dropped_total                  items omitted during singleton fallback
//	memory_reclaims_total                device memory reclamation passes
//
// Additional collectors can be registered through CreateCounter,
// CreateHistogram and CreateGauge.
//
// # Fx
//
// FXModule provides *Metrics and manages the /metrics server lifecycle.
package metrics
