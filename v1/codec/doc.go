// Package codec decodes and validates single request inputs before they
// reach the inference step.
//
// Text inputs pass through unchanged. Image inputs arrive as base64
// strings, optionally wrapped in a data URI, and are decoded into raster
// images. PNG, JPEG and GIF are supported.
//
// All decode errors are classified as failure.BadInput: they are
// client-fixable and never retried.
package codec
