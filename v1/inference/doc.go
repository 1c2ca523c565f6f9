// Package inference executes embedding model forward passes on the
// compute device.
//
// The model/processor pair is an external collaborator reached through the
// Model and Processor interfaces. Step is the only place device compute
// happens: it encodes a batch of decoded items into the model's tensor
// representation, runs the forward pass under exclusive device access, and
// converts the output tensor into plain float32 vectors, releasing all
// tensor references before returning.
//
// Errors returned by Step carry a failure classification:
// device out-of-memory conditions surface as failure.ResourceExhausted so
// the recovery layer can degrade the batch; everything else surfaces as
// failure.Internal.
//
// Runtime is the concrete collaborator: an HTTP client to the
// device-attached model runtime sidecar. It implements Processor, Model
// and device.Allocator, and loads the model once at startup.
package inference
