// Package device models the shared compute device from the host side:
// out-of-memory detection, cached-memory reclamation, and exclusive
// access.
//
// The device allocator itself is an external collaborator reached through
// the Allocator interface. MemoryReclaimer combines the allocator's
// cached-memory release with a generic host reclamation pass and is
// invoked after every inference step, success or failure, to bound peak
// memory across a request.
//
// Guard serializes device access within the process: the device is a
// single shared resource and concurrent inference calls against it are
// never profitable.
//
// # Fx
//
// FXModule provides *MemoryReclaimer and *Guard. An Allocator
// implementation must be supplied by another module (the inference
// runtime client implements it).
package device
