package inference

import "sync"

// Tensor is a handle to data produced by the processor or the model.
//
// Input tensors are device-resident and carry only a handle; the output
// tensor of a forward pass carries materialized host-side rows. Either
// way the holder must call Release when done so device memory is freed
// promptly. Tensor references are never retained across inference calls.
type Tensor struct {
	handle  string
	rows    [][]float32
	release func()
	once    sync.Once
}

// NewTensor constructs a Tensor. The release hook may be nil when there is
// no device-side state to free.
func NewTensor(handle string, rows [][]float32, release func()) *Tensor {
	return &Tensor{handle: handle, rows: rows, release: release}
}

// Handle returns the device-side reference of the tensor, if any.
func (t *Tensor) Handle() string {
	return t.handle
}

// Rows returns the materialized host-side rows, one float32 vector per
// batch item. Nil for device-resident input tensors.
func (t *Tensor) Rows() [][]float32 {
	return t.rows
}

// Release frees any device-side state behind the tensor. Safe to call
// multiple times; only the first call has effect.
func (t *Tensor) Release() {
	t.once.Do(func() {
		if t.release != nil {
			t.release()
		}
	})
}
