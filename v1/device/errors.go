package device

import (
	"errors"
	"strings"
)

// ErrOutOfMemory is returned when the device cannot satisfy a memory
// allocation during inference.
var ErrOutOfMemory = errors.New("device: out of memory")

// IsOutOfMemory checks if the error is an out-of-memory condition.
//
// Runtime backends do not always wrap the sentinel, so a case-insensitive
// message match is accepted as well.
func IsOutOfMemory(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrOutOfMemory) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "out of memory")
}
