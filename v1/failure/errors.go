package failure

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for recovery and response-code mapping.
type Kind string

const (
	// BadInput marks client-fixable problems: malformed request shape,
	// undecodable images, non-string text items.
	BadInput Kind = "bad_input"

	// ResourceExhausted marks an out-of-memory condition reported by the
	// compute device during inference.
	ResourceExhausted Kind = "resource_exhausted"

	// Internal marks any other model or runtime failure.
	Internal Kind = "internal"
)

func (k Kind) String() string {
	return string(k)
}

// Failure is a classified error with a human-readable detail.
type Failure struct {
	Kind   Kind
	Detail string
	cause  error
}

func (f *Failure) Error() string {
	if f.cause != nil {
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.Detail, f.cause)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
}

func (f *Failure) Unwrap() error {
	return f.cause
}

// New creates a Failure with the given kind and detail.
func New(kind Kind, detail string) *Failure {
	return &Failure{Kind: kind, Detail: detail}
}

// Newf creates a Failure with a formatted detail.
func Newf(kind Kind, format string, args ...any) *Failure {
	return &Failure{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and detail to an underlying error. The cause stays
// reachable through errors.Is / errors.As.
func Wrap(kind Kind, err error, detail string) *Failure {
	return &Failure{Kind: kind, Detail: detail, cause: err}
}

// KindOf returns the kind carried by err. Unclassified errors report
// Internal, matching the catch-all behavior at the boundary.
func KindOf(err error) Kind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return Internal
}

// IsBadInput reports whether err is classified as BadInput.
func IsBadInput(err error) bool {
	return err != nil && KindOf(err) == BadInput
}

// IsResourceExhausted reports whether err is classified as ResourceExhausted.
func IsResourceExhausted(err error) bool {
	return err != nil && KindOf(err) == ResourceExhausted
}

// IsInternal reports whether err is classified as Internal.
func IsInternal(err error) bool {
	return err != nil && KindOf(err) == Internal
}
