package failure

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf_Classified(t *testing.T) {
	err := New(BadInput, "malformed data URI")
	if KindOf(err) != BadInput {
		t.Errorf("expected bad_input, got %s", KindOf(err))
	}
}

func TestKindOf_WrappedDeep(t *testing.T) {
	inner := Wrap(ResourceExhausted, errors.New("device oom"), "forward pass failed")
	outer := fmt.Errorf("batch 2: %w", inner)

	if KindOf(outer) != ResourceExhausted {
		t.Errorf("expected resource_exhausted, got %s", KindOf(outer))
	}
	if !IsResourceExhausted(outer) {
		t.Error("expected IsResourceExhausted to be true")
	}
}

func TestKindOf_UnclassifiedDefaultsToInternal(t *testing.T) {
	if KindOf(errors.New("plain")) != Internal {
		t.Error("unclassified errors must report Internal")
	}
}

func TestIsHelpers_NilError(t *testing.T) {
	if IsBadInput(nil) || IsResourceExhausted(nil) || IsInternal(nil) {
		t.Error("nil error must not match any kind")
	}
}

func TestWrap_CauseReachable(t *testing.T) {
	cause := errors.New("b64 decode")
	err := Wrap(BadInput, cause, "image decoding failed")

	if !errors.Is(err, cause) {
		t.Error("cause must stay reachable through errors.Is")
	}
}

func TestFailure_ErrorText(t *testing.T) {
	err := New(Internal, "model forward failed")
	want := "internal: model forward failed"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
