package pipeline

import (
	"iter"

	"github.com/Aleph-Alpha/multimodal-embeddings/v1/codec"
)

// Batch is a contiguous window of a request's input list, processed
// together in one inference call.
type Batch struct {
	// Start is the offset of the window in the original input list.
	Start int

	// Inputs are the raw input strings of the window.
	Inputs []string
}

// Planner partitions an ordered input list into fixed-size windows based
// on input type.
type Planner struct {
	cfg Config
}

// NewPlanner constructs a Planner from Config.
func NewPlanner(cfg Config) (*Planner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Planner{cfg: cfg}, nil
}

// Plan returns a lazy sequence of contiguous, non-overlapping windows that
// partition the inputs exactly, preserving order. An empty input list
// yields an empty sequence. The sequence restarts from the beginning on
// every range; it is not resumable mid-iteration.
func (p *Planner) Plan(inputs []string, inputType codec.InputType) iter.Seq[Batch] {
	size := p.cfg.sizeFor(inputType)

	return func(yield func(Batch) bool) {
		for start := 0; start < len(inputs); start += size {
			end := min(start+size, len(inputs))
			if !yield(Batch{Start: start, Inputs: inputs[start:end]}) {
				return
			}
		}
	}
}
