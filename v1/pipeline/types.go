package pipeline

// Request is a boundary-validated embedding request.
type Request struct {
	// InputType is the raw input_type value; recognized values are
	// "text" and "image".
	InputType string

	// Inputs is the ordered input list. Each string is raw text or a
	// base64/data-URI encoded image, depending on InputType.
	Inputs []string
}

// ItemStatus reports the fate of a single input item, aligned to its
// position in the request.
type ItemStatus struct {
	// Index is the item's position in the original request.
	Index int `json:"index"`

	// OK reports whether a vector was produced for the item.
	OK bool `json:"ok"`

	// Reason describes why the item was omitted. Empty when OK.
	Reason string `json:"reason,omitempty"`
}

// Result is the outcome of a completed request.
//
// Embeddings holds one vector per surviving input, in input order. Under
// partial singleton failure it may be shorter than the request; Items
// records the per-item fate so callers can distinguish dropped items from
// an empty result.
type Result struct {
	Embeddings [][]float32
	Items      []ItemStatus
}

// OmittedCount returns the number of items dropped from the result.
func (r *Result) OmittedCount() int {
	count := 0
	for _, item := range r.Items {
		if !item.OK {
			count++
		}
	}
	return count
}
