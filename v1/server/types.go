package server

import (
	"encoding/json"
	"fmt"
)

// embeddingRequest is the wire shape of POST /embeddings.
type embeddingRequest struct {
	InputType string       `json:"input_type"`
	Inputs    inputStrings `json:"inputs"`
}

// inputStrings decodes a JSON array while rejecting non-string elements.
// A single non-string item anywhere in the array fails the whole request;
// this is a request-shape violation, not a per-item one.
type inputStrings []string

func (s *inputStrings) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make([]string, len(raw))
	for i, element := range raw {
		var str string
		if err := json.Unmarshal(element, &str); err != nil {
			return fmt.Errorf("inputs[%d] is not a string", i)
		}
		out[i] = str
	}

	*s = out
	return nil
}

// embeddingResponse is the success wire shape. Embeddings is never null,
// so an empty request serializes as {"embeddings": []}.
type embeddingResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
}

// errorResponse is the failure wire shape.
type errorResponse struct {
	Error string `json:"error"`
}
