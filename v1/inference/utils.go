package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// postJSON sends an HTTP POST request to the model runtime.
// It marshals the given body as JSON, attaches required headers,
// maps error responses onto device errors, and optionally decodes the
// response JSON into `out`.
func (r *Runtime) postJSON(ctx context.Context, url string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	// Add JSON header and service-token authentication.
	req.Header.Set("Content-Type", "application/json")
	if r.serviceToken != "" {
		req.Header.Set("Authorization", "Bearer "+r.serviceToken)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	// Error responses carry {"error": "..."}; the message decides whether
	// the failure is an out-of-memory condition.
	if resp.StatusCode >= 300 {
		var errBody struct {
			Error string `json:"error"`
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if err := json.Unmarshal(raw, &errBody); err != nil || errBody.Error == "" {
			errBody.Error = string(raw)
		}
		return mapRuntimeError(resp.StatusCode, errBody.Error)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}

	return nil
}
