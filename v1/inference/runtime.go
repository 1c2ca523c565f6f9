package inference

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"strings"
	"time"

	"github.com/Aleph-Alpha/multimodal-embeddings/v1/device"
)

// Runtime is an HTTP client to the device-attached model runtime sidecar.
//
// It implements Processor and Model for the inference step, and
// device.Allocator for memory reclamation. The runtime owns the actual
// model weights and device memory; this client only moves payloads and
// handles across the process boundary.
type Runtime struct {
	baseURL      string
	serviceToken string
	modelName    string
	httpClient   *http.Client
	logger       Logger
}

// NewRuntime constructs a Runtime client from Config.
func NewRuntime(cfg *Config, logger Logger) (*Runtime, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("inference: invalid config: %w", err)
	}

	// Remove trailing slash if user added it.
	base := strings.TrimRight(cfg.Endpoint, "/")

	return &Runtime{
		baseURL:      base,
		serviceToken: cfg.ServiceToken,
		modelName:    cfg.ModelName,
		httpClient:   &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second},
		logger:       logger,
	}, nil
}

// LoadModel instructs the runtime to load the configured checkpoint onto
// the device. This is a one-time, fallible startup step; its failure is a
// startup failure, reported distinctly from per-request failures.
func (r *Runtime) LoadModel(ctx context.Context) error {
	url := fmt.Sprintf("%s/v1/models/load", r.baseURL)

	reqBody := map[string]any{
		"model": r.modelName,
	}

	if err := r.postJSON(ctx, url, reqBody, nil); err != nil {
		return fmt.Errorf("inference: loading model %q: %w", r.modelName, err)
	}

	r.logger.Info("model loaded", nil, map[string]interface{}{
		"model": r.modelName,
	})

	return nil
}

// EncodeText encodes a text batch into a device-resident tensor.
func (r *Runtime) EncodeText(ctx context.Context, texts []string) (*Tensor, error) {
	reqBody := map[string]any{
		"model": r.modelName,
		"texts": texts,
	}

	return r.encode(ctx, reqBody)
}

// EncodeImages encodes an image batch into a device-resident tensor.
// Images are re-encoded as PNG for transport; the runtime's preprocessing
// is format-agnostic.
func (r *Runtime) EncodeImages(ctx context.Context, images []image.Image) (*Tensor, error) {
	encoded := make([]string, len(images))
	for i, img := range images {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("inference: re-encoding image %d: %w", i, err)
		}
		encoded[i] = base64.StdEncoding.EncodeToString(buf.Bytes())
	}

	reqBody := map[string]any{
		"model":  r.modelName,
		"images": encoded,
	}

	return r.encode(ctx, reqBody)
}

func (r *Runtime) encode(ctx context.Context, reqBody map[string]any) (*Tensor, error) {
	url := fmt.Sprintf("%s/v1/tensors", r.baseURL)

	var parsed struct {
		TensorID string `json:"tensor_id"`
	}

	if err := r.postJSON(ctx, url, reqBody, &parsed); err != nil {
		return nil, err
	}

	if parsed.TensorID == "" {
		return nil, fmt.Errorf("inference: runtime returned empty tensor id")
	}

	id := parsed.TensorID
	return NewTensor(id, nil, func() { r.releaseTensor(id) }), nil
}

// Forward runs the forward pass over an encoded batch and returns the
// output embeddings, one float32 vector per batch item.
func (r *Runtime) Forward(ctx context.Context, batch *Tensor) (*Tensor, error) {
	url := fmt.Sprintf("%s/v1/forward", r.baseURL)

	reqBody := map[string]any{
		"tensor_id": batch.Handle(),
	}

	var parsed struct {
		Embeddings [][]float32 `json:"embeddings"`
	}

	if err := r.postJSON(ctx, url, reqBody, &parsed); err != nil {
		return nil, err
	}

	return NewTensor("", parsed.Embeddings, nil), nil
}

// ReleaseCached implements device.Allocator: it asks the runtime's device
// allocator to hand cached-but-unused memory back to the system allocator.
func (r *Runtime) ReleaseCached(ctx context.Context) error {
	url := fmt.Sprintf("%s/v1/memory/release", r.baseURL)
	return r.postJSON(ctx, url, map[string]any{}, nil)
}

// releaseTensor frees a device-resident input tensor. Best effort: the
// runtime garbage-collects stale handles anyway, so failures are only
// logged.
func (r *Runtime) releaseTensor(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := fmt.Sprintf("%s/v1/tensors/release", r.baseURL)
	if err := r.postJSON(ctx, url, map[string]any{"tensor_id": id}, nil); err != nil {
		r.logger.Debug("tensor release failed", err, map[string]interface{}{
			"tensor_id": id,
		})
	}
}

// mapRuntimeError turns a runtime error response into the matching device
// error. HTTP 507 (insufficient storage) and "out of memory" messages
// both indicate the device allocator could not satisfy an allocation.
func mapRuntimeError(status int, message string) error {
	if status == http.StatusInsufficientStorage || strings.Contains(strings.ToLower(message), "out of memory") {
		return fmt.Errorf("runtime http %d: %s: %w", status, message, device.ErrOutOfMemory)
	}
	return fmt.Errorf("runtime http %d: %s", status, message)
}
