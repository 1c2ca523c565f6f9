package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/multimodal-embeddings/v1/device"
)

func newTestRuntime(t *testing.T, handler http.Handler) (*Runtime, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	rt, err := NewRuntime(&Config{
		Endpoint:     srv.URL,
		ServiceToken: "test-token",
		ModelName:    "test-model",
		HTTPTimeoutS: 5,
	}, nopLogger{})
	require.NoError(t, err)

	return rt, srv
}

func TestNewRuntime_RequiresEndpoint(t *testing.T) {
	_, err := NewRuntime(&Config{ModelName: "m"}, nopLogger{})
	require.Error(t, err)
}

func TestEncodeText_ReturnsTensorHandle(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	rt, _ := newTestRuntime(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/tensors", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]string{"tensor_id": "abc"})
	}))

	tensor, err := rt.EncodeText(context.Background(), []string{"hello"})
	require.NoError(t, err)

	assert.Equal(t, "abc", tensor.Handle())
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "test-model", gotBody["model"])
}

func TestForward_ParsesEmbeddings(t *testing.T) {
	rt, _ := newTestRuntime(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/forward", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"embeddings": [][]float32{{0.1, 0.2}, {0.3, 0.4}},
		})
	}))

	out, err := rt.Forward(context.Background(), NewTensor("abc", nil, nil))
	require.NoError(t, err)

	rows := out.Rows()
	require.Len(t, rows, 2)
	assert.InDelta(t, 0.1, rows[0][0], 1e-6)
	assert.InDelta(t, 0.4, rows[1][1], 1e-6)
}

func TestForward_InsufficientStorageIsOOM(t *testing.T) {
	rt, _ := newTestRuntime(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInsufficientStorage)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "allocation failed"})
	}))

	_, err := rt.Forward(context.Background(), NewTensor("abc", nil, nil))
	require.Error(t, err)
	assert.True(t, device.IsOutOfMemory(err))
}

func TestForward_OOMMessageIsOOM(t *testing.T) {
	rt, _ := newTestRuntime(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "CUDA out of memory. Tried to allocate 1.50 GiB"})
	}))

	_, err := rt.Forward(context.Background(), NewTensor("abc", nil, nil))
	require.Error(t, err)
	assert.True(t, device.IsOutOfMemory(err))
}

func TestForward_OtherErrorsAreNotOOM(t *testing.T) {
	rt, _ := newTestRuntime(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "model not loaded"})
	}))

	_, err := rt.Forward(context.Background(), NewTensor("abc", nil, nil))
	require.Error(t, err)
	assert.False(t, device.IsOutOfMemory(err))
}

func TestReleaseCached_PostsToMemoryRelease(t *testing.T) {
	var gotPath string
	rt, _ := newTestRuntime(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, rt.ReleaseCached(context.Background()))
	assert.Equal(t, "/v1/memory/release", gotPath)
}

func TestLoadModel_PropagatesFailure(t *testing.T) {
	rt, _ := newTestRuntime(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "checkpoint not found"})
	}))

	err := rt.LoadModel(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test-model")
}

func TestTensorRelease_PostsHandle(t *testing.T) {
	released := make(chan string, 1)
	rt, _ := newTestRuntime(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/tensors":
			_ = json.NewEncoder(w).Encode(map[string]string{"tensor_id": "abc"})
		case "/v1/tensors/release":
			var body struct {
				TensorID string `json:"tensor_id"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			released <- body.TensorID
			w.WriteHeader(http.StatusOK)
		}
	}))

	tensor, err := rt.EncodeText(context.Background(), []string{"x"})
	require.NoError(t, err)

	tensor.Release()

	select {
	case id := <-released:
		assert.Equal(t, "abc", id)
	default:
		t.Fatal("expected release call to reach the runtime")
	}
}
