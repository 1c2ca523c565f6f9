package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/multimodal-embeddings/v1/failure"
	"github.com/Aleph-Alpha/multimodal-embeddings/v1/pipeline"
)

type nopLogger struct{}

func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Debug(string, error, ...map[string]interface{}) {}
func (nopLogger) Warn(string, error, ...map[string]interface{})  {}
func (nopLogger) Error(string, error, ...map[string]interface{}) {}
func (nopLogger) Fatal(string, error, ...map[string]interface{}) {}

// fakeProducer records the request it saw and returns a canned outcome.
type fakeProducer struct {
	called bool
	got    pipeline.Request
	result *pipeline.Result
	err    error
}

func (f *fakeProducer) Process(_ context.Context, req pipeline.Request) (*pipeline.Result, error) {
	f.called = true
	f.got = req
	return f.result, f.err
}

func newTestServer(producer *fakeProducer) *Server {
	cfg := Config{Address: ":0", MaxBodyBytes: 1 << 20}
	return NewServer(cfg, producer, nopLogger{}, nil, nil)
}

func postEmbeddings(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/embeddings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.HTTP.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleEmbeddings_Success(t *testing.T) {
	producer := &fakeProducer{
		result: &pipeline.Result{Embeddings: [][]float32{{0.1, 0.2}, {0.3, 0.4}}},
	}
	s := newTestServer(producer)

	rec := postEmbeddings(t, s, `{"input_type":"text","inputs":["hello","world"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp embeddingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, [][]float32{{0.1, 0.2}, {0.3, 0.4}}, resp.Embeddings)

	require.True(t, producer.called)
	assert.Equal(t, "text", producer.got.InputType)
	assert.Equal(t, []string{"hello", "world"}, producer.got.Inputs)
}

func TestHandleEmbeddings_EmptyInputs(t *testing.T) {
	producer := &fakeProducer{result: &pipeline.Result{Embeddings: [][]float32{}}}
	s := newTestServer(producer)

	rec := postEmbeddings(t, s, `{"input_type":"text","inputs":[]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"embeddings":[]}`, rec.Body.String())
}

func TestHandleEmbeddings_NonStringInput(t *testing.T) {
	producer := &fakeProducer{}
	s := newTestServer(producer)

	rec := postEmbeddings(t, s, `{"input_type":"text","inputs":["ok",42]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, producer.called, "producer must not run for a malformed request")

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "malformed request body")
}

func TestHandleEmbeddings_MalformedJSON(t *testing.T) {
	producer := &fakeProducer{}
	s := newTestServer(producer)

	rec := postEmbeddings(t, s, `{"input_type":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, producer.called)
}

func TestHandleEmbeddings_BadInputFromPipeline(t *testing.T) {
	producer := &fakeProducer{err: failure.New(failure.BadInput, "unrecognized input type audio")}
	s := newTestServer(producer)

	rec := postEmbeddings(t, s, `{"input_type":"audio","inputs":["a"]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unrecognized input type audio", resp.Error)
}

func TestHandleEmbeddings_InternalHidesDetail(t *testing.T) {
	producer := &fakeProducer{err: failure.New(failure.Internal, "tensor shape mismatch on cuda:0")}
	s := newTestServer(producer)

	rec := postEmbeddings(t, s, `{"input_type":"text","inputs":["a"]}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error during embedding", resp.Error)
	assert.NotContains(t, resp.Error, "cuda")
}

func TestHandleEmbeddings_ResourceExhausted(t *testing.T) {
	producer := &fakeProducer{err: failure.New(failure.ResourceExhausted, "device out of memory for a single item")}
	s := newTestServer(producer)

	rec := postEmbeddings(t, s, `{"input_type":"image","inputs":["a"]}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "device out of memory for a single item", resp.Error)
}

func TestHandleEmbeddings_MethodNotAllowed(t *testing.T) {
	producer := &fakeProducer{}
	s := newTestServer(producer)

	req := httptest.NewRequest(http.MethodGet, "/embeddings", nil)
	rec := httptest.NewRecorder()
	s.HTTP.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.False(t, producer.called)
}
