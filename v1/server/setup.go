package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	traceapi "go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/multimodal-embeddings/v1/failure"
	"github.com/Aleph-Alpha/multimodal-embeddings/v1/pipeline"
	"github.com/Aleph-Alpha/multimodal-embeddings/v1/tracer"
)

// EmbeddingsProducer runs one embedding request to completion.
// Implemented by pipeline.Orchestrator.
type EmbeddingsProducer interface {
	Process(ctx context.Context, req pipeline.Request) (*pipeline.Result, error)
}

// RequestObserver records request-level metrics. The metrics collector
// satisfies it; a nil observer disables collection.
type RequestObserver interface {
	IncrementRequests(status string)
	RecordRequestDuration(start time.Time, endpoint string)
}

// Logger defines the interface for logging operations in the server package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Server exposes the embedding pipeline over HTTP.
type Server struct {
	// HTTP is the underlying server; lifecycle management starts and
	// stops it.
	HTTP *http.Server

	producer EmbeddingsProducer
	cfg      Config
	logger   Logger
	observer RequestObserver
	tracer   *tracer.Tracer
}

// NewServer constructs a Server. The observer and tracer may be nil.
func NewServer(cfg Config, producer EmbeddingsProducer, logger Logger, observer RequestObserver, tr *tracer.Tracer) *Server {
	s := &Server{
		producer: producer,
		cfg:      cfg,
		logger:   logger,
		observer: observer,
		tracer:   tr,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /embeddings", s.handleEmbeddings)

	s.HTTP = &http.Server{
		Addr:    cfg.Address,
		Handler: mux,
	}

	return s
}

// handleEmbeddings decodes the request, runs the pipeline and maps the
// outcome onto the wire contract.
func (s *Server) handleEmbeddings(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	var span traceapi.Span
	if s.tracer != nil {
		ctx, span = s.tracer.StartSpan(ctx, "embeddings.request")
		defer span.End()
	}

	var status string
	defer func() {
		if s.observer != nil {
			s.observer.IncrementRequests(status)
			s.observer.RecordRequestDuration(start, "/embeddings")
		}
	}()

	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	var req embeddingRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		status = "bad_input"
		s.recordSpanError(span, err)
		s.respondError(w, failure.Wrap(failure.BadInput, err, "malformed request body"))
		return
	}

	if s.tracer != nil {
		s.tracer.SetAttributes(span, map[string]interface{}{
			"embeddings.input_type": req.InputType,
			"embeddings.num_inputs": len(req.Inputs),
		})
	}

	result, err := s.producer.Process(ctx, pipeline.Request{
		InputType: req.InputType,
		Inputs:    req.Inputs,
	})
	if err != nil {
		status = failure.KindOf(err).String()
		s.recordSpanError(span, err)
		s.respondError(w, err)
		return
	}

	status = "success"
	s.respondJSON(w, http.StatusOK, embeddingResponse{Embeddings: result.Embeddings})
}

// recordSpanError marks the active span as failed, if tracing is on.
func (s *Server) recordSpanError(span traceapi.Span, err error) {
	if s.tracer != nil && span != nil {
		s.tracer.RecordErrorOnSpan(span, err)
	}
}

// respondError maps a classified error onto the response contract:
// BadInput is client-fixable (400), everything else is a server-side
// failure (500).
func (s *Server) respondError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	if failure.IsBadInput(err) {
		code = http.StatusBadRequest
	}

	detail := "internal server error during embedding"
	var f *failure.Failure
	if errors.As(err, &f) && f.Kind != failure.Internal {
		detail = f.Detail
	}

	s.respondJSON(w, code, errorResponse{Error: detail})
}

func (s *Server) respondJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", err, nil)
	}
}
