// Package server exposes the embedding pipeline over HTTP.
//
// A single endpoint, POST /embeddings, accepts
//
//	{"input_type": "text"|"image", "inputs": ["...", ...]}
//
// and responds with
//
//	{"embeddings": [[...], ...]}
//
// on success or {"error": "..."} on failure. BadInput failures map to
// 400, everything else to 500. A non-string element anywhere in inputs
// rejects the whole request with 400 before any processing.
//
// Under partial singleton failure the embeddings list may be shorter than
// the input list; this accepted-partial-result policy matches the
// pipeline's legacy contract and is logged server-side.
//
// # Fx
//
// FXModule provides *Server and manages the HTTP server lifecycle.
package server
