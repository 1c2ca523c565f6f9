// Package pipeline drives an embedding request end to end: batch
// planning, per-batch decoding and inference, out-of-memory recovery, and
// deterministic memory reclamation between steps.
//
// # Batching
//
// Planner partitions the ordered input list into contiguous windows whose
// size depends on the input type: text inputs are grouped (4 by default),
// images are processed one at a time since a single image dominates the
// device memory budget. Bounded windows are the static first line of
// defense against unpredictable memory growth.
//
// # Recovery
//
// Recovery is the dynamic second line. When the device reports
// out-of-memory on a multi-item batch, the batch is degraded to
// independent singleton inference calls, the smallest possible memory
// footprint. Singleton failures other than out-of-memory drop that item
// alone; the request still succeeds with partial results. Out-of-memory
// at singleton granularity is fatal: there is nothing left to degrade to.
//
// # Orchestration
//
// Orchestrator validates the request, walks the planned batches, and
// accumulates vectors in input order. Memory is reclaimed after every
// inference attempt and once more when a request fails, so no terminal
// path strands device memory.
package pipeline
