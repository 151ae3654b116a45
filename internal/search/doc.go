// Package search implements the query-translation pipeline: free-text in,
// study records out.
//
// The Synthesizer asks the model once to turn the query into a parameterized
// WHERE-clause filter and enforces a structural contract on the reply. The
// Service orchestrates one request/response cycle: synthesize, fall back to
// the deterministic keyword filter on any synthesis failure, execute against
// the study store. Translation failures are recovered locally and never
// surfaced; store failures are fatal to the request.
//
// The policy throughout: anything that can be answered deterministically
// without the model is preferred over propagating model unreliability to the
// caller.
package search
