// Package server is the HTTP boundary of the study search service.
//
// It exposes the read-only study lookup endpoints and the natural-language
// search endpoint under /api/v1, translating domain errors into structured
// JSON replies: a non-integer study id is a 400, an unknown id a 404, and
// everything else a 500 with a message. Handlers never leak a panic or a raw
// error to the transport.
package server
