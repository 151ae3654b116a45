package search

import "errors"

var (
	// ErrTranslation means the remote model call itself could not complete:
	// network failure, timeout, auth rejection. Recovered locally via the
	// fallback synthesizer, never surfaced to the caller.
	ErrTranslation = errors.New("model translation unavailable")

	// ErrMalformedReply means the model answered but its reply could not be
	// parsed into a structurally valid filter: invalid JSON, missing or
	// mistyped fields, placeholder/parameter count mismatch, or a clause
	// that fails the allow-list. Also recovered via fallback.
	ErrMalformedReply = errors.New("model reply not structurally valid")
)
