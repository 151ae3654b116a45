package studies

import "errors"

var (
	// ErrStore is returned when the registry cannot be queried: the
	// connection is unavailable or a filter clause failed the allow-list
	// re-check. Fatal to the request that triggered it.
	ErrStore = errors.New("study store error")

	// ErrStudyNotFound is returned by lookups for an identifier that does
	// not exist in the registry.
	ErrStudyNotFound = errors.New("study not found")
)
