package filter

import "strings"

// Placeholder is the positional marker the model is instructed to emit.
// The store accessor rebinds it to the driver's native placeholder form
// before execution; it never reaches the database as-is.
const Placeholder = "%s"

// Filter is a WHERE-clause template paired with the values bound to its
// placeholders. It is created per search request, either by the model-backed
// synthesizer or by the deterministic fallback, and never persisted.
type Filter struct {
	// Clause is the predicate text, containing only allow-listed column
	// references, boolean/comparison syntax, and positional placeholders.
	// Literal values must never appear here; they travel in Params.
	Clause string

	// Params are bound positionally to the placeholders in Clause.
	Params []any
}

// PlaceholderCount returns the number of positional placeholders in Clause.
func (f Filter) PlaceholderCount() int {
	return strings.Count(f.Clause, Placeholder)
}

// Valid reports whether the placeholder count matches the parameter count.
// An invalid Filter must never reach the store accessor.
func (f Filter) Valid() bool {
	return f.PlaceholderCount() == len(f.Params)
}
