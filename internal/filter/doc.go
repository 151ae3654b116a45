// Package filter defines the synthesized WHERE-clause filter that travels
// between the query synthesizers and the study store, the allow-list
// validator that gates it, and the deterministic keyword fallback used when
// the model-backed path fails.
//
// A Filter is a clause template with positional %s placeholders plus the
// ordered values bound to them. The invariant enforced everywhere is that the
// placeholder count equals the parameter count, and that the clause itself
// never carries literal values — the validator rejects quotes, semicolons,
// comment markers, and any identifier outside the fixed column allow-list.
package filter
