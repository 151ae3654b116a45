// Package studies is the read-only accessor for the study registry.
//
// It owns the fixed search template (a SELECT over qiita.study joined with
// the study-person and artifact-visibility tables) and the per-study
// projections served by the lookup endpoints. The search path accepts a
// validated filter.Filter and binds its parameters through the driver's
// native placeholder mechanism — values never enter the SQL text. Every
// query runs inside a read-only transaction scoped to a single call.
package studies
