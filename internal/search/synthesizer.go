package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ezredbiom/studysearch/internal/filter"
)

// Completer is the slice of the llm client the synthesizer depends on.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// Synthesizer translates a free-text query into a structured filter by
// asking the model once. It enforces only a structural contract on the
// reply — parseable JSON, matching placeholder/parameter counts, an
// allow-listed clause. It makes no correctness guarantee about the clause
// semantics; the model is non-deterministic.
type Synthesizer struct {
	completer Completer
}

// NewSynthesizer returns a Synthesizer backed by the given chat client.
func NewSynthesizer(completer Completer) *Synthesizer {
	return &Synthesizer{completer: completer}
}

// modelReply is the structured object the model is instructed to return.
// Pointer fields distinguish a missing field from a present-but-empty one.
type modelReply struct {
	WhereClause *string `json:"where_clause"`
	Params      *[]any  `json:"params"`
}

// Synthesize sends the user's query to the model and parses the reply into a
// filter.
//
// Error contract: ErrTranslation when the remote call itself fails,
// ErrMalformedReply when the reply cannot be turned into a structurally valid
// filter. Both signal the orchestrator to fall back; neither is surfaced to
// the search caller.
func (s *Synthesizer) Synthesize(ctx context.Context, userQuery string) (filter.Filter, error) {
	reply, err := s.completer.Complete(ctx, systemPrompt, userQuery)
	if err != nil {
		return filter.Filter{}, fmt.Errorf("%w: %v", ErrTranslation, err)
	}

	cleaned := stripCodeFence(reply)

	var parsed modelReply
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return filter.Filter{}, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	if parsed.WhereClause == nil || parsed.Params == nil {
		return filter.Filter{}, fmt.Errorf("%w: missing where_clause or params", ErrMalformedReply)
	}

	// Params must be scalars the driver can bind. JSON unmarshals objects
	// and arrays to map/slice values; those can never be valid bind values.
	for _, p := range *parsed.Params {
		switch p.(type) {
		case string, float64, bool, nil:
		default:
			return filter.Filter{}, fmt.Errorf("%w: non-scalar parameter %T", ErrMalformedReply, p)
		}
	}

	f := filter.Filter{
		Clause: *parsed.WhereClause,
		Params: *parsed.Params,
	}
	if err := filter.Validate(f); err != nil {
		return filter.Filter{}, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}

	return f, nil
}

// stripCodeFence removes a surrounding markdown code fence, optionally tagged
// as json, from the model's reply. Replies without a fence pass through
// trimmed.
func stripCodeFence(reply string) string {
	t := strings.TrimSpace(reply)
	if !strings.HasPrefix(t, "```") {
		return t
	}

	t = strings.TrimPrefix(t, "```")
	t = strings.TrimPrefix(t, "json")
	if idx := strings.LastIndex(t, "```"); idx >= 0 {
		t = t[:idx]
	}
	return strings.TrimSpace(t)
}
