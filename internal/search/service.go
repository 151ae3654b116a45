package search

import (
	"context"

	"github.com/ezredbiom/studysearch/internal/filter"
	"github.com/ezredbiom/studysearch/internal/studies"
)

// Filter sources recorded on each result.
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

// Accessor is the slice of the study store the orchestrator depends on.
type Accessor interface {
	Search(ctx context.Context, f filter.Filter) ([]studies.StudyRecord, error)
}

// Logger defines the logging operations used within the search package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Observer receives the outcome of each search for metrics purposes.
// May be nil; the orchestrator works without one.
type Observer interface {
	ObserveSearch(source, status string)
	IncrementStoreErrors()
}

// Result is the outcome of one search: matching records in ascending
// study-id order, plus which synthesis path produced the executed filter.
// Source exists for logging and metrics; callers should not branch on it.
type Result struct {
	Records []studies.StudyRecord `json:"records"`
	Source  string                `json:"source"`
}

// Service composes the model-backed synthesizer, the deterministic fallback,
// and the study store into one request/response cycle. Stateless: every call
// is independent, with at most one model call and one store query, in that
// order.
type Service struct {
	synthesizer *Synthesizer
	store       Accessor
	logger      Logger
	observer    Observer
}

// NewService returns a search Service. observer may be nil.
func NewService(synthesizer *Synthesizer, store Accessor, logger Logger, observer Observer) *Service {
	return &Service{
		synthesizer: synthesizer,
		store:       store,
		logger:      logger,
		observer:    observer,
	}
}

// Search runs the full pipeline for one free-text query.
//
// Any synthesis failure — remote call failure or malformed reply — is
// recovered locally by substituting the deterministic fallback filter; no
// retries against the model, and the recovery is never surfaced as an error.
// Store failures are fatal to the request and returned to the caller. An
// empty result set is a valid, non-error outcome.
func (s *Service) Search(ctx context.Context, userQuery string) (*Result, error) {
	source := SourceModel
	f, err := s.synthesizer.Synthesize(ctx, userQuery)
	if err != nil {
		s.logger.Warn("query translation failed, using keyword fallback", err,
			map[string]interface{}{"query": userQuery})
		f = filter.Fallback(userQuery)
		source = SourceFallback
	}

	s.logger.Debug("executing synthesized filter", nil, map[string]interface{}{
		"clause": f.Clause,
		"params": len(f.Params),
		"source": source,
	})

	records, err := s.store.Search(ctx, f)
	if err != nil {
		s.observe(source, "error")
		if s.observer != nil {
			s.observer.IncrementStoreErrors()
		}
		return nil, err
	}

	s.observe(source, "ok")
	return &Result{Records: records, Source: source}, nil
}

func (s *Service) observe(source, status string) {
	if s.observer != nil {
		s.observer.ObserveSearch(source, status)
	}
}
