package server

import (
	"context"
	"net/http"
	"time"

	"github.com/ezredbiom/studysearch/internal/search"
	"github.com/ezredbiom/studysearch/internal/studies"
)

// Logger defines the logging operations used within the server package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// StudyReader is the slice of the study store the lookup endpoints use.
type StudyReader interface {
	Get(ctx context.Context, studyID int) (*studies.StudyDetail, error)
	ListSummaries(ctx context.Context) ([]studies.StudySummary, error)
}

// Searcher runs the natural-language search pipeline.
type Searcher interface {
	Search(ctx context.Context, userQuery string) (*search.Result, error)
}

// DurationRecorder receives per-endpoint request durations.
// May be nil; the server works without one.
type DurationRecorder interface {
	RecordRequestDuration(start time.Time, endpoint string)
}

// Server is the HTTP boundary of the service. It owns the route table and
// translates between transport concerns (status codes, JSON envelopes) and
// the domain packages.
type Server struct {
	httpServer *http.Server
	reader     StudyReader
	searcher   Searcher
	logger     Logger
	durations  DurationRecorder
}

// NewServer builds the API server with all routes registered.
// durations may be nil.
func NewServer(cfg Config, reader StudyReader, searcher Searcher, logger Logger, durations DurationRecorder) *Server {
	s := &Server{
		reader:    reader,
		searcher:  searcher,
		logger:    logger,
		durations: durations,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/studies", s.instrument("list_studies", s.handleListStudies))
	mux.HandleFunc("GET /api/v1/studies/{id}", s.instrument("study_detail", s.handleStudyDetail))
	mux.HandleFunc("GET /api/v1/studies/{id}/abstract", s.instrument("study_abstract", s.handleStudyAbstract))
	mux.HandleFunc("GET /api/v1/studies/{id}/authors", s.instrument("study_authors", s.handleStudyAuthors))
	mux.HandleFunc("POST /api/v1/search", s.instrument("search", s.handleSearch))
	mux.HandleFunc("GET /healthz", s.handleHealthz)

	s.httpServer = &http.Server{
		Addr:         cfg.Address,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

// instrument wraps a handler with panic recovery and duration recording.
// A panic becomes a structured 500 response instead of a dropped connection.
func (s *Server) instrument(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			if s.durations != nil {
				s.durations.RecordRequestDuration(start, endpoint)
			}
			if rec := recover(); rec != nil {
				s.logger.Error("handler panicked", nil, map[string]interface{}{
					"endpoint": endpoint,
					"panic":    rec,
				})
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next(w, r)
	}
}

// ListenAndServe starts serving; blocks until the server stops.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Handler exposes the route table; used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
