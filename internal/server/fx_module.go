package server

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/ezredbiom/studysearch/internal/logger"
	"github.com/ezredbiom/studysearch/internal/metrics"
	"github.com/ezredbiom/studysearch/internal/search"
	"github.com/ezredbiom/studysearch/internal/studies"
)

// FXModule defines the Fx module for the server package.
// It provides the Config and Server instance and manages the lifecycle of
// the API HTTP server.
var FXModule = fx.Module("server",
	fx.Provide(
		NewConfig,
		func(s *studies.Store) StudyReader { return s },
		func(s *search.Service) Searcher { return s },
		func(l *logger.Logger) Logger { return l },
		func(m *metrics.Metrics) DurationRecorder { return m },
		NewServer,
	),
	fx.Invoke(RegisterServerLifecycle),
)

// RegisterServerLifecycle manages the startup and shutdown lifecycle
// of the API HTTP server.
//
// The lifecycle hook:
//   - OnStart: Launches the API server in a background goroutine.
//   - OnStop: Gracefully shuts down the server, draining in-flight requests.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting API server", nil, map[string]interface{}{
					"address": s.Addr(),
				})

				if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Error starting API server", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down API server", nil, nil)
			return s.Shutdown(ctx)
		},
	})
}
