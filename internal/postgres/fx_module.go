package postgres

import (
	"context"
	"sync"

	"go.uber.org/fx"
)

// FXModule is an fx module that provides the Postgres database component.
// It registers the Postgres constructor for dependency injection
// and sets up lifecycle hooks to properly initialize and shut down
// the database connection.
var FXModule = fx.Module("postgres",
	fx.Provide(
		NewConfig,
		NewPostgres,
	),
	fx.Invoke(RegisterPostgresLifecycle),
)

// PostgresLifeCycleParams groups the dependencies needed for Postgres lifecycle management.
// The embedded fx.In marker enables automatic injection of the struct fields from the
// dependency container.
type PostgresLifeCycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Postgres  *Postgres
}

// RegisterPostgresLifecycle registers lifecycle hooks for the Postgres database component.
// It sets up:
//  1. Connection monitoring on application start
//  2. The automatic reconnection loop on application start
//  3. Graceful shutdown of database connections on application stop
//
// A WaitGroup ensures that both goroutines complete before the application terminates.
func RegisterPostgresLifecycle(params PostgresLifeCycleParams) {
	wg := &sync.WaitGroup{}
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				params.Postgres.MonitorConnection(ctx)
			}()

			wg.Add(1)
			go func() {
				defer wg.Done()
				params.Postgres.RetryConnection(ctx)
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			err := params.Postgres.GracefulShutdown()
			wg.Wait()
			return err
		},
	})
}
