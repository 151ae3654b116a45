package studies

import "go.uber.org/fx"

// FXModule provides the study store to the application container.
// It depends on *postgres.Postgres being available (postgres.FXModule).
var FXModule = fx.Module("studies",
	fx.Provide(
		NewStore,
	),
)
