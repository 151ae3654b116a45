package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/ezredbiom/studysearch/internal/llm"
	"github.com/ezredbiom/studysearch/internal/logger"
	"github.com/ezredbiom/studysearch/internal/metrics"
	"github.com/ezredbiom/studysearch/internal/postgres"
	"github.com/ezredbiom/studysearch/internal/search"
	"github.com/ezredbiom/studysearch/internal/server"
	"github.com/ezredbiom/studysearch/internal/studies"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the study search API server",
	Long: `Serve starts the HTTP API on HTTP_ADDRESS (default :8080) and the
Prometheus metrics server on METRICS_ADDRESS (default :9090), connects to
the registry database, and blocks until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		newApp().Run()
	},
}

// appOptions is the complete dependency graph of the serve command. Split
// out from newApp so tests can validate the same graph without starting it.
func appOptions() []fx.Option {
	return []fx.Option{
		fx.Provide(
			logger.NewConfig,
			func(l *logger.Logger) postgres.Logger { return l },
		),
		logger.FXModule,
		postgres.FXModule,
		llm.FXModule,
		studies.FXModule,
		metrics.FXModule,
		search.FXModule,
		server.FXModule,
	}
}

func newApp() *fx.App {
	return fx.New(appOptions()...)
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
