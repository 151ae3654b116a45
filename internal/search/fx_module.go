package search

import (
	"go.uber.org/fx"

	"github.com/ezredbiom/studysearch/internal/llm"
	"github.com/ezredbiom/studysearch/internal/logger"
	"github.com/ezredbiom/studysearch/internal/metrics"
	"github.com/ezredbiom/studysearch/internal/studies"
)

// FXModule wires the search pipeline into Fx. The synthesizer and service
// depend on narrow interfaces; the providers below bind them to the concrete
// llm client, study store, logger, and metrics collector.
var FXModule = fx.Module("search",
	fx.Provide(
		func(c *llm.Client) Completer { return c },
		func(st *studies.Store) Accessor { return st },
		func(l *logger.Logger) Logger { return l },
		func(m *metrics.Metrics) Observer { return m },
		NewSynthesizer,
		NewService,
	),
)
