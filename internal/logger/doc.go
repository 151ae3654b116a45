// Package logger provides structured logging for the studysearch service.
//
// It wraps Uber's Zap logger with a simplified interface used across the
// service: every method takes a message, an optional error, and optional
// structured field maps.
//
//	log := logger.NewLoggerClient(logger.Config{Level: "info"})
//	log.Info("search executed", nil, map[string]interface{}{
//		"source":  "model",
//		"matches": 12,
//	})
//
// When tracing is enabled, the *WithContext variants extract the active
// OpenTelemetry span from the context and attach trace_id and span_id fields,
// correlating log entries with distributed traces.
//
// Configuration comes from the environment:
//
//	ZAP_LOGGER_LEVEL=debug        # debug, info, warning, error
//	LOGGER_ENABLE_TRACING=true    # attach trace/span IDs from context
//
// All methods are safe for concurrent use by multiple goroutines.
package logger
