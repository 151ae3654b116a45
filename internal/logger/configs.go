package logger

import "os"

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls the behavior of the service logger.
type Config struct {
	// Level is one of debug, info, warning, error. Anything else falls back to info.
	Level string

	// ServiceName is attached to every log entry as the "service" field.
	ServiceName string

	// EnableTracing makes the *WithContext methods extract the active
	// OpenTelemetry span from the context and attach trace_id/span_id fields.
	EnableTracing bool
}

// NewConfig reads logger configuration from environment variables.
func NewConfig() Config {
	return Config{
		Level:         os.Getenv("ZAP_LOGGER_LEVEL"),
		ServiceName:   "studysearch",
		EnableTracing: os.Getenv("LOGGER_ENABLE_TRACING") == "true",
	}
}
