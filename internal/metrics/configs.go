package metrics

import "os"

// Config controls the metrics endpoint.
type Config struct {
	// Address is the listen address of the /metrics HTTP server.
	Address string

	// ServiceName is applied to every metric as a constant "service" label.
	ServiceName string

	// EnableDefaultCollectors registers the standard Go/process/build-info
	// collectors alongside the service metrics.
	EnableDefaultCollectors bool
}

// NewConfig reads metrics configuration from environment variables.
func NewConfig() Config {
	addr := os.Getenv("METRICS_ADDRESS")
	if addr == "" {
		addr = ":9090"
	}

	return Config{
		Address:                 addr,
		ServiceName:             "studysearch",
		EnableDefaultCollectors: true,
	}
}
