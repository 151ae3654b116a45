package server

import (
	"os"
	"time"
)

// Config controls the API HTTP server.
type Config struct {
	// Address is the listen address, e.g. ":8080".
	Address string

	// ReadTimeout / WriteTimeout bound slow clients. WriteTimeout must leave
	// room for the model round-trip on the search endpoint.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewConfig reads server configuration from environment variables.
func NewConfig() Config {
	addr := os.Getenv("HTTP_ADDRESS")
	if addr == "" {
		addr = ":8080"
	}

	return Config{
		Address:      addr,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
}
