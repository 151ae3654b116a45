package postgres

import (
	"os"
	"time"
)

type Config struct {
	Connection        Connection
	ConnectionDetails ConnectionDetails
}

type Connection struct {
	Host     string
	Port     string
	User     string
	Password string
	DbName   string
	SSLMode  string
}

type ConnectionDetails struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// NewConfig reads the database configuration from environment variables.
// Unset pool parameters keep their zero value; connectToPostgres applies
// package defaults in that case.
func NewConfig() Config {
	return Config{
		Connection: Connection{
			Host:     envOr("POSTGRES_HOST", "localhost"),
			Port:     envOr("POSTGRES_PORT", "5432"),
			User:     envOr("POSTGRES_USER", "qiita"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DbName:   envOr("POSTGRES_DB", "qiita"),
			SSLMode:  envOr("POSTGRES_SSLMODE", "disable"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
