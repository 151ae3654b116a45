package llm

import (
	"fmt"
	"os"
	"strconv"
)

// LLM_ENDPOINT must point to the root of the OpenAI-compatible inference
// service (no /chat/completions appended). The provider appends paths
// automatically, so callers only need to supply the host base URL.

type Config struct {
	// Inference endpoint and auth
	Endpoint     string // Base URL of the OpenAI-compatible inference API
	APIKey       string // Bearer token for the inference API
	Model        string // Model name passed on every request
	HTTPTimeoutS int    // HTTP timeout seconds (default 30)
}

// NewConfig reads from environment variables. The configuration is loaded
// once at process startup and injected into the client constructor; nothing
// in this package reads the environment at call time.
func NewConfig() *Config {
	timeout := 30
	if v := os.Getenv("LLM_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gemma3"
	}

	return &Config{
		Endpoint:     os.Getenv("LLM_ENDPOINT"),
		APIKey:       os.Getenv("LLM_API_KEY"),
		Model:        model,
		HTTPTimeoutS: timeout,
	}
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("llm: missing LLM_ENDPOINT")
	}
	if c.APIKey == "" {
		return fmt.Errorf("llm: missing LLM_API_KEY")
	}
	return nil
}
