package llm

import (
	"context"
	"fmt"
)

// Client is the public entrypoint for chat completions.
//
// It hides all provider details (inference endpoints, HTTP, etc.)
// from the application layer.
type Client struct {
	provider Provider
}

// NewClient constructs a Client from Config.
// It validates the config and internally constructs the inference provider.
// Application code should depend on *Client, not on Provider or inferenceProvider.
func NewClient(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("llm: invalid config: %w", err)
	}

	p, err := newInferenceProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("llm: failed to create provider: %w", err)
	}

	return &Client{provider: p}, nil
}

// NewClientWithProvider constructs a Client around an existing Provider.
// Used by tests to substitute a mock provider.
func NewClientWithProvider(p Provider) *Client {
	return &Client{provider: p}
}

// Complete executes a single chat completion request.
func (c *Client) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	return c.provider.Complete(ctx, systemPrompt, userMessage)
}

// Close allows the client to release any internal resources used by the provider.
// Currently this is a no-op unless the provider implements Close().
func (c *Client) Close() error {
	if closer, ok := c.provider.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
