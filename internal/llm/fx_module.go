package llm

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the chat-completion client into Fx.
//
// It provides:
//   - Config          (NewConfig)
//   - *Client         (NewClient)
//   - Lifecycle hook  (RegisterLLMLifecycle)
var FXModule = fx.Module(
	"llm",

	fx.Provide(
		NewConfig, // -> *Config
		NewClient, // -> *Client
	),

	fx.Invoke(RegisterLLMLifecycle),
)

// RegisterLLMLifecycle ensures that the Client (and its provider)
// are properly cleaned up on application shutdown.
func RegisterLLMLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
