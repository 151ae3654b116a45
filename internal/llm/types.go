package llm

import "context"

// Provider contract

//go:generate mockgen -source=types.go -destination=mock_provider.go -package=llm
type Provider interface {
	// Complete sends one chat request (system instruction + single user turn)
	// and returns the model's free-text completion.
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
