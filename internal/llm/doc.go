// Package llm provides a thin client for an OpenAI-compatible chat-completions
// endpoint.
//
// The remote model is treated as an opaque collaborator: text in, text out,
// may fail or time out. The client carries a bounded HTTP timeout so a hung
// endpoint cannot block a search indefinitely; callers see the expiry as an
// ordinary error.
//
//	cfg := llm.NewConfig()
//	client, err := llm.NewClient(cfg)
//	if err != nil {
//		return err
//	}
//	reply, err := client.Complete(ctx, systemPrompt, userQuery)
//
// Configuration comes from the environment, loaded once at startup:
//
//	LLM_ENDPOINT                  # base URL of the inference API
//	LLM_API_KEY                   # bearer token
//	LLM_MODEL                     # model name (default gemma3)
//	LLM_HTTP_TIMEOUT_SECONDS      # request timeout (default 30)
package llm
