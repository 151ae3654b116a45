package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *inferenceProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := newInferenceProvider(&Config{
		Endpoint:     srv.URL,
		APIKey:       "test-token",
		Model:        "gemma3",
		HTTPTimeoutS: 5,
	})
	require.NoError(t, err)
	return p
}

func TestComplete_SendsSystemAndUserTurns(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": "{\"where_clause\": \"\", \"params\": []}"}},
			},
		})
	})

	reply, err := p.Complete(context.Background(), "system instruction", "user query")
	require.NoError(t, err)
	assert.Equal(t, "{\"where_clause\": \"\", \"params\": []}", reply)

	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "gemma3", gotBody["model"])

	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)

	first := messages[0].(map[string]any)
	assert.Equal(t, "system", first["role"])
	assert.Equal(t, "system instruction", first["content"])

	second := messages[1].(map[string]any)
	assert.Equal(t, "user", second["role"])
	assert.Equal(t, "user query", second["content"])
}

func TestComplete_NonOKStatusIsError(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})

	_, err := p.Complete(context.Background(), "sys", "user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestComplete_EmptyChoicesIsError(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	_, err := p.Complete(context.Background(), "sys", "user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestComplete_ContextCancellation(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server's background read can detect the
		// client disconnect; otherwise r.Context() is never canceled and
		// the httptest server blocks forever in Close.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := p.Complete(ctx, "sys", "user")
	require.Error(t, err)
}

func TestNewClient_RejectsIncompleteConfig(t *testing.T) {
	_, err := NewClient(&Config{Endpoint: "", APIKey: "k"})
	require.Error(t, err)

	_, err = NewClient(&Config{Endpoint: "http://localhost", APIKey: ""})
	require.Error(t, err)
}

func TestNewInferenceProvider_TrimsTrailingSlash(t *testing.T) {
	p, err := newInferenceProvider(&Config{
		Endpoint:     "http://localhost:8000/v1/",
		APIKey:       "k",
		Model:        "gemma3",
		HTTPTimeoutS: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/v1", p.baseURL)
}
