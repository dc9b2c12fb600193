package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/garage-assistant/internal/config"
)

func TestAnthropicGenerator_Generate(t *testing.T) {
	var gotModel string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/v1/messages") {
			http.NotFound(w, r)
			return
		}
		var body struct {
			Model string `json:"model"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotModel = body.Model

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-test",
			"content": [{"type": "text", "text": "Three tickets are open."}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 5}
		}`))
	}))
	defer srv.Close()

	gen := NewAnthropicGenerator(config.LLMConfig{AnthropicAPIKey: "test", Model: "claude-test"},
		option.WithBaseURL(srv.URL), option.WithMaxRetries(0))

	out, err := gen.Generate(context.Background(), "how many open tickets?")
	require.NoError(t, err)
	assert.Equal(t, "Three tickets are open.", out)
	assert.Equal(t, "claude-test", gotModel)
}

func TestAnthropicGenerator_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	}))
	defer srv.Close()

	gen := NewAnthropicGenerator(config.LLMConfig{AnthropicAPIKey: "bad"},
		option.WithBaseURL(srv.URL), option.WithMaxRetries(0))

	_, err := gen.Generate(context.Background(), "hi")
	assert.Error(t, err)
}
