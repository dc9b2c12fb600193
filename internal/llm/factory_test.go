package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/garage-assistant/internal/config"
)

func TestNewGenerator_WithoutKeyIsUnavailable(t *testing.T) {
	gen, err := NewGenerator(config.LLMConfig{Provider: "openai"}, zap.NewNop())
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewGenerator_SelectsProvider(t *testing.T) {
	gen, err := NewGenerator(config.LLMConfig{Provider: "anthropic", AnthropicAPIKey: "k"}, zap.NewNop())
	require.NoError(t, err)
	lg, ok := gen.(*loggingGenerator)
	require.True(t, ok)
	assert.IsType(t, &AnthropicGenerator{}, lg.next)

	gen, err = NewGenerator(config.LLMConfig{Provider: "openai", OpenAIAPIKey: "k"}, zap.NewNop())
	require.NoError(t, err)
	lg, ok = gen.(*loggingGenerator)
	require.True(t, ok)
	assert.IsType(t, &LangchainGenerator{}, lg.next)
}
