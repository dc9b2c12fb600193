package agents

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/garage-assistant/internal/llm/llmtest"
)

func TestExtractNewsTopic(t *testing.T) {
	tests := map[string]string{
		"latest AI news":                     "AI",
		"any news on quantum computing?":     "quantum computing",
		"news about cloud security":          "cloud security",
		"give me the blockchain news please": "blockchain",
		"what's up":                          "technology",
	}
	for input, want := range tests {
		assert.Equal(t, want, ExtractNewsTopic(input), input)
	}
}

func TestNewsResponder_Handle(t *testing.T) {
	deps := testDeps()
	gen := llmtest.Fixed("1. Chips get faster")
	deps.Generator = gen
	r := NewNewsResponder(deps)

	got := r.Handle(context.Background(), "latest AI news")
	assert.Equal(t, "Latest News about 'AI':\n"+strings.Repeat("=", 70)+"\n\n1. Chips get faster", got)

	prompts := gen.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "about 'AI' as if reporting current events for the date 2025-12-05")
}

func TestNewsResponder_GenerationError(t *testing.T) {
	r := NewNewsResponder(testDeps())
	got := r.Handle(context.Background(), "latest AI news")
	assert.Equal(t, "Error fetching news: "+llmtest.ErrStub.Error(), got)
}
