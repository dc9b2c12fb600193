package llm

import (
	"context"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/spec-kit/garage-assistant/internal/config"
)

const defaultOpenAIModel = "gpt-4o-mini"

// LangchainGenerator generates text through any langchaingo model.
type LangchainGenerator struct {
	model   llms.Model
	options []llms.CallOption
}

// NewLangchainGenerator applies temperature and max tokens to every call.
func NewLangchainGenerator(model llms.Model, temperature float64, maxTokens int) *LangchainGenerator {
	opts := []llms.CallOption{llms.WithTemperature(temperature)}
	if maxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(maxTokens))
	}
	return &LangchainGenerator{model: model, options: opts}
}

// NewOpenAIGenerator builds an OpenAI chat model from config.
func NewOpenAIGenerator(cfg config.LLMConfig) (*LangchainGenerator, error) {
	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	opts := []openai.Option{
		openai.WithModel(model),
		openai.WithToken(cfg.OpenAIAPIKey),
	}
	if cfg.OpenAIBaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.OpenAIBaseURL))
	}
	m, err := openai.New(opts...)
	if err != nil {
		return nil, err
	}
	return NewLangchainGenerator(m, cfg.Temperature, cfg.MaxTokens), nil
}

func (g *LangchainGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	out, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt, g.options...)
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", ErrEmptyResponse
	}
	return out, nil
}
