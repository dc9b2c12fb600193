package llm

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/garage-assistant/internal/config"
)

// NewGenerator selects the provider named in cfg. Without an API key it
// returns Unavailable so every caller drops to its local fallback.
func NewGenerator(cfg config.LLMConfig, logger *zap.Logger) (Generator, error) {
	if cfg.APIKey() == "" {
		logger.Warn("no llm api key configured; responders will use local fallbacks",
			zap.String("provider", cfg.Provider))
		return WithLogging(Unavailable{}, logger), nil
	}

	var (
		gen Generator
		err error
	)
	switch cfg.Provider {
	case "anthropic":
		gen = NewAnthropicGenerator(cfg)
	default:
		gen, err = NewOpenAIGenerator(cfg)
	}
	if err != nil {
		return nil, err
	}
	logger.Info("llm provider ready", zap.String("provider", cfg.Provider), zap.String("model", cfg.Model))
	return WithLogging(gen, logger), nil
}

type loggingGenerator struct {
	next   Generator
	logger *zap.Logger
}

// WithLogging records latency and failures of every generation call.
func WithLogging(next Generator, logger *zap.Logger) Generator {
	return &loggingGenerator{next: next, logger: logger}
}

func (g *loggingGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	out, err := g.next.Generate(ctx, prompt)
	fields := []zap.Field{
		zap.Int("prompt_bytes", len(prompt)),
		zap.Int("response_bytes", len(out)),
		zap.Duration("latency", time.Since(start)),
	}
	if err != nil {
		g.logger.Debug("llm generate failed", append(fields, zap.Error(err))...)
		return "", err
	}
	g.logger.Debug("llm generate", fields...)
	return out, nil
}
