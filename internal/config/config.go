package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App       AppConfig
	Redis     RedisConfig
	Logger    LoggerConfig
	LLM       LLMConfig
	CORS      CORSConfig
	Agents    AgentsConfig
	Knowledge KnowledgeConfig
	RateLimit RateLimitConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// RedisConfig holds Redis connection values. An empty Addr keeps the
// terminal output slot in process memory.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	OutputKey string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// LLMConfig selects the language model provider backing classification and generation.
type LLMConfig struct {
	Provider        string
	Model           string
	Temperature     float64
	MaxTokens       int
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	AnthropicAPIKey string
}

// CORSConfig lists browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string
}

// AgentsConfig tunes responder output.
type AgentsConfig struct {
	MaxLines int
}

// KnowledgeConfig points at an optional YAML knowledge file. Empty uses the
// built-in reference data.
type KnowledgeConfig struct {
	Path string
}

// RateLimitConfig throttles POST /chat process wide. A zero rate disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	temperature, err := strconv.ParseFloat(getEnv("LLM_TEMPERATURE", "0.7"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid LLM_TEMPERATURE: %w", err)
	}

	chatRate, err := strconv.ParseFloat(getEnv("CHAT_RATE_LIMIT_RPS", "0"), 64)
	if err != nil || chatRate < 0 {
		return nil, fmt.Errorf("invalid CHAT_RATE_LIMIT_RPS %q", os.Getenv("CHAT_RATE_LIMIT_RPS"))
	}

	provider := strings.ToLower(getEnv("LLM_PROVIDER", "openai"))
	if provider != "openai" && provider != "anthropic" {
		return nil, fmt.Errorf("invalid LLM_PROVIDER %q: want openai or anthropic", provider)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "garage-assistant"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "127.0.0.1"),
			Port:                  getEnv("APP_PORT", "8000"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 120),
		},
		Redis: RedisConfig{
			Addr:      os.Getenv("REDIS_ADDR"),
			Password:  os.Getenv("REDIS_PASSWORD"),
			DB:        redisDB,
			OutputKey: getEnv("REDIS_OUTPUT_KEY", "garage-assistant:terminal-output"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		LLM: LLMConfig{
			Provider:        provider,
			Model:           os.Getenv("LLM_MODEL"),
			Temperature:     temperature,
			MaxTokens:       getEnvAsInt("LLM_MAX_TOKENS", 2048),
			OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
			OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
			AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{
				"http://localhost:3000",
				"http://127.0.0.1:3000",
				"http://localhost:5173",
			}),
		},
		Agents: AgentsConfig{
			MaxLines: getEnvAsInt("RESPONSE_MAX_LINES", 10),
		},
		Knowledge: KnowledgeConfig{
			Path: os.Getenv("KNOWLEDGE_STORE_PATH"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: chatRate,
			Burst:             getEnvAsInt("CHAT_RATE_LIMIT_BURST", 5),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// APIKey returns the credential for the selected provider.
func (l LLMConfig) APIKey() string {
	if l.Provider == "anthropic" {
		return l.AnthropicAPIKey
	}
	return l.OpenAIAPIKey
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
