package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds process-wide runtime configuration. It is read once at
// startup and never mutated afterwards; changing it requires a restart.
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Input limits
	MaxQuestionLength int `env:"MAX_QUESTION_LENGTH" envDefault:"2000"`

	// LLM provider selection and credentials
	Provider  string `env:"LLM_PROVIDER" envDefault:"groq"` // "groq", "openai", "cohere" or "gemini"
	GroqKey   string `env:"GROQ_API_KEY"`
	OpenAIKey string `env:"OPENAI_API_KEY"`
	CohereKey string `env:"COHERE_API_KEY"`
	GeminiKey string `env:"GEMINI_API_KEY"`

	// Model override; empty means the provider's default model.
	Model string `env:"LLM_MODEL"`
	// Endpoint override for proxies; empty means the provider's own endpoint.
	BaseURL string `env:"LLM_BASE_URL"`
	// Upper bound on a single outbound provider call.
	Timeout time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}

// ProviderAPIKey returns the API key configured for the selected provider,
// or "" when it is absent or the provider name is unknown.
func (c Config) ProviderAPIKey() string {
	switch c.Provider {
	case "groq":
		return c.GroqKey
	case "openai":
		return c.OpenAIKey
	case "cohere":
		return c.CohereKey
	case "gemini":
		return c.GeminiKey
	}
	return ""
}
