// Package provider hides the differences between external LLM backends
// behind a single completion interface and a closed error taxonomy.
package provider

import (
	"context"
	"fmt"
	"time"
)

// Client is the uniform surface over one LLM backend. Implementations hold
// no mutable state after construction and are safe for concurrent use.
type Client interface {
	// Complete sends one prompt and returns the raw answer text. Every
	// failure is an *Error from this package; exactly one outbound call is
	// attempted per invocation.
	Complete(ctx context.Context, prompt string) (string, error)

	// Name returns the stable lowercase provider identifier.
	Name() string
}

// Config describes how to construct a provider client. It is resolved once
// at startup from the process environment.
type Config struct {
	Name    string // "groq", "openai", "cohere" or "gemini"
	APIKey  string
	Model   string        // empty selects the provider's default model
	BaseURL string        // empty selects the provider's own endpoint
	Timeout time.Duration // bound on a single outbound call
}

const (
	defaultTimeout = 30 * time.Second

	// maxAnswerTokens caps the completion length requested from providers.
	maxAnswerTokens = 1024
)

// KeyEnvVar names the environment variable carrying the given provider's
// API key, for remediation hints.
func KeyEnvVar(name string) string {
	switch name {
	case "groq":
		return "GROQ_API_KEY"
	case "openai":
		return "OPENAI_API_KEY"
	case "cohere":
		return "COHERE_API_KEY"
	case "gemini":
		return "GEMINI_API_KEY"
	}
	return ""
}

// New builds the client variant selected by cfg.Name. It fails before any
// network activity when the name is unsupported or the API key is missing;
// the returned error always has Kind KindConfiguration in that case.
func New(cfg Config) (Client, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	switch cfg.Name {
	case "groq", "openai", "cohere", "gemini":
		if cfg.APIKey == "" {
			return nil, NewError(KindConfiguration, cfg.Name,
				fmt.Sprintf("missing API key for provider %q", cfg.Name)).
				WithHint(fmt.Sprintf("set %s in the environment", KeyEnvVar(cfg.Name)))
		}
	default:
		return nil, NewError(KindConfiguration, cfg.Name,
			fmt.Sprintf("unsupported provider %q", cfg.Name)).
			WithHint(`set LLM_PROVIDER to one of "groq", "openai", "cohere" or "gemini"`)
	}

	switch cfg.Name {
	case "groq":
		return newGroq(cfg), nil
	case "openai":
		return newOpenAI(cfg), nil
	case "cohere":
		return newCohere(cfg), nil
	default:
		return newGemini(cfg), nil
	}
}
