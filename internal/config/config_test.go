package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv guards against parallel env mutation; clear what matters here.
	for _, key := range []string{"PORT", "LOG_LEVEL", "LLM_PROVIDER", "LLM_MODEL", "LLM_TIMEOUT", "MAX_QUESTION_LENGTH"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Port", cfg.Port, 8080},
		{"LogLevel", cfg.LogLevel, "info"},
		{"Provider", cfg.Provider, "groq"},
		{"Model", cfg.Model, ""},
		{"Timeout", cfg.Timeout, 30 * time.Second},
		{"MaxQuestionLength", cfg.MaxQuestionLength, 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %s=%v, got %v", tt.name, tt.expected, tt.got)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LLM_PROVIDER", "cohere")
	t.Setenv("LLM_TIMEOUT", "5s")

	cfg := Load()

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.Provider != "cohere" {
		t.Errorf("expected provider 'cohere', got %s", cfg.Provider)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %s", cfg.Timeout)
	}
}

func TestProviderAPIKey(t *testing.T) {
	tests := []struct {
		provider string
		cfg      Config
		wantKey  string
	}{
		{"groq", Config{Provider: "groq", GroqKey: "gk"}, "gk"},
		{"openai", Config{Provider: "openai", OpenAIKey: "ok"}, "ok"},
		{"cohere", Config{Provider: "cohere", CohereKey: "ck"}, "ck"},
		{"gemini", Config{Provider: "gemini", GeminiKey: "gmk"}, "gmk"},
		{"unknown", Config{Provider: "huggingface"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			if got := tt.cfg.ProviderAPIKey(); got != tt.wantKey {
				t.Errorf("ProviderAPIKey() = %q, want %q", got, tt.wantKey)
			}
		})
	}
}
