// Package qa composes the text normalizer and the provider adapter into a
// single ask operation with a readiness state fixed at construction.
package qa

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"llm-qa/internal/config"
	"llm-qa/internal/provider"
	"llm-qa/internal/textproc"
)

// Answer is the success payload shared verbatim by the CLI and HTTP surfaces.
type Answer struct {
	OriginalQuestion  string   `json:"original_question"`
	ProcessedQuestion string   `json:"processed_question"`
	Tokens            []string `json:"tokens"`
	TokenCount        int      `json:"token_count"`
	Answer            string   `json:"answer"`
}

// Status is the health snapshot consumed by the CLI banner and the health
// endpoint. Producing it never performs network activity.
type Status struct {
	Status   string `json:"status"` // "healthy" or "misconfigured"
	Provider string `json:"provider"`
	Ready    bool   `json:"ready"`
	Error    string `json:"error,omitempty"`
	Hint     string `json:"hint,omitempty"`
}

// Service answers questions through one provider client chosen at
// construction. It is either Ready or NotReady for its whole lifetime:
// a failed construction is captured, not raised, and every subsequent Ask
// returns the captured configuration error.
type Service struct {
	providerName string
	client       provider.Client
	initErr      *provider.Error
	log          *slog.Logger
}

// New builds the service for the configured provider. It never fails;
// a misconfigured provider yields a NotReady service.
func New(cfg config.Config, log *slog.Logger) *Service {
	client, err := provider.New(provider.Config{
		Name:    cfg.Provider,
		APIKey:  cfg.ProviderAPIKey(),
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		var perr *provider.Error
		if !errors.As(err, &perr) {
			perr = provider.NewError(provider.KindConfiguration, cfg.Provider, err.Error())
		}
		log.Warn("q&a service is not ready", "provider", cfg.Provider, "err", err)
		return &Service{providerName: cfg.Provider, initErr: perr, log: log}
	}
	log.Info("q&a service ready", "provider", cfg.Provider, "model", cfg.Model)
	return &Service{providerName: cfg.Provider, client: client, log: log}
}

// NewWithClient wires an already-built provider client, bypassing
// configuration. Used by tests and embedded callers.
func NewWithClient(providerName string, client provider.Client, log *slog.Logger) *Service {
	return &Service{providerName: providerName, client: client, log: log}
}

// Ready reports whether the service holds a usable provider client.
func (s *Service) Ready() bool { return s.initErr == nil }

// Status returns the current readiness snapshot.
func (s *Service) Status() Status {
	if s.initErr != nil {
		return Status{
			Status:   "misconfigured",
			Provider: s.providerName,
			Ready:    false,
			Error:    s.initErr.Detail,
			Hint:     s.initErr.Hint,
		}
	}
	return Status{Status: "healthy", Provider: s.providerName, Ready: true}
}

// Ask normalizes the question, sends the normalized text to the provider
// and assembles the answer. Adapter failures propagate unchanged.
func (s *Service) Ask(ctx context.Context, question string) (Answer, error) {
	if s.initErr != nil {
		return Answer{}, s.initErr
	}
	if strings.TrimSpace(question) == "" {
		return Answer{}, provider.NewError(provider.KindInvalidInput, s.providerName, "question is empty").
			WithHint("enter a non-empty question")
	}

	processed := textproc.Normalize(question)

	start := time.Now()
	answer, err := s.client.Complete(ctx, processed.Normalized)
	if err != nil {
		s.log.Warn("provider call failed",
			"provider", s.providerName,
			"kind", provider.KindOf(err),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return Answer{}, err
	}
	s.log.Info("question answered",
		"provider", s.providerName,
		"tokens", len(processed.Tokens),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return Answer{
		OriginalQuestion:  question,
		ProcessedQuestion: processed.Normalized,
		Tokens:            processed.Tokens,
		TokenCount:        len(processed.Tokens),
		Answer:            answer,
	}, nil
}
