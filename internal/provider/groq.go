package provider

import (
	"context"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	groqDefaultModel  = "mixtral-8x7b-32768"
	groqDefaultAPIURL = "https://api.groq.com/openai/v1"
)

// Groq talks to Groq's OpenAI-compatible chat completion endpoint, so it
// reuses the OpenAI SDK and differs only in endpoint and default model.
type Groq struct {
	client  *openai.Client
	model   openai.ChatModel
	timeout time.Duration
}

func newGroq(cfg Config) *Groq {
	model := cfg.Model
	if model == "" {
		model = groqDefaultModel
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = groqDefaultAPIURL
	}
	cli := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(baseURL),
		// Exactly one outbound call per Complete; the SDK retries by default.
		option.WithMaxRetries(0),
	)
	return &Groq{
		client:  &cli,
		model:   openai.ChatModel(model),
		timeout: cfg.Timeout,
	}
}

func (c *Groq) Name() string { return "groq" }

func (c *Groq) Complete(ctx context.Context, prompt string) (string, error) {
	return chatComplete(ctx, c.Name(), c.client, c.model, c.timeout, prompt)
}
