package provider

import (
	"context"
	"errors"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const openaiDefaultModel = "gpt-3.5-turbo"

// OpenAI calls the OpenAI Chat Completions API.
type OpenAI struct {
	client  *openai.Client
	model   openai.ChatModel
	timeout time.Duration
}

func newOpenAI(cfg Config) *OpenAI {
	model := cfg.Model
	if model == "" {
		model = openaiDefaultModel
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// Exactly one outbound call per Complete; the SDK retries by default.
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	cli := openai.NewClient(opts...)
	return &OpenAI{
		client:  &cli,
		model:   openai.ChatModel(model),
		timeout: cfg.Timeout,
	}
}

func (c *OpenAI) Name() string { return "openai" }

func (c *OpenAI) Complete(ctx context.Context, prompt string) (string, error) {
	return chatComplete(ctx, c.Name(), c.client, c.model, c.timeout, prompt)
}

// chatComplete issues one chat completion call against an OpenAI-compatible
// API and extracts the first choice. Shared by the OpenAI and Groq variants.
func chatComplete(ctx context.Context, name string, client *openai.Client, model openai.ChatModel, timeout time.Duration, prompt string) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := client.Chat.Completions.New(reqCtx, openai.ChatCompletionNewParams{
		Model: model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(prompt),
					},
				},
			},
		},
	})
	if err != nil {
		return "", classifyOpenAIError(name, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", NewError(KindBadResponse, name, "no completion choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

// classifyOpenAIError converts SDK failures into the taxonomy. API errors
// carry an HTTP status; everything else is a transport-level failure.
func classifyOpenAIError(name string, err error) *Error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return classifyStatus(name, apiErr.StatusCode, apiErr.Message)
	}
	return classifyTransportError(name, err)
}
