package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	cohereDefaultModel  = "command-r-v1:0"
	cohereDefaultAPIURL = "https://api.cohere.com"
)

// Cohere calls the Cohere v2 chat API.
type Cohere struct {
	http    *resty.Client
	model   string
	timeout time.Duration
}

func newCohere(cfg Config) *Cohere {
	model := cfg.Model
	if model == "" {
		model = cohereDefaultModel
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = cohereDefaultAPIURL
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	client.SetHeader("Content-Type", "application/json")

	return &Cohere{
		http:    client,
		model:   model,
		timeout: cfg.Timeout,
	}
}

type cohereChatRequest struct {
	Model     string          `json:"model"`
	Messages  []cohereMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens,omitempty"`
}

type cohereMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type cohereChatResponse struct {
	Message struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"message"`
}

func (c *Cohere) Name() string { return "cohere" }

func (c *Cohere) Complete(ctx context.Context, prompt string) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.http.R().
		SetContext(reqCtx).
		SetBody(cohereChatRequest{
			Model:     c.model,
			Messages:  []cohereMessage{{Role: "user", Content: prompt}},
			MaxTokens: maxAnswerTokens,
		}).
		SetResult(&cohereChatResponse{}).
		Post("/v2/chat")
	if err != nil {
		return "", classifyTransportError(c.Name(), err)
	}
	if res.IsError() {
		return "", classifyStatus(c.Name(), res.StatusCode(), res.String())
	}

	body, ok := res.Result().(*cohereChatResponse)
	if !ok || body == nil {
		return "", NewError(KindBadResponse, c.Name(), fmt.Sprintf("unparseable response: %s", snippet(res.String())))
	}
	for _, part := range body.Message.Content {
		if part.Type == "text" && part.Text != "" {
			return part.Text, nil
		}
	}
	return "", NewError(KindBadResponse, c.Name(), fmt.Sprintf("no text content in response: %s", snippet(res.String())))
}
