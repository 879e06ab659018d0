package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	geminiDefaultModel  = "gemini-pro"
	geminiDefaultAPIURL = "https://generativelanguage.googleapis.com"
)

// Gemini calls the Google Generative Language generateContent API.
type Gemini struct {
	http    *resty.Client
	model   string
	timeout time.Duration
}

func newGemini(cfg Config) *Gemini {
	model := cfg.Model
	if model == "" {
		model = geminiDefaultModel
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = geminiDefaultAPIURL
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("x-goog-api-key", cfg.APIKey)
	client.SetHeader("Content-Type", "application/json")

	return &Gemini{
		http:    client,
		model:   model,
		timeout: cfg.Timeout,
	}
}

type geminiGenerateRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	MaxOutputTokens int `json:"maxOutputTokens,omitempty"`
}

type geminiGenerateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *Gemini) Name() string { return "gemini" }

func (c *Gemini) Complete(ctx context.Context, prompt string) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.http.R().
		SetContext(reqCtx).
		SetBody(geminiGenerateRequest{
			Contents:         []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
			GenerationConfig: &geminiGenerationConfig{MaxOutputTokens: maxAnswerTokens},
		}).
		SetResult(&geminiGenerateResponse{}).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))
	if err != nil {
		return "", classifyTransportError(c.Name(), err)
	}
	if res.IsError() {
		return "", classifyStatus(c.Name(), res.StatusCode(), res.String())
	}

	body, ok := res.Result().(*geminiGenerateResponse)
	if !ok || body == nil || len(body.Candidates) == 0 {
		return "", NewError(KindBadResponse, c.Name(), fmt.Sprintf("no candidates in response: %s", snippet(res.String())))
	}

	var sb strings.Builder
	for _, part := range body.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	if sb.Len() == 0 {
		return "", NewError(KindBadResponse, c.Name(), fmt.Sprintf("empty candidate content: %s", snippet(res.String())))
	}
	return sb.String(), nil
}
