package qa_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"

	"llm-qa/internal/config"
	"llm-qa/internal/provider"
	"llm-qa/internal/qa"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAskSuccessRoundTrip(t *testing.T) {
	client := new(provider.MockClient)
	client.On("Complete", mock.Anything, "what is python").
		Return("Python is a programming language.", nil).Once()

	svc := qa.NewWithClient("groq", client, testLogger())

	got, err := svc.Ask(context.Background(), "What is Python?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.OriginalQuestion != "What is Python?" {
		t.Errorf("OriginalQuestion = %q", got.OriginalQuestion)
	}
	if got.ProcessedQuestion != "what is python" {
		t.Errorf("ProcessedQuestion = %q", got.ProcessedQuestion)
	}
	wantTokens := []string{"what", "is", "python"}
	if len(got.Tokens) != len(wantTokens) {
		t.Fatalf("Tokens = %v, want %v", got.Tokens, wantTokens)
	}
	for i := range wantTokens {
		if got.Tokens[i] != wantTokens[i] {
			t.Errorf("Tokens[%d] = %q, want %q", i, got.Tokens[i], wantTokens[i])
		}
	}
	if got.TokenCount != 3 {
		t.Errorf("TokenCount = %d, want 3", got.TokenCount)
	}
	if got.Answer != "Python is a programming language." {
		t.Errorf("Answer = %q", got.Answer)
	}

	client.AssertExpectations(t)
}

func TestAskRejectsBlankInput(t *testing.T) {
	for _, question := range []string{"", "   ", "\t\n"} {
		client := new(provider.MockClient)
		svc := qa.NewWithClient("groq", client, testLogger())

		_, err := svc.Ask(context.Background(), question)
		if err == nil {
			t.Fatalf("expected error for question %q", question)
		}
		if got := provider.KindOf(err); got != provider.KindInvalidInput {
			t.Errorf("KindOf = %s, want %s", got, provider.KindInvalidInput)
		}
		// No outbound call may be attempted for rejected input.
		client.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
	}
}

func TestAskPropagatesProviderErrorUnchanged(t *testing.T) {
	rateLimited := provider.NewError(provider.KindRateLimit, "groq", "too many requests")

	client := new(provider.MockClient)
	client.On("Complete", mock.Anything, mock.Anything).Return("", rateLimited).Once()

	svc := qa.NewWithClient("groq", client, testLogger())

	_, err := svc.Ask(context.Background(), "any question")
	if err != rateLimited {
		t.Errorf("error not propagated verbatim: got %v", err)
	}
	client.AssertExpectations(t)
}

func TestAskSendsNormalizedPrompt(t *testing.T) {
	client := new(provider.MockClient)
	client.On("Complete", mock.Anything, "dont stop now").Return("ok", nil).Once()

	svc := qa.NewWithClient("cohere", client, testLogger())

	if _, err := svc.Ask(context.Background(), "  DON'T   stop, now!  "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	client.AssertExpectations(t)
}

func TestNotReadyService(t *testing.T) {
	// Selected provider has no API key configured.
	svc := qa.New(config.Config{Provider: "groq"}, testLogger())

	if svc.Ready() {
		t.Fatal("expected service to be not ready")
	}

	status := svc.Status()
	if status.Status != "misconfigured" || status.Ready {
		t.Errorf("Status() = %+v, want misconfigured/not ready", status)
	}
	if status.Provider != "groq" {
		t.Errorf("Status().Provider = %q", status.Provider)
	}
	if status.Error == "" {
		t.Error("expected error detail in status")
	}

	_, err := svc.Ask(context.Background(), "What is Python?")
	if got := provider.KindOf(err); got != provider.KindConfiguration {
		t.Errorf("KindOf = %s, want %s", got, provider.KindConfiguration)
	}
}

func TestUnsupportedProviderNotReady(t *testing.T) {
	svc := qa.New(config.Config{Provider: "huggingface"}, testLogger())
	if svc.Ready() {
		t.Fatal("expected service to be not ready")
	}
	_, err := svc.Ask(context.Background(), "question")
	if got := provider.KindOf(err); got != provider.KindConfiguration {
		t.Errorf("KindOf = %s, want %s", got, provider.KindConfiguration)
	}
}

func TestReadyStatus(t *testing.T) {
	svc := qa.NewWithClient("gemini", new(provider.MockClient), testLogger())

	if !svc.Ready() {
		t.Fatal("expected ready service")
	}
	status := svc.Status()
	if status.Status != "healthy" || !status.Ready || status.Provider != "gemini" || status.Error != "" {
		t.Errorf("Status() = %+v", status)
	}
}
