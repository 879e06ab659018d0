package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// Kind identifies one failure class from the closed taxonomy. Every error
// surfaced by this package carries exactly one Kind; callers never see a
// provider-specific error type or a raw HTTP status.
type Kind string

const (
	KindConfiguration Kind = "configuration_error"
	KindInvalidInput  Kind = "invalid_input"
	KindAuth          Kind = "provider_auth_error"
	KindRateLimit     Kind = "provider_rate_limit"
	KindTimeout       Kind = "provider_timeout"
	KindBadResponse   Kind = "provider_response_error"
	KindUnknown       Kind = "provider_error"
)

// Error is the tagged failure value shared by the adapter and orchestrator.
type Error struct {
	Kind     Kind
	Provider string
	Detail   string
	Hint     string // optional remediation pointer
}

func (e *Error) Error() string {
	if e.Provider == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Provider, e.Detail)
}

// NewError builds an Error of the given kind.
func NewError(kind Kind, provider, detail string) *Error {
	return &Error{Kind: kind, Provider: provider, Detail: detail}
}

// WithHint attaches a remediation pointer and returns the same error.
func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	return e
}

// KindOf extracts the taxonomy kind from err. Errors that did not originate
// from this package classify as KindUnknown.
func KindOf(err error) Kind {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return KindUnknown
}

// classifyStatus maps an HTTP error status from a provider into the taxonomy.
func classifyStatus(provider string, status int, body string) *Error {
	detail := snippet(body)
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return NewError(KindAuth, provider,
			fmt.Sprintf("provider rejected credentials (status %d): %s", status, detail)).
			WithHint(fmt.Sprintf("check that %s holds a valid key", KeyEnvVar(provider)))
	case http.StatusTooManyRequests:
		return NewError(KindRateLimit, provider,
			fmt.Sprintf("provider rate limit reached (status %d): %s", status, detail)).
			WithHint("wait before retrying, or switch providers via LLM_PROVIDER")
	default:
		return NewError(KindUnknown, provider,
			fmt.Sprintf("unexpected status %d: %s", status, detail))
	}
}

// classifyTransportError maps a failed outbound call (no usable HTTP
// response) into the taxonomy.
func classifyTransportError(provider string, err error) *Error {
	switch {
	case isTimeout(err):
		return NewError(KindTimeout, provider,
			fmt.Sprintf("call exceeded the configured timeout: %v", err)).
			WithHint("raise LLM_TIMEOUT or try again")
	case isJSONError(err):
		return NewError(KindBadResponse, provider,
			fmt.Sprintf("malformed provider response: %v", err))
	default:
		return NewError(KindUnknown, provider, err.Error())
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func isJSONError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

// snippet trims a raw provider body down to a diagnostic-sized string.
func snippet(body string) string {
	s := strings.TrimSpace(body)
	const max = 300
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
