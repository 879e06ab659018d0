// Package httputil carries the HTTP plumbing shared by the server: router
// construction, JSON writers, request validation and error mapping.
package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"llm-qa/internal/provider"
)

// Validator validates request payload structs.
var Validator = validator.New()

// NewRouter creates a chi router with standard middleware (RequestID, RealIP, Timeout, Recoverer, Logger).
func NewRouter(log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(Recoverer(log))
	r.Use(RequestLogger(log))

	return r
}

// WriteJSON writes a JSON response with proper headers.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(body)
}

// ErrorBody is the JSON error envelope shared by every failing endpoint.
type ErrorBody struct {
	Kind     provider.Kind `json:"kind"`
	Detail   string        `json:"detail"`
	Provider string        `json:"provider,omitempty"`
	Hint     string        `json:"hint,omitempty"`
}

// StatusForKind maps the error taxonomy onto HTTP statuses: bad input is the
// caller's fault, missing configuration means the service is unavailable,
// and provider failures are upstream (gateway-class) errors.
func StatusForKind(kind provider.Kind) int {
	switch kind {
	case provider.KindInvalidInput:
		return http.StatusBadRequest
	case provider.KindConfiguration:
		return http.StatusServiceUnavailable
	case provider.KindTimeout:
		return http.StatusGatewayTimeout
	case provider.KindAuth, provider.KindRateLimit, provider.KindBadResponse, provider.KindUnknown:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// WriteError maps err onto the JSON error envelope and a status code.
func WriteError(log *slog.Logger, w http.ResponseWriter, err error) {
	var perr *provider.Error
	if !errors.As(err, &perr) {
		perr = provider.NewError(provider.KindUnknown, "", err.Error())
	}
	status := StatusForKind(perr.Kind)
	log.Error("request failed", "kind", perr.Kind, "status", status, "err", err)
	WriteJSON(w, status, map[string]any{
		"success": false,
		"error": ErrorBody{
			Kind:     perr.Kind,
			Detail:   perr.Detail,
			Provider: perr.Provider,
			Hint:     perr.Hint,
		},
	})
}

// ValidationError writes a 400 for request payloads that fail validation.
func ValidationError(log *slog.Logger, w http.ResponseWriter, err error) {
	log.Warn("payload validation failed", "err", err)
	WriteJSON(w, http.StatusBadRequest, map[string]any{
		"success": false,
		"error": ErrorBody{
			Kind:   provider.KindInvalidInput,
			Detail: err.Error(),
		},
	})
}

// RequestLogger is a lightweight HTTP logger that uses slog.
func RequestLogger(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// Recoverer logs panics via slog while preserving chi's Recoverer behavior.
func Recoverer(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic recovered", "panic", rec, "path", r.URL.Path, "method", r.Method, "request_id", middleware.GetReqID(r.Context()))
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
