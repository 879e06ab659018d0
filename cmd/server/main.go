package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"llm-qa/internal/app"
	"llm-qa/internal/httputil"
	"llm-qa/internal/provider"
)

type askRequest struct {
	Question string `json:"question"`
}

func main() {
	deps := app.Build()

	r := httputil.NewRouter(deps.Log)
	r.Post("/api/ask", askHandler(deps))
	r.Get("/api/health", healthHandler(deps))
	r.NotFound(notFoundHandler())

	addr := fmt.Sprintf(":%d", deps.Config.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deps.Log.Info("server listening", "addr", addr, "provider", deps.Config.Provider, "ready", deps.QA.Ready())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		deps.Log.Error("server error", "err", err)
		os.Exit(1)
	}
}

func askHandler(deps app.Deps) http.HandlerFunc {
	maxLen := fmt.Sprintf("max=%d", deps.Config.MaxQuestionLength)

	return func(w http.ResponseWriter, r *http.Request) {
		var req askRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.ValidationError(deps.Log, w, fmt.Errorf("invalid JSON payload: %w", err))
			return
		}
		if err := httputil.Validator.Var(req.Question, maxLen); err != nil {
			httputil.ValidationError(deps.Log, w, fmt.Errorf("question exceeds %d characters", deps.Config.MaxQuestionLength))
			return
		}

		// Emptiness is the orchestrator's call; it owns the invalid_input kind.
		result, err := deps.QA.Ask(r.Context(), req.Question)
		if err != nil {
			httputil.WriteError(deps.Log, w, err)
			return
		}

		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    result,
		})
	}
}

func healthHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := deps.QA.Status()
		code := http.StatusOK
		if !status.Ready {
			code = http.StatusServiceUnavailable
		}
		httputil.WriteJSON(w, code, status)
	}
}

func notFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusNotFound, map[string]any{
			"success": false,
			"error": httputil.ErrorBody{
				Kind:   provider.KindInvalidInput,
				Detail: "endpoint not found",
			},
		})
	}
}
