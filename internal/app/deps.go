package app

import (
	"log/slog"

	"github.com/joho/godotenv"

	"llm-qa/internal/config"
	"llm-qa/internal/logger"
	"llm-qa/internal/qa"
)

// Deps bundles the runtime dependencies shared by the CLI and the server.
type Deps struct {
	Config config.Config
	Log    *slog.Logger
	QA     *qa.Service
}

// Build loads env, config, and the q&a service. A misconfigured provider
// does not fail the build: the service comes up NotReady and each surface
// decides how to present that.
func Build() Deps {
	// A local .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	svc := qa.New(cfg, log)

	return Deps{
		Config: cfg,
		Log:    log,
		QA:     svc,
	}
}
