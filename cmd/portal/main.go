// Package main Portal API
//
// @title           Portal API
// @version         1.0
// @description     Backend-for-frontend of the application marketplace portal.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/peterbuiltwl/portal/internal/app/portal"
	"github.com/peterbuiltwl/portal/internal/pkg/config"
	"github.com/peterbuiltwl/portal/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "portal",
		Env:     cfg.Env,
	})

	log.Info().Str("env", cfg.Env).Msg("starting portal")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := portal.New(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize app")
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("app stopped with error")
		os.Exit(1)
	}

	log.Info().Msg("portal stopped gracefully")
}
