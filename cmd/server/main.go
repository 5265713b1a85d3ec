package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/educourse/course-system/internal/api"
	"github.com/educourse/course-system/internal/infrastructure/config"
	"github.com/educourse/course-system/internal/infrastructure/db/postgres"
	"github.com/educourse/course-system/pkg/logger"
)

// @title        EduCourse API
// @version      1.0
// @description  Course enrollment API: catalog, authentication, and the enrollment ledger.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	log := logger.Init(logger.Options{
		Level:  os.Getenv("LOG_LEVEL"),
		Pretty: os.Getenv("ENV") == "development",
	})

	cfg := config.Load(log)
	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer func() {
		if err := postgres.Close(db); err != nil {
			log.Warn().Err(err).Msg("failed to close postgres")
		}
	}()

	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	e := api.NewRouter(db, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
