// Command seed loads the demo dataset into the configured database.
// Safe to run repeatedly.
package main

import (
	"context"
	"os"

	"github.com/educourse/course-system/internal/infrastructure/config"
	"github.com/educourse/course-system/internal/infrastructure/db/postgres"
	"github.com/educourse/course-system/pkg/logger"
)

func main() {
	log := logger.Init(logger.Options{Level: os.Getenv("LOG_LEVEL"), Pretty: true})
	cfg := config.Load(log)

	ctx := context.Background()

	db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer func() { _ = postgres.Close(db) }()

	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	if err := postgres.Seed(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().Msg("database seeded: 3 users, 5 courses, 6 enrollments")
}
