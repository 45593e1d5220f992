package main

import (
	"context"
	"time"

	"github.com/stemsi/trivia-backend/internal/config"
	"github.com/stemsi/trivia-backend/internal/database"
	"github.com/stemsi/trivia-backend/internal/logger"
	"github.com/stemsi/trivia-backend/internal/repository"
	"github.com/stemsi/trivia-backend/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logger.Setup("info", "pretty")
		boot.Fatal().Err(err).Msg("Invalid configuration")
	}
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if cfg.StorageDriver != config.StoragePostgres {
		log.Fatal().Str("driver", cfg.StorageDriver).Msg("Seeding requires the postgres storage driver")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := repository.NewCategoryRepository(pool)
	questionRepo := repository.NewQuestionRepository(pool)

	existing, err := categoryRepo.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to list categories")
	}
	if len(existing) > 0 {
		log.Info().Int("categories", len(existing)).Msg("Catalog already seeded, nothing to do")
		return
	}

	// Everything goes in one transaction so a failed run leaves no partial catalog.
	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	sum, err := seed.Load(ctx, categoryRepo.WithTx(tx), questionRepo.WithTx(tx))
	if err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}
	if err := tx.Commit(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to commit seed data")
	}

	log.Info().
		Int("categories", sum.Categories).
		Int("questions", sum.Questions).
		Msg("Seeding complete")
}
