package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stemsi/trivia-backend/internal/config"
	"github.com/stemsi/trivia-backend/internal/database"
	"github.com/stemsi/trivia-backend/internal/handler"
	"github.com/stemsi/trivia-backend/internal/logger"
	"github.com/stemsi/trivia-backend/internal/middleware"
	"github.com/stemsi/trivia-backend/internal/repository"
	"github.com/stemsi/trivia-backend/internal/router"
	"github.com/stemsi/trivia-backend/internal/seed"
	"github.com/stemsi/trivia-backend/internal/service"
	"github.com/stemsi/trivia-backend/internal/validator"
	"github.com/stemsi/trivia-backend/internal/worker"
)

// stores bundles the repositories selected by STORAGE_DRIVER.
type stores struct {
	categories repository.CategoryStore
	questions  repository.QuestionStore
	pool       *pgxpool.Pool
}

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		boot := logger.Setup("info", "json")
		boot.Fatal().Err(err).Msg("Invalid configuration")
	}

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("storage", cfg.StorageDriver).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Trivia Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Storage ───────────────────────────────────────────────────────
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open storage")
	}
	if st.pool != nil {
		defer st.pool.Close()
	}

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// ─── Services ──────────────────────────────────────────────────────
	registry := service.NewCategoryRegistry(st.categories, rdb, cfg.CategoryCacheTTL, log)
	catalog := service.NewQuestionCatalog(st.questions, registry, service.CatalogOptions{
		StrictCategoryRefs: cfg.StrictCategoryRefs,
	}, log)
	selector := service.NewQuizSelector(catalog, service.NewRandomSource())

	if err := registry.Prewarm(ctx); err != nil {
		log.Warn().Err(err).Msg("Category cache prewarm failed")
	}

	// ─── Background Workers ────────────────────────────────────────────
	if rdb != nil {
		go worker.NewCategoryCacheWorker(registry, cfg.CategoryCacheTTL, log).Start(ctx)
	}

	// ─── Handlers ──────────────────────────────────────────────────────
	handlers := &router.Handlers{
		Category: handler.NewCategoryHandler(registry, catalog, cfg.QuestionsPerPage, log),
		Question: handler.NewQuestionHandler(catalog, registry, cfg.QuestionsPerPage, log),
		Quiz:     handler.NewQuizHandler(selector, log),
		WS:       handler.NewWSHandler(selector, log, cfg.AllowedOrigins),
		Health:   handler.NewHealthHandler(st.pool, rdb, log),
	}

	var guards router.Guards
	if cfg.AuthEnabled {
		guards.Verifier = service.NewTokenVerifier(cfg.JWTSecret)
	}
	if cfg.RateLimitPerMinute > 0 {
		guards.Limiter = middleware.NewRateLimiter(ctx, cfg.RateLimitPerMinute, time.Minute)
	}

	r := router.SetupRouter(cfg, handlers, guards, log)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}
	cancel()

	log.Info().Msg("Shutdown complete")
}

// openStores connects the configured storage driver. The memory driver is
// preloaded with the default catalog so the API is usable without a database.
func openStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (stores, error) {
	if cfg.StorageDriver == config.StorageMemory {
		questions := repository.NewMemoryQuestionRepository()
		n, err := seed.LoadQuestions(ctx, questions, nil)
		if err != nil {
			return stores{}, err
		}
		log.Warn().Int("questions", n).Msg("Using in-memory storage; changes are lost on restart")
		return stores{
			categories: repository.NewMemoryCategoryRepository(seed.Categories()...),
			questions:  questions,
		}, nil
	}

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		return stores{}, err
	}
	return stores{
		categories: repository.NewCategoryRepository(pool),
		questions:  repository.NewQuestionRepository(pool),
		pool:       pool,
	}, nil
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
