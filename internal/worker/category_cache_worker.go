package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// MinCategoryRefreshInterval bounds how often the cache is rewritten.
const MinCategoryRefreshInterval = 10 * time.Second

// CacheWarmer rewrites a cached projection from its source of truth.
type CacheWarmer interface {
	Prewarm(ctx context.Context) error
}

// CategoryCacheWorker periodically rewrites the category mapping cache so
// readers keep hitting Redis instead of falling through once the TTL lapses.
type CategoryCacheWorker struct {
	warmer   CacheWarmer
	interval time.Duration
	log      zerolog.Logger
}

// NewCategoryCacheWorker refreshes every half TTL, never faster than
// MinCategoryRefreshInterval.
func NewCategoryCacheWorker(warmer CacheWarmer, ttl time.Duration, log zerolog.Logger) *CategoryCacheWorker {
	return &CategoryCacheWorker{
		warmer:   warmer,
		interval: max(ttl/2, MinCategoryRefreshInterval),
		log:      log.With().Str("component", "category_cache_worker").Logger(),
	}
}

// Start blocks until ctx is cancelled.
func (w *CategoryCacheWorker) Start(ctx context.Context) {
	w.log.Info().Dur("interval", w.interval).Msg("CategoryCacheWorker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("CategoryCacheWorker stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *CategoryCacheWorker) refresh(ctx context.Context) {
	if err := w.warmer.Prewarm(ctx); err != nil && ctx.Err() == nil {
		w.log.Error().Err(err).Msg("Category cache refresh failed")
	}
}
