package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/trivia-backend/internal/config"
	"github.com/stemsi/trivia-backend/internal/model"
	"github.com/stemsi/trivia-backend/internal/repository"
)

// CategoryRegistry exposes the read-only category catalog.
//
// The id -> label mapping is cached in Redis when a client is configured.
// Categories have no update path, so the cache only expires on TTL.
type CategoryRegistry struct {
	store repository.CategoryStore
	rdb   *redis.Client
	ttl   time.Duration
	log   zerolog.Logger
}

// NewCategoryRegistry creates a CategoryRegistry. rdb may be nil.
func NewCategoryRegistry(store repository.CategoryStore, rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *CategoryRegistry {
	return &CategoryRegistry{
		store: store,
		rdb:   rdb,
		ttl:   ttl,
		log:   log.With().Str("component", "category_registry").Logger(),
	}
}

// List returns all categories ordered by id.
func (s *CategoryRegistry) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if categories == nil {
		categories = []model.Category{}
	}
	return categories, nil
}

// AsMapping returns the id -> label mapping of every category.
func (s *CategoryRegistry) AsMapping(ctx context.Context) (map[int]string, error) {
	if mapping, ok := s.cachedMapping(ctx); ok {
		return mapping, nil
	}

	categories, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	mapping := make(map[int]string, len(categories))
	for _, c := range categories {
		mapping[c.ID] = c.Label
	}
	s.cacheMapping(ctx, mapping)
	return mapping, nil
}

// Exists reports whether the category id is known.
func (s *CategoryRegistry) Exists(ctx context.Context, id int) (bool, error) {
	ok, err := s.store.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("check category: %w", err)
	}
	return ok, nil
}

// Label returns the label of a category, or "" and false if it is unknown.
func (s *CategoryRegistry) Label(ctx context.Context, id int) (string, bool, error) {
	mapping, err := s.AsMapping(ctx)
	if err != nil {
		return "", false, err
	}
	label, ok := mapping[id]
	return label, ok, nil
}

// Prewarm loads the mapping into Redis before traffic arrives.
func (s *CategoryRegistry) Prewarm(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}

	categories, err := s.List(ctx)
	if err != nil {
		return err
	}

	mapping := make(map[int]string, len(categories))
	for _, c := range categories {
		mapping[c.ID] = c.Label
	}
	s.cacheMapping(ctx, mapping)

	s.log.Info().Int("categories", len(mapping)).Msg("Category cache warmed")
	return nil
}

func (s *CategoryRegistry) cachedMapping(ctx context.Context) (map[int]string, bool) {
	if s.rdb == nil {
		return nil, false
	}

	raw, err := s.rdb.HGetAll(ctx, config.CacheKey.CategoryMappingKey()).Result()
	if err != nil {
		s.log.Warn().Err(err).Msg("Category cache read failed, using store")
		return nil, false
	}
	if len(raw) == 0 {
		return nil, false
	}

	mapping := make(map[int]string, len(raw))
	for k, v := range raw {
		id, err := strconv.Atoi(k)
		if err != nil {
			s.log.Warn().Str("field", k).Msg("Corrupt category cache entry, using store")
			return nil, false
		}
		mapping[id] = v
	}
	return mapping, true
}

func (s *CategoryRegistry) cacheMapping(ctx context.Context, mapping map[int]string) {
	if s.rdb == nil || len(mapping) == 0 {
		return
	}

	fields := make(map[string]interface{}, len(mapping))
	for id, label := range mapping {
		fields[strconv.Itoa(id)] = label
	}

	key := config.CacheKey.CategoryMappingKey()
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fields)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warn().Err(err).Msg("Category cache write failed")
	}
}
