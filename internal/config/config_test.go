package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("QUESTIONS_PER_PAGE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, 10, cfg.QuestionsPerPage)
	assert.Equal(t, time.Hour, cfg.CategoryCacheTTL)
	assert.False(t, cfg.StrictCategoryRefs)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("QUESTIONS_PER_PAGE", "25")
	t.Setenv("STRICT_CATEGORY_REFS", "true")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, https://trivia.example.com")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.QuestionsPerPage)
	assert.True(t, cfg.StrictCategoryRefs)
	assert.Equal(t, []string{"http://localhost:3000", "https://trivia.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 0, cfg.RateLimitPerMinute)
}

func TestLoad_AuthRequiresSecret(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")

	_, err := Load()
	assert.Error(t, err)
}
