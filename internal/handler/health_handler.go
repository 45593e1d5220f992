package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/trivia-backend/internal/response"
)

const (
	healthUp       = "up"
	healthDown     = "down"
	healthDisabled = "disabled"
	healthTimeout  = 2 * time.Second
)

// HealthHandler reports backing store reachability.
type HealthHandler struct {
	pool *pgxpool.Pool
	rdb  *redis.Client
	log  zerolog.Logger
}

// NewHealthHandler creates a new HealthHandler. Either dependency may be nil.
func NewHealthHandler(pool *pgxpool.Pool, rdb *redis.Client, log zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		pool: pool,
		rdb:  rdb,
		log:  log.With().Str("component", "health_handler").Logger(),
	}
}

// Health godoc
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	pg := healthDisabled
	if h.pool != nil {
		pg = h.check("postgres", h.pool.Ping(ctx))
	}

	rd := healthDisabled
	if h.rdb != nil {
		rd = h.check("redis", h.rdb.Ping(ctx).Err())
	}

	status, code := "ok", http.StatusOK
	if pg == healthDown || rd == healthDown {
		status, code = "degraded", http.StatusServiceUnavailable
	}

	response.Success(c, code, gin.H{
		"status":   status,
		"postgres": pg,
		"redis":    rd,
	})
}

func (h *HealthHandler) check(name string, err error) string {
	if err != nil {
		h.log.Warn().Err(err).Str("dependency", name).Msg("Health check failed")
		return healthDown
	}
	return healthUp
}
