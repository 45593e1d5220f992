package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/trivia-backend/internal/config"
	"github.com/stemsi/trivia-backend/internal/handler"
	"github.com/stemsi/trivia-backend/internal/middleware"
	"github.com/stemsi/trivia-backend/internal/response"
	"github.com/stemsi/trivia-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Category *handler.CategoryHandler
	Question *handler.QuestionHandler
	Quiz     *handler.QuizHandler
	WS       *handler.WSHandler
	Health   *handler.HealthHandler
}

// Guards holds the optional request gates. A nil field disables that gate.
type Guards struct {
	Verifier *service.TokenVerifier
	Limiter  *middleware.RateLimiter
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(cfg *config.Config, handlers *Handlers, guards Guards, log zerolog.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// ─── CORS ──────────────────────────────────────────────────────────
	// Restrict to AllowedOrigins when set, otherwise allow all.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
	}))
	router.Use(middleware.Brotli())

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		response.Fail(c, http.StatusMethodNotAllowed, response.ErrBadRequest)
	})

	router.GET("/health", handlers.Health.Health)

	// ─── API ───────────────────────────────────────────────────────────
	api := router.Group("/api/v1")
	if guards.Limiter != nil {
		api.Use(guards.Limiter.Middleware())
	}
	{
		api.GET("/categories", handlers.Category.ListCategories)
		api.GET("/categories/:id/questions", handlers.Category.ListCategoryQuestions)

		api.GET("/questions", handlers.Question.ListQuestions)
		api.POST("/questions/search", handlers.Question.SearchQuestions)
		api.POST("/questions", mutationGuard(guards.Verifier, service.PermissionCreateQuestions, handlers.Question.CreateQuestion)...)
		api.DELETE("/questions/:id", mutationGuard(guards.Verifier, service.PermissionDeleteQuestions, handlers.Question.DeleteQuestion)...)

		api.POST("/quizzes", handlers.Quiz.NextQuestion)
		api.POST("/next-question", handlers.Quiz.NextQuestion)
	}

	// ─── WebSocket ─────────────────────────────────────────────────────
	ws := router.Group("/ws/v1")
	{
		ws.GET("/quizzes", handlers.WS.QuizStream)
	}

	return router
}

// mutationGuard prefixes h with the bearer token and permission checks
// when a verifier is configured.
func mutationGuard(verifier *service.TokenVerifier, permission string, h gin.HandlerFunc) []gin.HandlerFunc {
	if verifier == nil {
		return []gin.HandlerFunc{h}
	}
	return []gin.HandlerFunc{
		middleware.RequireJWT(verifier),
		middleware.RequirePermission(permission),
		h,
	}
}
