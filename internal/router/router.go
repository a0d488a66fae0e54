package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stemsi/schedule-bot/internal/config"
	"github.com/stemsi/schedule-bot/internal/handler"
	"github.com/stemsi/schedule-bot/internal/middleware"
	"github.com/stemsi/schedule-bot/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Schedule *handler.ScheduleHandler
	Subject  *handler.SubjectHandler
	System   *handler.SystemHandler
}

// SetupRouter configures the read-only schedule API. ctx bounds background
// work started by middlewares.
func SetupRouter(ctx context.Context, handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Workbooks are zip files already.
	router.Use(middleware.BrotliWithConfig(middleware.BrotliConfig{
		Quality:   middleware.DefaultBrotliConfig.Quality,
		MinLength: middleware.DefaultBrotliConfig.MinLength,
		Skipper:   middleware.SkipPathSuffix("/export"),
	}))

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// 120 requests per minute per IP.
	limiter := middleware.NewRateLimiter(ctx, 120, time.Minute)

	api := router.Group("/api/v1")
	api.Use(limiter.Middleware())

	// ─── 1. Schedule (cacheable) ───────────────────────────────────────
	scheduleAPI := api.Group("/schedule")
	scheduleAPI.Use(middleware.CacheControl(cfg.ScheduleTTL))
	{
		scheduleAPI.GET("/week", handlers.Schedule.Week)
		scheduleAPI.GET("/day", handlers.Schedule.Day)
		scheduleAPI.GET("/export", handlers.Schedule.Export)
	}

	api.GET("/subjects", middleware.CacheControl(cfg.ScheduleTTL), handlers.Subject.GetAll)

	// ─── 2. System (live) ──────────────────────────────────────────────
	systemAPI := api.Group("/system")
	systemAPI.Use(middleware.NoStore())
	{
		systemAPI.GET("/status", handlers.System.Status)
	}

	return router
}
