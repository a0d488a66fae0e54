package handler

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/schedule-bot/internal/config"
	"github.com/stemsi/schedule-bot/internal/response"
)

const statusTimeout = 3 * time.Second

// Counter reports how many rows a table holds.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// SystemHandler reports process and dependency health.
type SystemHandler struct {
	pool      *pgxpool.Pool
	rdb       *redis.Client
	lessons   Counter
	users     Counter
	startTime time.Time
	log       zerolog.Logger
}

func NewSystemHandler(pool *pgxpool.Pool, rdb *redis.Client, lessons, users Counter, log zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		pool:      pool,
		rdb:       rdb,
		lessons:   lessons,
		users:     users,
		startTime: time.Now(),
		log:       log.With().Str("component", "system_handler").Logger(),
	}
}

type systemStatus struct {
	Timestamp int64  `json:"timestamp"`
	Uptime    string `json:"uptime"`

	// Go Application
	Goroutines int    `json:"goroutines"`
	HeapAlloc  uint64 `json:"heap_alloc"`
	NumGC      uint32 `json:"num_gc"`
	GoVersion  string `json:"go_version"`

	// Dependencies
	Postgres string `json:"postgres"`
	Redis    string `json:"redis"`

	// Data
	Lessons      int   `json:"lessons"`
	Users        int   `json:"users"`
	QueueProfile int64 `json:"queue_profiles"`
}

// Status godoc
// GET /api/v1/system/status
// Responds 503 when PostgreSQL is unreachable.
func (h *SystemHandler) Status(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), statusTimeout)
	defer cancel()

	s := h.collect(ctx)
	if strings.HasPrefix(s.Postgres, "error") {
		h.log.Warn().Str("postgres", s.Postgres).Msg("Status check failed")
		response.FailWithData(c, http.StatusServiceUnavailable, response.ErrServiceUnavailable, s)
		return
	}
	response.Success(c, http.StatusOK, s)
}

func (h *SystemHandler) collect(ctx context.Context) systemStatus {
	s := systemStatus{
		Timestamp: time.Now().Unix(),
		Uptime:    formatDuration(time.Since(h.startTime)),
		GoVersion: runtime.Version(),
		Postgres:  "disabled",
		Redis:     "disabled",
	}

	// ── Go Runtime ──
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	s.Goroutines = runtime.NumGoroutine()
	s.HeapAlloc = ms.HeapAlloc
	s.NumGC = ms.NumGC

	// ── PostgreSQL ──
	if h.pool != nil {
		s.Postgres = health(h.pool.Ping(ctx))
	}
	if h.lessons != nil {
		s.Lessons, _ = h.lessons.Count(ctx)
	}
	if h.users != nil {
		s.Users, _ = h.users.Count(ctx)
	}

	// ── Redis ──
	if h.rdb != nil {
		pipe := h.rdb.Pipeline()
		pingCmd := pipe.Ping(ctx)
		queueCmd := pipe.LLen(ctx, config.WorkerKey.SyncProfilesQueue)
		_, _ = pipe.Exec(ctx)
		s.Redis = health(pingCmd.Err())
		s.QueueProfile, _ = queueCmd.Result()
	}

	return s
}

func health(err error) string {
	if err != nil {
		return "error: " + err.Error()
	}
	return "ok"
}

// ---------- Helpers ----------

func formatDuration(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}
