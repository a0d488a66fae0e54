package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/stemsi/schedule-bot/internal/config"
	"github.com/stemsi/schedule-bot/internal/database"
	"github.com/stemsi/schedule-bot/internal/handler"
	"github.com/stemsi/schedule-bot/internal/logger"
	"github.com/stemsi/schedule-bot/internal/repository"
	"github.com/stemsi/schedule-bot/internal/router"
	"github.com/stemsi/schedule-bot/internal/service"
	"github.com/stemsi/schedule-bot/internal/telegram"
	"github.com/stemsi/schedule-bot/internal/validator"
	"github.com/stemsi/schedule-bot/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("env", cfg.AppEnv).
		Str("timezone", cfg.Timezone).
		Bool("http", cfg.HTTPEnabled).
		Str("log_level", cfg.LogLevel).
		Msg("Starting schedule bot")

	if cfg.IsDevelopment() {
		log.Warn().Msg("Development mode: using BOT_TOKEN_DEV when set")
	}
	if cfg.BotToken == "" {
		log.Fatal().Msg("BOT_TOKEN is not set")
	}

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	lessonRepo := repository.NewLessonRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)

	if n, err := lessonRepo.Count(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to count lessons")
	} else if n == 0 {
		log.Warn().Msg("Timetable is empty, run seed-schedule to load it")
	}

	// ─── Initialize Services ──────────────────────────────────────────
	scheduleService := service.NewScheduleService(lessonRepo, rdb, cfg.ScheduleTTL, cfg.Location(), log)
	userService := service.NewUserService(userRepo, rdb, cfg.AdminIDs, log)
	subjectService := service.NewSubjectService(subjectRepo, log)

	// ─── Start Background Workers ─────────────────────────────────────
	// Without Redis profile updates are written inline.
	workerCtx, workerCancel := context.WithCancel(context.Background())
	workerDone := make(chan struct{})
	if rdb != nil {
		profileWorker := worker.NewProfileWorker(userRepo, rdb, log)
		go func() {
			defer close(workerDone)
			profileWorker.Start(workerCtx)
		}()
	} else {
		close(workerDone)
	}

	// ─── Connect to Telegram ───────────────────────────────────────────
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Telegram")
	}
	api.Debug = cfg.BotDebug
	log.Info().Str("username", api.Self.UserName).Msg("Authorized on Telegram")

	bot := telegram.NewBot(api, telegram.Deps{
		Schedule:    scheduleService,
		Users:       userService,
		States:      telegram.NewStateStore(rdb, cfg.StateTTL),
		PollTimeout: cfg.BotPollTimeout,
		Log:         log,
	})

	// ─── Start HTTP API ────────────────────────────────────────────────
	var srv *http.Server
	if cfg.HTTPEnabled {
		handlers := &router.Handlers{
			Schedule: handler.NewScheduleHandler(scheduleService, log),
			Subject:  handler.NewSubjectHandler(subjectService),
			System:   handler.NewSystemHandler(pool, rdb, lessonRepo, userRepo, log),
		}
		srv = &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           router.SetupRouter(ctx, handlers, cfg),
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			log.Info().Str("addr", srv.Addr).Msg("Server listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("Server error")
			}
		}()
	}

	// ─── Run Bot ───────────────────────────────────────────────────────
	// Blocks until SIGINT/SIGTERM cancels ctx.
	if err := bot.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Bot stopped with error")
	}

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	log.Info().Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	// 1. Stop accepting new HTTP requests.
	if srv != nil {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("HTTP server shutdown error")
		}
	}

	// 2. Stop background workers and wait for the queue to drain.
	workerCancel()
	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		log.Warn().Msg("Worker drain timed out")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
