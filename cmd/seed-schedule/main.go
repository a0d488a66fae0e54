package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/stemsi/schedule-bot/internal/config"
	"github.com/stemsi/schedule-bot/internal/database"
	"github.com/stemsi/schedule-bot/internal/importer"
	"github.com/stemsi/schedule-bot/internal/logger"
	"github.com/stemsi/schedule-bot/internal/model"
	"github.com/stemsi/schedule-bot/internal/repository"
	"github.com/stemsi/schedule-bot/internal/service"
)

func main() {
	var (
		file   string
		export string
		dryRun bool
	)
	flag.StringVar(&file, "file", "", "Import lessons from an .xlsx workbook instead of the built-in timetable")
	flag.StringVar(&export, "export", "", "Write the lessons to an .xlsx workbook and exit without touching the database")
	flag.BoolVar(&dryRun, "dry-run", false, "Validate the lessons without writing them")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	// ─── Load Lessons ──────────────────────────────────────────────────
	seeds, source, err := loadSeeds(file)
	if err != nil {
		log.Fatal().Err(err).Str("source", source).Msg("Failed to read timetable")
	}
	log.Info().Str("source", source).Int("rows", len(seeds)).Msg("Timetable loaded")

	if export != "" {
		if err := writeWorkbook(export, seeds); err != nil {
			log.Fatal().Err(err).Str("file", export).Msg("Failed to export timetable")
		}
		log.Info().Str("file", export).Msg("Timetable exported")
		return
	}

	if dryRun {
		if _, err := service.Prepare(seeds); err != nil {
			fmt.Fprintln(os.Stderr, err)
			log.Fatal().Msg("Timetable is invalid")
		}
		log.Info().Msg("Timetable is valid")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	// Only used to drop rendered schedules the bot has cached.
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, cached schedules will expire on their own")
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// ─── Import ────────────────────────────────────────────────────────
	lessonRepo := repository.NewLessonRepository(pool)
	scheduleService := service.NewScheduleService(lessonRepo, rdb, cfg.ScheduleTTL, cfg.Location(), log)
	importService := service.NewImportService(lessonRepo, scheduleService, log)

	n, err := importService.Import(ctx, seeds)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Fatal().Msg("Import failed")
	}

	fmt.Printf("Seed completed! Stored %d lessons.\n", n)
}

func loadSeeds(file string) ([]model.LessonSeed, string, error) {
	if file == "" {
		seeds, err := importer.Builtin()
		return seeds, "builtin", err
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, file, err
	}
	defer f.Close()

	seeds, err := importer.ReadXLSX(f)
	return seeds, file, err
}

func writeWorkbook(path string, seeds []model.LessonSeed) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := importer.WriteXLSX(f, seeds); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
