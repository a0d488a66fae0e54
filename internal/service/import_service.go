package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stemsi/schedule-bot/internal/model"
	"github.com/stemsi/schedule-bot/internal/schedule"
	"github.com/stemsi/schedule-bot/internal/validator"
)

// LessonWriter replaces the stored timetable.
type LessonWriter interface {
	ReplaceAll(ctx context.Context, seeds []model.LessonSeed) (int, error)
}

// CacheInvalidator drops rendered schedules after the timetable changes.
type CacheInvalidator interface {
	InvalidateCache(ctx context.Context) (int, error)
}

// ImportService validates timetable rows and loads them into storage.
type ImportService struct {
	writer LessonWriter
	cache  CacheInvalidator
	log    zerolog.Logger
}

// NewImportService creates a new ImportService. cache may be nil.
func NewImportService(writer LessonWriter, cache CacheInvalidator, log zerolog.Logger) *ImportService {
	return &ImportService{
		writer: writer,
		cache:  cache,
		log:    log.With().Str("component", "import_service").Logger(),
	}
}

// Prepare normalizes and validates seeds. All invalid rows are reported
// together; nothing is returned unless every row is valid.
func Prepare(seeds []model.LessonSeed) ([]model.LessonSeed, error) {
	out := make([]model.LessonSeed, len(seeds))
	var errs []error
	for i, seed := range seeds {
		seed.StartTime = schedule.NormalizeTime(seed.StartTime)
		seed.EndTime = schedule.NormalizeTime(seed.EndTime)
		if err := validator.ValidateLesson(seed); err != nil {
			errs = append(errs, fmt.Errorf("row %d (%s): %w", i+1, seed.Subject, err))
			continue
		}
		out[i] = seed
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

// Import replaces the timetable with seeds.
func (s *ImportService) Import(ctx context.Context, seeds []model.LessonSeed) (int, error) {
	if len(seeds) == 0 {
		return 0, errors.New("no lessons to import")
	}

	prepared, err := Prepare(seeds)
	if err != nil {
		return 0, err
	}

	n, err := s.writer.ReplaceAll(ctx, prepared)
	if err != nil {
		return 0, fmt.Errorf("replace lessons: %w", err)
	}
	s.log.Info().Int("lessons", n).Msg("Timetable imported")

	if s.cache != nil {
		if _, err := s.cache.InvalidateCache(ctx); err != nil {
			s.log.Warn().Err(err).Msg("Cache invalidation after import failed")
		}
	}
	return n, nil
}
