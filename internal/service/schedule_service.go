package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/schedule-bot/internal/config"
	"github.com/stemsi/schedule-bot/internal/model"
	"github.com/stemsi/schedule-bot/internal/schedule"
)

// ScheduleService turns stored lessons into rendered schedules and caches
// week renderings in Redis. A nil Redis client disables caching.
type ScheduleService struct {
	lessons schedule.LessonReader
	rdb     *redis.Client
	ttl     time.Duration
	loc     *time.Location
	now     func() time.Time
	log     zerolog.Logger
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(
	lessons schedule.LessonReader,
	rdb *redis.Client,
	ttl time.Duration,
	loc *time.Location,
	log zerolog.Logger,
) *ScheduleService {
	if loc == nil {
		loc = time.UTC
	}
	return &ScheduleService{
		lessons: lessons,
		rdb:     rdb,
		ttl:     ttl,
		loc:     loc,
		now:     time.Now,
		log:     log.With().Str("component", "schedule_service").Logger(),
	}
}

// Now returns the current time in the configured timezone.
func (s *ScheduleService) Now() time.Time {
	return s.now().In(s.loc)
}

// CurrentWeek returns the parity of the current academic week.
func (s *ScheduleService) CurrentWeek() model.WeekType {
	return schedule.WeekTypeFor(s.Now())
}

// NextWeek returns the parity of the week after the current one.
func (s *ScheduleService) NextWeek() model.WeekType {
	return schedule.WeekTypeFor(s.Now().AddDate(0, 0, 7))
}

// Today renders today's lessons for subgroup.
func (s *ScheduleService) Today(ctx context.Context, subgroup model.Subgroup) (string, error) {
	return s.Day(ctx, s.Now(), subgroup)
}

// Day renders the lessons of date's weekday in date's week parity.
func (s *ScheduleService) Day(ctx context.Context, date time.Time, subgroup model.Subgroup) (string, error) {
	lessons, err := s.DayLessons(ctx, date, subgroup)
	if err != nil {
		return "", err
	}
	return schedule.FormatDay(lessons, date), nil
}

// DayLessons returns the sorted lessons subgroup attends on date.
func (s *ScheduleService) DayLessons(ctx context.Context, date time.Time, subgroup model.Subgroup) ([]model.Lesson, error) {
	day := schedule.Weekday(date)
	lessons, err := s.lessons.ListLessons(ctx, model.LessonFilter{
		Day:      &day,
		WeekType: schedule.WeekTypeFor(date),
	})
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	return schedule.Select(lessons, subgroup, schedule.ModePersonal), nil
}

// Week renders a week's timetable. General mode ignores subgroup.
func (s *ScheduleService) Week(ctx context.Context, week model.WeekType, subgroup model.Subgroup, mode schedule.Mode) (string, error) {
	if mode == schedule.ModeGeneral {
		subgroup = model.SubgroupAll
	}
	key := config.CacheKey.WeekScheduleKey(string(mode), string(week), int(subgroup))

	if text, ok := s.cached(ctx, key); ok {
		return text, nil
	}

	lessons, err := s.WeekLessons(ctx, week, subgroup, mode)
	if err != nil {
		return "", err
	}
	text := schedule.FormatWeek(lessons, week, mode)

	s.store(ctx, key, text)
	return text, nil
}

// WeekLessons returns the sorted lessons of a week as Week would render them.
func (s *ScheduleService) WeekLessons(ctx context.Context, week model.WeekType, subgroup model.Subgroup, mode schedule.Mode) ([]model.Lesson, error) {
	lessons, err := s.lessons.ListLessons(ctx, model.LessonFilter{WeekType: week})
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	return schedule.Select(lessons, subgroup, mode), nil
}

// All returns every stored lesson in timetable order.
func (s *ScheduleService) All(ctx context.Context) ([]model.Lesson, error) {
	lessons, err := s.lessons.ListLessons(ctx, model.LessonFilter{})
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	schedule.Sort(lessons)
	return lessons, nil
}

// InvalidateCache drops every cached schedule rendering.
// Returns the number of keys removed.
func (s *ScheduleService) InvalidateCache(ctx context.Context) (int, error) {
	if s.rdb == nil {
		return 0, nil
	}

	var removed int
	iter := s.rdb.Scan(ctx, 0, config.SchedulePattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := s.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return removed, fmt.Errorf("delete %s: %w", iter.Val(), err)
		}
		removed++
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("scan cache: %w", err)
	}

	s.log.Info().Int("keys", removed).Msg("Schedule cache invalidated")
	return removed, nil
}

func (s *ScheduleService) cached(ctx context.Context, key string) (string, bool) {
	if s.rdb == nil {
		return "", false
	}
	text, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		}
		return "", false
	}
	return text, true
}

func (s *ScheduleService) store(ctx context.Context, key, text string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Set(ctx, key, text, s.ttl).Err(); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}
