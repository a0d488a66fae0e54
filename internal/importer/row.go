// Package importer turns timetable rows from spreadsheets or the built-in
// dataset into lesson seeds.
package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stemsi/schedule-bot/internal/model"
	"github.com/stemsi/schedule-bot/internal/schedule"
)

// Row is one timetable line as people write it: a day name, a "8:00-9:35"
// range and free-text columns.
type Row struct {
	Day       string
	Time      string
	Subject   string
	Type      string
	Teacher   string
	Classroom string
	Week      string
	Subgroup  string
}

// Columns is the header row of import and export spreadsheets.
var Columns = []string{"День", "Время", "Предмет", "Тип", "Преподаватель", "Аудитория", "Неделя", "Подгруппа"}

// Seed converts the row into a lesson seed.
func (r Row) Seed() (model.LessonSeed, error) {
	day, err := ParseDay(r.Day)
	if err != nil {
		return model.LessonSeed{}, err
	}
	start, end, err := ParseRange(r.Time)
	if err != nil {
		return model.LessonSeed{}, err
	}
	week, err := ParseWeek(r.Week)
	if err != nil {
		return model.LessonSeed{}, err
	}
	subgroup, err := ParseSubgroup(r.Subgroup)
	if err != nil {
		return model.LessonSeed{}, err
	}

	return model.LessonSeed{
		Subject:    strings.TrimSpace(r.Subject),
		DayOfWeek:  day,
		StartTime:  start,
		EndTime:    end,
		LessonType: strings.TrimSpace(r.Type),
		Teacher:    strings.TrimSpace(r.Teacher),
		Classroom:  strings.TrimSpace(r.Classroom),
		WeekType:   week,
		Subgroup:   subgroup,
	}, nil
}

// Seeds converts rows, stopping at the first bad one.
func Seeds(rows []Row) ([]model.LessonSeed, error) {
	seeds := make([]model.LessonSeed, 0, len(rows))
	for i, r := range rows {
		seed, err := r.Seed()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		seeds = append(seeds, seed)
	}
	return seeds, nil
}

// ParseDay maps a Russian weekday name (any case) or a 0-6 index to the
// Monday-first day index.
func ParseDay(s string) (int, error) {
	s = strings.TrimSpace(s)
	for i, name := range model.DayNames {
		if strings.EqualFold(s, name) {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < len(model.DayNames) {
		return n, nil
	}
	return 0, fmt.Errorf("unknown day %q", s)
}

// ParseRange splits "8:00-9:35" into normalized start and end times.
// An en dash is accepted as the separator too.
func ParseRange(s string) (start, end string, err error) {
	s = strings.ReplaceAll(s, "–", "-")
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("time range %q must look like 8:00-9:35", s)
	}
	return schedule.NormalizeTime(parts[0]), schedule.NormalizeTime(parts[1]), nil
}

// ParseWeek accepts even/odd in English or Russian. Blank means every week.
func ParseWeek(s string) (model.WeekType, error) {
	w := strings.ToLower(strings.TrimSpace(s))
	w = strings.ReplaceAll(w, "ё", "е")
	switch {
	case w == "":
		return model.WeekAny, nil
	case w == "even", strings.HasPrefix(w, "чет"):
		return model.WeekEven, nil
	case w == "odd", strings.HasPrefix(w, "нечет"):
		return model.WeekOdd, nil
	}
	return model.WeekAny, fmt.Errorf("unknown week type %q", s)
}

// ParseSubgroup accepts blank, "1" or "2".
func ParseSubgroup(s string) (model.Subgroup, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.SubgroupAll, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || !model.Subgroup(n).Valid() {
		return model.SubgroupAll, fmt.Errorf("subgroup %q must be 1 or 2", s)
	}
	return model.Subgroup(n), nil
}
