package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stemsi/schedule-bot/internal/model"
)

func validSeed() model.LessonSeed {
	return model.LessonSeed{
		Subject:    "Информатика",
		DayOfWeek:  3,
		StartTime:  "09:45",
		EndTime:    "11:20",
		LessonType: "лаб",
		WeekType:   model.WeekEven,
		Subgroup:   model.SubgroupSecond,
	}
}

func TestValidateLessonAccepts(t *testing.T) {
	if err := ValidateLesson(validSeed()); err != nil {
		t.Fatalf("ValidateLesson() error = %v", err)
	}

	shared := validSeed()
	shared.WeekType = model.WeekAny
	shared.Subgroup = model.SubgroupAll
	if err := ValidateLesson(shared); err != nil {
		t.Fatalf("lesson for both weeks and subgroups rejected: %v", err)
	}
}

func TestValidateLessonRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.LessonSeed)
		message string
	}{
		{"missing subject", func(s *model.LessonSeed) { s.Subject = "" }, "subject"},
		{"day out of range", func(s *model.LessonSeed) { s.DayOfWeek = 7 }, "day_of_week"},
		{"unpadded time", func(s *model.LessonSeed) { s.StartTime = "9:45" }, "start_time must be a time in HH:MM format"},
		{"hour overflow", func(s *model.LessonSeed) { s.EndTime = "24:10" }, "end_time must be a time in HH:MM format"},
		{"unknown week type", func(s *model.LessonSeed) { s.WeekType = "weekly" }, "week_type"},
		{"third subgroup", func(s *model.LessonSeed) { s.Subgroup = 3 }, "subgroup"},
		{"ends before start", func(s *model.LessonSeed) { s.StartTime, s.EndTime = "11:20", "09:45" }, "before start_time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := validSeed()
			tt.mutate(&seed)
			err := ValidateLesson(seed)
			if !errors.Is(err, ErrInvalidLesson) {
				t.Fatalf("expected ErrInvalidLesson, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("error %q does not mention %q", err, tt.message)
			}
		})
	}
}

func TestTranslateErrorsNonValidation(t *testing.T) {
	fields := TranslateErrors(errors.New("boom"))
	if fields["detail"] != "boom" {
		t.Errorf("TranslateErrors() = %v", fields)
	}
}
