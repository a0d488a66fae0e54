package schedule

import (
	"testing"
	"time"

	"github.com/stemsi/schedule-bot/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestAcademicWeek(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		want int
	}{
		{"anchor day is week one", date(2025, time.September, 1), 1},
		{"last day of week one", date(2025, time.September, 7), 1},
		{"first day of week two", date(2025, time.September, 8), 2},
		{"before september uses previous year", date(2025, time.August, 31), 53},
		{"january", date(2026, time.January, 12), 20},
		{"leap day", date(2024, time.February, 29), 26},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AcademicWeek(tt.ref); got != tt.want {
				t.Errorf("AcademicWeek(%s) = %d, want %d", tt.ref.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestIsEvenWeekAnchorIsOdd(t *testing.T) {
	for _, year := range []int{2023, 2024, 2025, 2026} {
		if IsEvenWeek(date(year, time.September, 1)) {
			t.Errorf("September 1, %d must be an odd week", year)
		}
	}
}

func TestIsEvenWeekAlternates(t *testing.T) {
	start := date(2025, time.September, 1)
	for i := 0; i < 365; i++ {
		d := start.AddDate(0, 0, i)
		next := d.AddDate(0, 0, 7)
		if next.Month() == time.September && next.Day() <= 7 && d.Month() == time.August {
			continue // crosses the yearly anchor
		}
		if IsEvenWeek(d) == IsEvenWeek(next) {
			t.Fatalf("parity of %s and %s should differ", d.Format("2006-01-02"), next.Format("2006-01-02"))
		}
	}
}

func TestIsEvenWeekIgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	late := time.Date(2025, time.September, 7, 23, 59, 0, 0, loc)
	early := time.Date(2025, time.September, 8, 0, 1, 0, 0, loc)
	if IsEvenWeek(late) {
		t.Error("Sunday of week one should be odd")
	}
	if !IsEvenWeek(early) {
		t.Error("Monday of week two should be even")
	}
}

func TestWeekTypeFor(t *testing.T) {
	if got := WeekTypeFor(date(2025, time.September, 8)); got != model.WeekEven {
		t.Errorf("WeekTypeFor() = %q, want even", got)
	}
	if got := WeekTypeFor(date(2025, time.September, 15)); got != model.WeekOdd {
		t.Errorf("WeekTypeFor() = %q, want odd", got)
	}
}

func TestWeekday(t *testing.T) {
	if got := Weekday(date(2025, time.September, 1)); got != 0 {
		t.Errorf("Monday = %d, want 0", got)
	}
	if got := Weekday(date(2025, time.September, 7)); got != 6 {
		t.Errorf("Sunday = %d, want 6", got)
	}
}
