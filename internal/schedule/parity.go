// Package schedule selects and renders timetable entries for a week or a day.
// Everything here is a pure function of its inputs.
package schedule

import (
	"time"

	"github.com/stemsi/schedule-bot/internal/model"
)

// AcademicWeek returns the 1-based week number of ref counted from the
// most recent September 1 on or before it.
func AcademicWeek(ref time.Time) int {
	y, m, d := ref.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	anchor := time.Date(y, time.September, 1, 0, 0, 0, 0, time.UTC)
	if date.Before(anchor) {
		anchor = anchor.AddDate(-1, 0, 0)
	}

	days := int(date.Sub(anchor).Hours() / 24)
	return days/7 + 1
}

// IsEvenWeek reports whether ref falls into an even academic week.
func IsEvenWeek(ref time.Time) bool {
	return AcademicWeek(ref)%2 == 0
}

// WeekTypeFor maps ref to the timetable parity it uses.
func WeekTypeFor(ref time.Time) model.WeekType {
	if IsEvenWeek(ref) {
		return model.WeekEven
	}
	return model.WeekOdd
}

// Weekday converts Go's Sunday-first weekday to the Monday-first index used by lessons.
func Weekday(ref time.Time) int {
	return (int(ref.Weekday()) + 6) % 7
}
