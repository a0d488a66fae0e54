package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/stemsi/schedule-bot/internal/model"
)

// FormatWeek renders sorted entries grouped by day. In general mode lessons
// sharing a (day, start time) slot are merged into one line.
func FormatWeek(entries []model.Lesson, week model.WeekType, mode Mode) string {
	label := week.Label()

	if len(entries) == 0 {
		if mode == ModeGeneral {
			return label + " — расписание не заполнено."
		}
		return label + " — пар нет на этой неделе."
	}

	var b strings.Builder
	if mode == ModeGeneral {
		fmt.Fprintf(&b, "📚 %s (общее расписание)\n\n", label)
	} else {
		fmt.Fprintf(&b, "📚 %s\n\n", label)
	}

	for i := 0; i < len(entries); {
		day := entries[i].DayOfWeek
		b.WriteString(model.DayName(day) + ":\n")

		j := i
		for j < len(entries) && entries[j].DayOfWeek == day {
			j++
		}
		if mode == ModeGeneral {
			writeMergedSlots(&b, entries[i:j])
		} else {
			for _, l := range entries[i:j] {
				b.WriteString(entryLine(l) + "\n")
			}
		}
		b.WriteString("\n")
		i = j
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatDay renders a single day's lessons under a dated header.
func FormatDay(entries []model.Lesson, date time.Time) string {
	dateStr := date.Format("02.01.2006")
	if len(entries) == 0 {
		return dateStr + " — пар нет 🎉"
	}

	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, "📅 Расписание на "+dateStr+":")
	for _, l := range entries {
		lines = append(lines, entryLine(l))
	}
	return strings.Join(lines, "\n")
}

// writeMergedSlots writes one line per run of lessons with the same start time.
func writeMergedSlots(b *strings.Builder, day []model.Lesson) {
	for i := 0; i < len(day); {
		start := day[i].StartTime
		j := i
		parts := make([]string, 0, 2)
		for j < len(day) && day[j].StartTime == start {
			parts = append(parts, lessonDetails(day[j]))
			j++
		}
		fmt.Fprintf(b, "• %s–%s — %s\n", start, day[i].EndTime, strings.Join(parts, " | "))
		i = j
	}
}

func entryLine(l model.Lesson) string {
	return fmt.Sprintf("• %s–%s — %s", l.StartTime, l.EndTime, lessonDetails(l))
}

// lessonDetails is the part of a line after the time range.
func lessonDetails(l model.Lesson) string {
	var b strings.Builder
	b.WriteString(l.SubjectName)
	if l.Subgroup != model.SubgroupAll {
		fmt.Fprintf(&b, " (%d подгруппа)", l.Subgroup)
	}
	if l.LessonType != "" {
		fmt.Fprintf(&b, " (%s)", l.LessonType)
	}
	if l.Teacher != nil && *l.Teacher != "" {
		b.WriteString(", " + *l.Teacher)
	}
	if l.Classroom != nil && *l.Classroom != "" {
		b.WriteString(", ауд. " + *l.Classroom)
	}
	return b.String()
}
