package schedule

import (
	"sort"

	"github.com/stemsi/schedule-bot/internal/model"
)

// Mode controls subgroup filtering and the rendering style.
type Mode string

const (
	// ModePersonal shows one subgroup's lessons plus shared ones.
	ModePersonal Mode = "personal"
	// ModeGeneral shows every subgroup, merging lessons that share a slot.
	ModeGeneral Mode = "general"
)

// ParseMode defaults to ModePersonal for anything but "general".
func ParseMode(s string) Mode {
	if Mode(s) == ModeGeneral {
		return ModeGeneral
	}
	return ModePersonal
}

// Select filters entries for subgroup according to mode and returns them
// ordered by day, start time and subgroup. The input slice is not modified.
//
// In personal mode an unset subgroup disables the subgroup filter entirely,
// so lessons of both subgroups are returned.
func Select(entries []model.Lesson, subgroup model.Subgroup, mode Mode) []model.Lesson {
	out := make([]model.Lesson, 0, len(entries))
	for _, l := range entries {
		if mode == ModePersonal && subgroup != model.SubgroupAll &&
			l.Subgroup != model.SubgroupAll && l.Subgroup != subgroup {
			continue
		}
		out = append(out, l)
	}
	Sort(out)
	return out
}

// Sort orders lessons by (day, start minutes, subgroup) keeping input order for ties.
func Sort(lessons []model.Lesson) {
	sort.SliceStable(lessons, func(i, j int) bool {
		a, b := lessons[i], lessons[j]
		if a.DayOfWeek != b.DayOfWeek {
			return a.DayOfWeek < b.DayOfWeek
		}
		am, bm := ToMinutes(a.StartTime), ToMinutes(b.StartTime)
		if am != bm {
			return am < bm
		}
		return a.Subgroup < b.Subgroup
	})
}
