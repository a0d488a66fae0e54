package model

// WeekType tags a lesson with the academic week it runs in.
// The zero value means the lesson runs every week.
type WeekType string

const (
	WeekAny  WeekType = ""
	WeekEven WeekType = "even"
	WeekOdd  WeekType = "odd"
)

// ParseWeekType accepts "even" and "odd"; anything else is WeekAny.
func ParseWeekType(s string) WeekType {
	switch WeekType(s) {
	case WeekEven:
		return WeekEven
	case WeekOdd:
		return WeekOdd
	default:
		return WeekAny
	}
}

// Label is the Russian heading used in rendered schedules.
func (w WeekType) Label() string {
	switch w {
	case WeekEven:
		return "Чётная неделя"
	case WeekOdd:
		return "Нечётная неделя"
	default:
		return "Каждая неделя"
	}
}

// Subgroup is half of a cohort. Zero means the whole cohort.
type Subgroup int

const (
	SubgroupAll    Subgroup = 0
	SubgroupFirst  Subgroup = 1
	SubgroupSecond Subgroup = 2
)

// Valid reports whether s is one of the two concrete subgroups.
func (s Subgroup) Valid() bool {
	return s == SubgroupFirst || s == SubgroupSecond
}

// Weekday names indexed by DayOfWeek (0 = Monday).
var DayNames = [7]string{"Понедельник", "Вторник", "Среда", "Четверг", "Пятница", "Суббота", "Воскресенье"}

// DayName returns the Russian name of day, or "Неизвестно" when out of range.
func DayName(day int) string {
	if day < 0 || day >= len(DayNames) {
		return "Неизвестно"
	}
	return DayNames[day]
}
