package model

import "time"

// Lesson is one timetable entry with its subject name denormalized.
type Lesson struct {
	ID          int       `json:"id"`
	SubjectID   int       `json:"subject_id"`
	SubjectName string    `json:"subject_name"`
	DayOfWeek   int       `json:"day_of_week"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	LessonType  string    `json:"lesson_type"`
	Teacher     *string   `json:"teacher,omitempty"`
	Classroom   *string   `json:"classroom,omitempty"`
	WeekType    WeekType  `json:"week_type,omitempty"`
	Subgroup    Subgroup  `json:"subgroup,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// LessonFilter narrows a lesson query. Nil/zero fields do not filter.
type LessonFilter struct {
	Day *int
	// WeekType matches lessons of this parity plus lessons without one.
	WeekType WeekType
	// Subgroup matches lessons of this subgroup plus lessons for everyone.
	Subgroup *Subgroup
}

// Matches applies the filter to a single lesson.
func (f LessonFilter) Matches(l Lesson) bool {
	if f.Day != nil && l.DayOfWeek != *f.Day {
		return false
	}
	if f.WeekType != WeekAny && l.WeekType != WeekAny && l.WeekType != f.WeekType {
		return false
	}
	if f.Subgroup != nil && l.Subgroup != SubgroupAll && l.Subgroup != *f.Subgroup {
		return false
	}
	return true
}

// LessonSeed is an incoming timetable row before it is stored.
type LessonSeed struct {
	Subject    string   `json:"subject" validate:"required,max=255"`
	DayOfWeek  int      `json:"day_of_week" validate:"min=0,max=6"`
	StartTime  string   `json:"start_time" validate:"required,hhmm"`
	EndTime    string   `json:"end_time" validate:"required,hhmm"`
	LessonType string   `json:"lesson_type" validate:"max=50"`
	Teacher    string   `json:"teacher" validate:"max=255"`
	Classroom  string   `json:"classroom" validate:"max=50"`
	WeekType   WeekType `json:"week_type" validate:"omitempty,oneof=even odd"`
	Subgroup   Subgroup `json:"subgroup" validate:"min=0,max=2"`
}

// Seed converts a stored lesson back into an importable row.
func (l Lesson) Seed() LessonSeed {
	seed := LessonSeed{
		Subject:    l.SubjectName,
		DayOfWeek:  l.DayOfWeek,
		StartTime:  l.StartTime,
		EndTime:    l.EndTime,
		LessonType: l.LessonType,
		WeekType:   l.WeekType,
		Subgroup:   l.Subgroup,
	}
	if l.Teacher != nil {
		seed.Teacher = *l.Teacher
	}
	if l.Classroom != nil {
		seed.Classroom = *l.Classroom
	}
	return seed
}
