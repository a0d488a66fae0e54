package model

import "time"

// Subject represents an academic discipline referenced by lessons.
type Subject struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	ShortName   *string   `json:"short_name,omitempty"`
	LessonCount int       `json:"lesson_count"`
	CreatedAt   time.Time `json:"created_at"`
}
