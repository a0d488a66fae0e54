package schedule

import (
	"context"

	"github.com/stemsi/schedule-bot/internal/model"
)

// LessonReader is the read side of lesson storage.
type LessonReader interface {
	ListLessons(ctx context.Context, filter model.LessonFilter) ([]model.Lesson, error)
}

// MemoryStore serves lessons from a fixed in-memory slice.
type MemoryStore struct {
	lessons []model.Lesson
}

// NewMemoryStore copies lessons into a new store.
func NewMemoryStore(lessons []model.Lesson) *MemoryStore {
	cp := make([]model.Lesson, len(lessons))
	copy(cp, lessons)
	return &MemoryStore{lessons: cp}
}

// ListLessons returns the lessons matching filter in storage order.
func (s *MemoryStore) ListLessons(_ context.Context, filter model.LessonFilter) ([]model.Lesson, error) {
	var out []model.Lesson
	for _, l := range s.lessons {
		if filter.Matches(l) {
			out = append(out, l)
		}
	}
	return out, nil
}
