package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/schedule-bot/internal/model"
)

// LessonRepository handles timetable data access.
type LessonRepository struct {
	pool *pgxpool.Pool
}

// NewLessonRepository creates a new LessonRepository.
func NewLessonRepository(pool *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{pool: pool}
}

const lessonColumns = `l.id, l.subject_id, s.name, l.day_of_week, l.start_time, l.end_time, l.lesson_type,
	l.teacher, l.classroom, COALESCE(l.week_type, ''), COALESCE(l.subgroup, 0), l.created_at`

// ListLessons returns lessons matching filter with the subject name joined in.
// Lessons without a week type or subgroup match any value of that filter.
func (r *LessonRepository) ListLessons(ctx context.Context, filter model.LessonFilter) ([]model.Lesson, error) {
	query := `SELECT ` + lessonColumns + ` FROM lessons l JOIN subjects s ON s.id = l.subject_id WHERE TRUE`
	var args []interface{}
	argIdx := 1

	if filter.Day != nil {
		query += ` AND l.day_of_week = $` + strconv.Itoa(argIdx)
		args = append(args, *filter.Day)
		argIdx++
	}
	if filter.WeekType != model.WeekAny {
		query += ` AND (l.week_type = $` + strconv.Itoa(argIdx) + ` OR l.week_type IS NULL)`
		args = append(args, string(filter.WeekType))
		argIdx++
	}
	if filter.Subgroup != nil {
		query += ` AND (l.subgroup = $` + strconv.Itoa(argIdx) + ` OR l.subgroup IS NULL)`
		args = append(args, int(*filter.Subgroup))
	}
	query += ` ORDER BY l.day_of_week, l.id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessons []model.Lesson
	for rows.Next() {
		var (
			l        model.Lesson
			weekType string
			subgroup int
		)
		if err := rows.Scan(&l.ID, &l.SubjectID, &l.SubjectName, &l.DayOfWeek, &l.StartTime, &l.EndTime,
			&l.LessonType, &l.Teacher, &l.Classroom, &weekType, &subgroup, &l.CreatedAt); err != nil {
			return nil, err
		}
		l.WeekType = model.WeekType(weekType)
		l.Subgroup = model.Subgroup(subgroup)
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}

// Count returns the number of stored lessons.
func (r *LessonRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM lessons`).Scan(&n)
	return n, err
}

// ReplaceAll wipes the timetable and inserts seeds in one transaction,
// creating subjects by name as needed. Returns the number of lessons inserted.
func (r *LessonRepository) ReplaceAll(ctx context.Context, seeds []model.LessonSeed) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM lessons`); err != nil {
		return 0, fmt.Errorf("clear lessons: %w", err)
	}

	subjectIDs := make(map[string]int)
	for _, s := range seeds {
		if _, ok := subjectIDs[s.Subject]; ok {
			continue
		}
		id, err := upsertSubject(ctx, tx, s.Subject)
		if err != nil {
			return 0, fmt.Errorf("subject %q: %w", s.Subject, err)
		}
		subjectIDs[s.Subject] = id
	}

	batch := &pgx.Batch{}
	for _, s := range seeds {
		batch.Queue(
			`INSERT INTO lessons (subject_id, day_of_week, start_time, end_time, lesson_type, teacher, classroom, week_type, subgroup)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			subjectIDs[s.Subject], s.DayOfWeek, s.StartTime, s.EndTime, s.LessonType,
			nullString(s.Teacher), nullString(s.Classroom), nullString(string(s.WeekType)), nullSubgroup(s.Subgroup),
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, fmt.Errorf("insert lessons: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(seeds), nil
}

func upsertSubject(ctx context.Context, tx pgx.Tx, name string) (int, error) {
	var id int
	err := tx.QueryRow(ctx,
		`INSERT INTO subjects (name) VALUES ($1)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`, name).Scan(&id)
	return id, err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullSubgroup(s model.Subgroup) *int {
	if s == model.SubgroupAll {
		return nil
	}
	v := int(s)
	return &v
}
