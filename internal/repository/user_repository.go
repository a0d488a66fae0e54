package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/schedule-bot/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository handles bot user data access.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// GetOrCreate inserts the user on first contact and returns the stored row.
// created reports whether a new row was inserted.
func (r *UserRepository) GetOrCreate(ctx context.Context, p model.Profile, isAdmin bool) (*model.User, bool, error) {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, username, full_name, is_admin) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO NOTHING`,
		p.ID, nullString(p.Username), nullString(p.FullName), isAdmin)
	if err != nil {
		return nil, false, err
	}
	u, err := r.GetByID(ctx, p.ID)
	if err != nil {
		return nil, false, err
	}
	return u, tag.RowsAffected() == 1, nil
}

// GetByID retrieves a user by Telegram ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u := &model.User{}
	var subgroup *int
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, full_name, subgroup, group_name, is_admin, created_at, updated_at
		 FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Username, &u.FullName, &subgroup, &u.Group, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if subgroup != nil {
		u.Subgroup = model.Subgroup(*subgroup)
	}
	return u, nil
}

// UpdateProfile refreshes username and full name, leaving non-empty values untouched when
// the incoming value is blank.
func (r *UserRepository) UpdateProfile(ctx context.Context, p model.Profile) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users
		 SET username = COALESCE($2, username), full_name = COALESCE($3, full_name), updated_at = NOW()
		 WHERE id = $1`,
		p.ID, nullString(p.Username), nullString(p.FullName))
	return err
}

// UpdateSubgroup stores the user's chosen subgroup.
func (r *UserRepository) UpdateSubgroup(ctx context.Context, id int64, subgroup model.Subgroup) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET subgroup = $2, updated_at = NOW() WHERE id = $1`, id, nullSubgroup(subgroup))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SetAdmin grants or revokes the admin flag.
func (r *UserRepository) SetAdmin(ctx context.Context, id int64, isAdmin bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET is_admin = $2, updated_at = NOW() WHERE id = $1`, id, isAdmin)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Count returns the number of known users.
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}
