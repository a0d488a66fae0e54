package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/schedule-bot/internal/config"
	"github.com/stemsi/schedule-bot/internal/model"
	"github.com/stemsi/schedule-bot/internal/repository"
)

var ErrInvalidSubgroup = errors.New("subgroup must be 1 or 2")

// UserService manages bot users.
type UserService struct {
	userRepo *repository.UserRepository
	rdb      *redis.Client
	admins   map[int64]struct{}
	log      zerolog.Logger
}

// NewUserService creates a new UserService. adminIDs are granted the admin
// flag when they first contact the bot.
func NewUserService(userRepo *repository.UserRepository, rdb *redis.Client, adminIDs []int64, log zerolog.Logger) *UserService {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}
	return &UserService{
		userRepo: userRepo,
		rdb:      rdb,
		admins:   admins,
		log:      log.With().Str("component", "user_service").Logger(),
	}
}

// EnsureUser returns the stored user for p, creating it on first contact.
// Changed usernames or names of known users are synced in the background.
func (s *UserService) EnsureUser(ctx context.Context, p model.Profile) (*model.User, error) {
	_, isAdmin := s.admins[p.ID]
	u, created, err := s.userRepo.GetOrCreate(ctx, p, isAdmin)
	if err != nil {
		return nil, fmt.Errorf("get or create user: %w", err)
	}
	if created {
		s.log.Info().Int64("user_id", p.ID).Bool("admin", isAdmin).Msg("New user registered")
		return u, nil
	}

	if ProfileChanged(u, p) {
		if err := s.enqueueProfile(ctx, p); err != nil {
			s.log.Warn().Err(err).Int64("user_id", p.ID).Msg("Profile sync enqueue failed")
		}
	}
	return u, nil
}

// SetSubgroup stores the user's subgroup choice.
func (s *UserService) SetSubgroup(ctx context.Context, userID int64, subgroup model.Subgroup) error {
	if !subgroup.Valid() {
		return ErrInvalidSubgroup
	}
	if err := s.userRepo.UpdateSubgroup(ctx, userID, subgroup); err != nil {
		return err
	}
	s.log.Debug().Int64("user_id", userID).Int("subgroup", int(subgroup)).Msg("Subgroup updated")
	return nil
}

// SetAdmin grants or revokes admin rights.
func (s *UserService) SetAdmin(ctx context.Context, userID int64, isAdmin bool) error {
	return s.userRepo.SetAdmin(ctx, userID, isAdmin)
}

// GetByID retrieves a user.
func (s *UserService) GetByID(ctx context.Context, userID int64) (*model.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// Count returns the number of registered users.
func (s *UserService) Count(ctx context.Context) (int, error) {
	return s.userRepo.Count(ctx)
}

// ProfileChanged reports whether p carries a non-empty value that differs from u.
func ProfileChanged(u *model.User, p model.Profile) bool {
	differs := func(stored *string, incoming string) bool {
		return incoming != "" && (stored == nil || *stored != incoming)
	}
	return differs(u.Username, p.Username) || differs(u.FullName, p.FullName)
}

// enqueueProfile pushes the profile to the sync queue, or writes it directly
// when Redis is not configured.
func (s *UserService) enqueueProfile(ctx context.Context, p model.Profile) error {
	if s.rdb == nil {
		return s.userRepo.UpdateProfile(ctx, p)
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.rdb.RPush(ctx, config.WorkerKey.SyncProfilesQueue, payload).Err()
}
