package telegram

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stemsi/schedule-bot/internal/config"
)

// State is where a chat is in a multi-step dialog.
type State string

const (
	StateIdle           State = ""
	StateChooseSubgroup State = "choose_subgroup"
)

// StateStore keeps per-chat dialog state. Entries expire after a TTL so
// abandoned dialogs do not linger.
type StateStore interface {
	Get(ctx context.Context, chatID int64) (State, error)
	Set(ctx context.Context, chatID int64, s State) error
	Clear(ctx context.Context, chatID int64) error
}

// NewStateStore returns a Redis-backed store, or an in-process one when rdb is nil.
func NewStateStore(rdb *redis.Client, ttl time.Duration) StateStore {
	if rdb == nil {
		return NewMemoryStateStore(ttl)
	}
	return &RedisStateStore{rdb: rdb, ttl: ttl}
}

// RedisStateStore keeps state under chat:<id>:state.
type RedisStateStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func (s *RedisStateStore) Get(ctx context.Context, chatID int64) (State, error) {
	v, err := s.rdb.Get(ctx, config.CacheKey.ChatStateKey(chatID)).Result()
	if errors.Is(err, redis.Nil) {
		return StateIdle, nil
	}
	if err != nil {
		return StateIdle, err
	}
	return State(v), nil
}

func (s *RedisStateStore) Set(ctx context.Context, chatID int64, st State) error {
	return s.rdb.Set(ctx, config.CacheKey.ChatStateKey(chatID), string(st), s.ttl).Err()
}

func (s *RedisStateStore) Clear(ctx context.Context, chatID int64) error {
	return s.rdb.Del(ctx, config.CacheKey.ChatStateKey(chatID)).Err()
}

// MemoryStateStore is the single-process fallback.
type MemoryStateStore struct {
	mu      sync.Mutex
	entries map[int64]memoryState
	ttl     time.Duration
	now     func() time.Time
}

type memoryState struct {
	state   State
	expires time.Time
}

// NewMemoryStateStore creates an empty in-process store.
func NewMemoryStateStore(ttl time.Duration) *MemoryStateStore {
	return &MemoryStateStore{
		entries: make(map[int64]memoryState),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStateStore) Get(_ context.Context, chatID int64) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[chatID]
	if !ok {
		return StateIdle, nil
	}
	if s.ttl > 0 && s.now().After(e.expires) {
		delete(s.entries, chatID)
		return StateIdle, nil
	}
	return e.state, nil
}

func (s *MemoryStateStore) Set(_ context.Context, chatID int64, st State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[chatID] = memoryState{state: st, expires: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStateStore) Clear(_ context.Context, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, chatID)
	return nil
}
