package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/schedule-bot/internal/config"
	"github.com/stemsi/schedule-bot/internal/model"
)

// ProfileWriter persists a user's messenger profile.
type ProfileWriter interface {
	UpdateProfile(ctx context.Context, p model.Profile) error
}

// pusher is the part of *redis.Client used to put items back on a queue.
type pusher interface {
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
}

// ProfileWorker consumes sync_profiles_queue and writes changed usernames
// and names to PostgreSQL, keeping that write off the chat update path.
type ProfileWorker struct {
	users ProfileWriter
	rdb   *redis.Client
	push  pusher
	retry time.Duration
	log   zerolog.Logger
}

// NewProfileWorker creates a new ProfileWorker.
func NewProfileWorker(users ProfileWriter, rdb *redis.Client, log zerolog.Logger) *ProfileWorker {
	return &ProfileWorker{
		users: users,
		rdb:   rdb,
		push:  rdb,
		retry: 5 * time.Second,
		log:   log.With().Str("component", "profile_worker").Logger(),
	}
}

// Start begins the worker loop. Call in a goroutine.
func (w *ProfileWorker) Start(ctx context.Context) {
	w.log.Info().Msg("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopping...")
			w.drain(context.Background())
			w.log.Info().Msg("Worker stopped")
			return
		default:
			w.processNext(ctx)
		}
	}
}

func (w *ProfileWorker) processNext(ctx context.Context) {
	queue := config.WorkerKey.SyncProfilesQueue

	result, err := w.rdb.BLPop(ctx, time.Second, queue).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("BLPop error")
		}
		return
	}
	if len(result) < 2 {
		return
	}

	if err := w.apply(ctx, result[1]); err != nil {
		if errors.Is(err, errBadPayload) {
			w.log.Error().Err(err).Msg("Dropping malformed payload")
			return
		}
		w.log.Error().Err(err).Msg("Persist error, retrying")
		if w.requeue(ctx, result[1]) != nil {
			return
		}
		select {
		case <-ctx.Done():
		case <-time.After(w.retry):
		}
	}
}

// requeue puts raw back at the tail of the queue. The push ignores ctx
// cancellation so an item popped during shutdown is not lost.
func (w *ProfileWorker) requeue(ctx context.Context, raw string) error {
	queue := config.WorkerKey.SyncProfilesQueue
	if err := w.push.RPush(context.WithoutCancel(ctx), queue, raw).Err(); err != nil {
		w.log.Error().Err(err).Str("payload", raw).Msg("Requeue failed, profile update lost")
		return err
	}
	return nil
}

var errBadPayload = errors.New("bad profile payload")

// apply decodes one queue item and stores it.
func (w *ProfileWorker) apply(ctx context.Context, raw string) error {
	var p model.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return fmt.Errorf("%w: %v", errBadPayload, err)
	}
	if p.ID == 0 {
		return fmt.Errorf("%w: missing user id", errBadPayload)
	}
	return w.users.UpdateProfile(ctx, p)
}

// drain processes all remaining items in the queue before shutdown.
func (w *ProfileWorker) drain(ctx context.Context) {
	queue := config.WorkerKey.SyncProfilesQueue
	drained := 0
	for {
		raw, err := w.rdb.LPop(ctx, queue).Result()
		if err != nil {
			break
		}
		if err := w.apply(ctx, raw); err != nil {
			w.log.Error().Err(err).Msg("Drain persist error")
			if !errors.Is(err, errBadPayload) {
				_ = w.requeue(ctx, raw)
				break
			}
			continue
		}
		drained++
	}

	if drained > 0 {
		w.log.Info().Int("count", drained).Msg("Drained remaining items")
	}
}
