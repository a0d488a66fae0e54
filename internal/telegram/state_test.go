package telegram

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStateStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStateStore(time.Minute)
	now := time.Date(2025, 9, 8, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	if st, _ := s.Get(ctx, 7); st != StateIdle {
		t.Fatalf("fresh chat state = %q", st)
	}

	_ = s.Set(ctx, 7, StateChooseSubgroup)
	if st, _ := s.Get(ctx, 7); st != StateChooseSubgroup {
		t.Errorf("state = %q, want %q", st, StateChooseSubgroup)
	}
	if st, _ := s.Get(ctx, 8); st != StateIdle {
		t.Errorf("other chat state = %q", st)
	}

	_ = s.Clear(ctx, 7)
	if st, _ := s.Get(ctx, 7); st != StateIdle {
		t.Errorf("state after Clear = %q", st)
	}
}

func TestMemoryStateStoreExpires(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStateStore(time.Minute)
	now := time.Date(2025, 9, 8, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	_ = s.Set(ctx, 7, StateChooseSubgroup)
	now = now.Add(2 * time.Minute)
	if st, _ := s.Get(ctx, 7); st != StateIdle {
		t.Errorf("expired state = %q, want idle", st)
	}
}

func TestNewStateStoreWithoutRedis(t *testing.T) {
	if _, ok := NewStateStore(nil, time.Minute).(*MemoryStateStore); !ok {
		t.Error("expected in-process store when Redis is not configured")
	}
}
