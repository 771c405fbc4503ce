package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/sorting-hat-bot/internal/domain/entities"
	"github.com/aliskhannn/sorting-hat-bot/internal/storage"
)

func TestJanitorSweepEvictsOnlyIdleSessions(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	store := storage.NewQuizStorage()
	store.Store(entities.NewQuizSession("old", 1, nil, now.Add(-25*time.Hour)))
	store.Store(entities.NewQuizSession("new", 2, nil, now.Add(-time.Minute)))

	j := NewJanitorService(store, "@every 10m", 24*time.Hour, zap.NewNop())
	j.now = func() time.Time { return now }

	if n := j.Sweep(); n != 1 {
		t.Fatalf("expected 1 evicted session, got %d", n)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 remaining session, got %d", store.Len())
	}
	if _, err := store.Get(2); err != nil {
		t.Fatalf("recent session was evicted: %v", err)
	}
}

func TestJanitorStartRejectsBadSchedule(t *testing.T) {
	j := NewJanitorService(storage.NewQuizStorage(), "not a schedule", time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	if err := j.Start(ctx); err == nil {
		t.Fatal("expected error for invalid cron schedule")
	}
}
