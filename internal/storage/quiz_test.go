package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/aliskhannn/sorting-hat-bot/internal/domain/entities"
)

func TestQuizStorageReplacesSessionPerChat(t *testing.T) {
	s := NewQuizStorage()
	now := time.Now()

	first := entities.NewQuizSession("a", 10, nil, now)
	second := entities.NewQuizSession("b", 10, nil, now)

	s.Store(first)
	s.Store(second)

	got, err := s.Get(10)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "b" {
		t.Fatalf("expected replaced session, got %q", got.ID)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", s.Len())
	}
}

func TestQuizStorageGetByID(t *testing.T) {
	s := NewQuizStorage()
	s.Store(entities.NewQuizSession("current", 7, nil, time.Now()))

	if _, err := s.GetByID(7, "current"); err != nil {
		t.Fatalf("expected session, got %v", err)
	}
	if _, err := s.GetByID(7, "old"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for old id, got %v", err)
	}
	if _, err := s.GetByID(8, "current"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for other chat, got %v", err)
	}
}

func TestQuizStorageEvictIdle(t *testing.T) {
	s := NewQuizStorage()
	now := time.Now()

	s.Store(entities.NewQuizSession("stale", 1, nil, now.Add(-2*time.Hour)))
	s.Store(entities.NewQuizSession("fresh", 2, nil, now))

	if n := s.EvictIdle(now.Add(-time.Hour)); n != 1 {
		t.Fatalf("expected 1 eviction, got %d", n)
	}
	if _, err := s.Get(1); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("stale session still present: %v", err)
	}
	if _, err := s.Get(2); err != nil {
		t.Fatalf("fresh session evicted: %v", err)
	}
}

func TestQuizStorageDelete(t *testing.T) {
	s := NewQuizStorage()
	s.Store(entities.NewQuizSession("x", 3, nil, time.Now()))
	s.Delete(3)

	if _, err := s.Get(3); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestQuizStorageCopiesSessions(t *testing.T) {
	s := NewQuizStorage()
	session := entities.NewQuizSession("x", 4, nil, time.Now())
	s.Store(session)

	session.Scores[entities.Ravenclaw] = 5

	got, err := s.Get(4)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Scores[entities.Ravenclaw] != 0 {
		t.Fatal("stored session changed through the caller's pointer")
	}

	got.Current = 3
	again, _ := s.Get(4)
	if again.Current != 0 {
		t.Fatal("stored session changed through a returned pointer")
	}
}
