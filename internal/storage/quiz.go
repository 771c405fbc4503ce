package storage

import (
	"errors"
	"sync"
	"time"

	"github.com/aliskhannn/sorting-hat-bot/internal/domain/entities"
)

var ErrSessionNotFound = errors.New("quiz session not found")

// QuizStorage provides in-memory storage for quiz sessions by chat ID.
// A chat has at most one session; storing a new one replaces the old.
// Sessions are copied on the way in and out, so callers never share
// state with the janitor sweeping the map.
type QuizStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*entities.QuizSession
}

// NewQuizStorage creates a new QuizStorage.
func NewQuizStorage() *QuizStorage {
	return &QuizStorage{
		sessions: make(map[int64]*entities.QuizSession),
	}
}

// Store saves the session for its chat, replacing any previous one.
func (s *QuizStorage) Store(session *entities.QuizSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ChatID] = session.Clone()
}

// Get retrieves the session for a chat.
func (s *QuizStorage) Get(chatID int64) (*entities.QuizSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[chatID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session.Clone(), nil
}

// GetByID retrieves the session for a chat only if it has the given ID.
func (s *QuizStorage) GetByID(chatID int64, sessionID string) (*entities.QuizSession, error) {
	session, err := s.Get(chatID)
	if err != nil {
		return nil, err
	}
	if session.ID != sessionID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Delete removes the session for a chat.
func (s *QuizStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

// EvictIdle removes sessions not updated since before and returns how many
// were removed.
func (s *QuizStorage) EvictIdle(before time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for chatID, session := range s.sessions {
		if session.UpdatedAt.Before(before) {
			delete(s.sessions, chatID)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of stored sessions.
func (s *QuizStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
