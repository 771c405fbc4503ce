package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SessionEvictor removes sessions idle since before.
type SessionEvictor interface {
	EvictIdle(before time.Time) int
}

// JanitorService drops abandoned quiz sessions on a cron schedule.
type JanitorService struct {
	sessions SessionEvictor
	schedule string
	ttl      time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewJanitorService creates a janitor that evicts sessions idle for longer
// than ttl every time schedule fires.
func NewJanitorService(sessions SessionEvictor, schedule string, ttl time.Duration, logger *zap.Logger) *JanitorService {
	return &JanitorService{
		sessions: sessions,
		schedule: schedule,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
}

// Start runs the cron scheduler until ctx is done.
func (s *JanitorService) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	if _, err := c.AddFunc(s.schedule, func() { s.Sweep() }); err != nil {
		return err
	}

	c.Start()
	s.logger.Info("session janitor started",
		zap.String("schedule", s.schedule),
		zap.Duration("ttl", s.ttl),
	)

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("session janitor stopped")

	return nil
}

// Sweep evicts idle sessions once and returns how many were removed.
func (s *JanitorService) Sweep() int {
	evicted := s.sessions.EvictIdle(s.now().Add(-s.ttl))
	if evicted > 0 {
		s.logger.Info("evicted idle quiz sessions", zap.Int("count", evicted))
	}
	return evicted
}
