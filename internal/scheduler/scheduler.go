package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Purger removes idle sessions
type Purger interface {
	PurgeIdle(ctx context.Context, ttl time.Duration) (int64, error)
}

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	purger    Purger
	ttl       time.Duration
	interval  time.Duration
	logger    *zap.Logger
}

// New creates a new scheduler instance that purges sessions idle for longer
// than ttl every interval
func New(purger Purger, ttl, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		purger:    purger,
		ttl:       ttl,
		interval:  interval,
		logger:    logger,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(s.interval).Do(s.purgeIdleSessions); err != nil {
		return fmt.Errorf("failed to schedule session purge: %w", err)
	}

	// Start the scheduler in a non-blocking manner
	s.scheduler.StartAsync()
	return nil
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// RunNow purges idle sessions immediately
func (s *Scheduler) RunNow(ctx context.Context) (int64, error) {
	return s.purger.PurgeIdle(ctx, s.ttl)
}

func (s *Scheduler) purgeIdleSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	removed, err := s.RunNow(ctx)
	if err != nil {
		s.logger.Error("session purge failed", zap.Error(err))
		return
	}
	if removed > 0 {
		s.logger.Info("purged idle sessions", zap.Int64("removed", removed), zap.Duration("ttl", s.ttl))
	}
}
