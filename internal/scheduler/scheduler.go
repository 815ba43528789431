package scheduler

import (
	"context"
	"log/slog"
	"time"

	"til_mirror/internal/domain"
)

// Builder defines the interface for build operations.
type Builder interface {
	Build(ctx context.Context) (*domain.BuildStats, error)
}

// Scheduler rebuilds the site once at start and then on every interval
// tick. Each run is bounded by timeout.
type Scheduler struct {
	builder  Builder
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

func NewScheduler(builder Builder, interval, timeout time.Duration, logger *slog.Logger) *Scheduler {
	if timeout <= 0 {
		timeout = 10 * time.Minute
	}
	return &Scheduler{
		builder:  builder,
		interval: interval,
		timeout:  timeout,
		logger:   logger.With("component", "scheduler"),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "timeout", s.timeout)

	s.runBuild(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runBuild(ctx)
		}
	}
}

func (s *Scheduler) runBuild(ctx context.Context) {
	buildCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.builder.Build(buildCtx); err != nil {
		s.logger.Error("build failed", "error", err)
	}
}
