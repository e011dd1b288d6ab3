package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/bizdash/internal/config"
)

// WeeklyRunner produces and publishes the weekly digest.
type WeeklyRunner interface {
	RunWeekly(ctx context.Context) (string, error)
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron     *cron.Cron
	runner   WeeklyRunner
	schedule string
	timeout  time.Duration
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance running in the configured timezone.
func NewScheduler(cfg config.ReportingConfig, runner WeeklyRunner, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		runner:   runner,
		schedule: cfg.CronSchedule,
		timeout:  2 * time.Minute,
		logger:   logger,
	}, nil
}

// Start registers the weekly digest job and starts the scheduler.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))

	if _, err := s.cron.AddFunc(s.schedule, s.sendWeeklyDigest); err != nil {
		return fmt.Errorf("schedule weekly digest %q: %w", s.schedule, err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) sendWeeklyDigest() {
	s.logger.Info("generating weekly digest")
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if _, err := s.runner.RunWeekly(ctx); err != nil {
		s.logger.Error("weekly digest finished with errors", zap.Error(err))
		return
	}
	s.logger.Info("weekly digest sent successfully")
}
