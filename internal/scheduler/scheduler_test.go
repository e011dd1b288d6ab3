package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/mamadbah2/bizdash/internal/config"
)

type countingRunner struct {
	calls int
	err   error
}

func (c *countingRunner) RunWeekly(context.Context) (string, error) {
	c.calls++
	return "digest", c.err
}

func TestNewScheduler_RejectsUnknownTimezone(t *testing.T) {
	_, err := NewScheduler(config.ReportingConfig{CronSchedule: "0 20 * * 5", Timezone: "Nowhere/Land"}, &countingRunner{}, nil)
	if err == nil {
		t.Fatal("expected timezone error")
	}
}

func TestStart_RejectsInvalidSchedule(t *testing.T) {
	s, err := NewScheduler(config.ReportingConfig{CronSchedule: "every friday", Timezone: "UTC"}, &countingRunner{}, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := s.Start(); err == nil {
		t.Fatal("expected schedule error")
	}
}

func TestSendWeeklyDigest_InvokesRunner(t *testing.T) {
	for _, runErr := range []error{nil, errors.New("sheets down")} {
		runner := &countingRunner{err: runErr}
		s, err := NewScheduler(config.ReportingConfig{CronSchedule: "0 20 * * 5", Timezone: "UTC"}, runner, nil)
		if err != nil {
			t.Fatalf("new: %v", err)
		}

		s.sendWeeklyDigest()
		if runner.calls != 1 {
			t.Fatalf("runner called %d times, want 1 (no retries)", runner.calls)
		}
	}
}

func TestStartStop(t *testing.T) {
	s, err := NewScheduler(config.ReportingConfig{CronSchedule: "0 20 * * 5", Timezone: "UTC"}, &countingRunner{}, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if n := len(s.cron.Entries()); n != 1 {
		t.Fatalf("expected one cron entry, got %d", n)
	}
	s.Stop()
}
