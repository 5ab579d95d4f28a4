package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// HabitCloser closes out a day's habit logs
type HabitCloser interface {
	CloseOutDay(ctx context.Context, day time.Time) error
}

// Scheduler runs the nightly habit close-out job
type Scheduler struct {
	cron   *cron.Cron
	closer HabitCloser
	loc    *time.Location
}

// NewScheduler creates a scheduler anchored to the application timezone
func NewScheduler(closer HabitCloser, loc *time.Location) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(loc)),
		closer: closer,
		loc:    loc,
	}
}

// Start registers and starts the cron jobs
func (s *Scheduler) Start() error {
	// Five past midnight: mark every unlogged active daily habit of the
	// day that just ended as missed.
	_, err := s.cron.AddFunc("5 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		yesterday := time.Now().In(s.loc).AddDate(0, 0, -1)
		if err := s.closer.CloseOutDay(ctx, yesterday); err != nil {
			log.Error().Err(err).Msg("habit close-out failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to register habit close-out job: %w", err)
	}

	s.cron.Start()
	log.Info().Str("schedule", "5 0 * * *").Msg("habit close-out scheduler started")
	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunNow triggers the close-out for yesterday immediately
func (s *Scheduler) RunNow(ctx context.Context) error {
	yesterday := time.Now().In(s.loc).AddDate(0, 0, -1)
	return s.closer.CloseOutDay(ctx, yesterday)
}
