package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"dinoverse/internal/domain"
	"dinoverse/internal/utils"
)

// HabitCloserService marks unlogged daily habits as missed once the day
// is over, so the week's consistency figure counts silence against you.
type HabitCloserService struct {
	habitRepo domain.HabitRepository
	logRepo   domain.HabitLogRepository
}

// NewHabitCloserService creates a new HabitCloserService
func NewHabitCloserService(habitRepo domain.HabitRepository, logRepo domain.HabitLogRepository) *HabitCloserService {
	return &HabitCloserService{habitRepo: habitRepo, logRepo: logRepo}
}

// CloseOutDay writes a missed log for every active daily habit that has
// no log on the given day. Habits already logged keep their status; the
// upsert path is never taken for them.
func (s *HabitCloserService) CloseOutDay(ctx context.Context, day time.Time) error {
	loc := utils.GetLocation()
	dayStart := utils.StartOfDay(day.In(loc), loc)

	habits, err := s.habitRepo.List(ctx, true)
	if err != nil {
		return fmt.Errorf("failed to list habits: %w", err)
	}

	logs, err := s.logRepo.ListByDateRange(ctx, dayStart, dayStart)
	if err != nil {
		return fmt.Errorf("failed to list habit logs: %w", err)
	}

	logged := make(map[uuid.UUID]bool, len(logs))
	for _, l := range logs {
		logged[l.HabitID] = true
	}

	closed := 0
	for _, habit := range habits {
		if habit.Frequency != domain.FrequencyDaily || logged[habit.ID] {
			continue
		}

		now := time.Now()
		miss := &domain.HabitLog{
			ID:        uuid.New(),
			HabitID:   habit.ID,
			LogDate:   dayStart,
			Status:    domain.HabitMissed,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.logRepo.Upsert(ctx, miss); err != nil {
			return fmt.Errorf("failed to close out habit %s: %w", habit.ID, err)
		}
		closed++
	}

	log.Info().
		Str("day", dayStart.Format("2006-01-02")).
		Int("habits", len(habits)).
		Int("marked_missed", closed).
		Msg("habit day closed out")
	return nil
}
