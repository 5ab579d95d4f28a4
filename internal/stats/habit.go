package stats

import (
	"time"

	"github.com/google/uuid"

	"dinoverse/internal/domain"
)

// HabitWeekSummary aggregates the habit logs of one week window
type HabitWeekSummary struct {
	Done               int     `json:"done"`
	Skipped            int     `json:"skipped"`
	Missed             int     `json:"missed"`
	Logged             int     `json:"logged"`
	ConsistencyPercent float64 `json:"consistency_percent"`
}

type habitDay struct {
	habit uuid.UUID
	day   time.Time
}

// SummarizeHabitWeek computes the consistency percentage over the given
// logs. Storage enforces one log per (habit, day), but callers may still
// feed raw slices, so duplicates are resolved last-write-wins here: only
// the most recently written log for a day counts toward either counter.
func SummarizeHabitWeek(logs []*domain.HabitLog) HabitWeekSummary {
	latest := make(map[habitDay]*domain.HabitLog)
	for _, log := range logs {
		key := habitDay{habit: log.HabitID, day: dateOnly(log.LogDate)}
		prev, ok := latest[key]
		if !ok || writtenAt(log).After(writtenAt(prev)) {
			latest[key] = log
		}
	}

	var s HabitWeekSummary
	for _, log := range latest {
		s.Logged++
		switch log.Status {
		case domain.HabitDone:
			s.Done++
		case domain.HabitSkipped:
			s.Skipped++
		case domain.HabitMissed:
			s.Missed++
		}
	}

	if s.Logged > 0 {
		s.ConsistencyPercent = roundTo(float64(s.Done)/float64(s.Logged)*100, 1)
	}
	return s
}

// writtenAt is the moment the log's current status was recorded
func writtenAt(log *domain.HabitLog) time.Time {
	if log.UpdatedAt.After(log.CreatedAt) {
		return log.UpdatedAt
	}
	return log.CreatedAt
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
