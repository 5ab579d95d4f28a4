package stats

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"dinoverse/internal/domain"
)

func habitLog(habitID uuid.UUID, day int, status string, writtenAt time.Time) *domain.HabitLog {
	return &domain.HabitLog{
		ID:        uuid.New(),
		HabitID:   habitID,
		LogDate:   time.Date(2026, 8, 24+day, 0, 0, 0, 0, time.UTC),
		Status:    status,
		CreatedAt: writtenAt,
	}
}

func TestSummarizeHabitWeek_Empty(t *testing.T) {
	s := SummarizeHabitWeek(nil)

	assert.Zero(t, s.Logged)
	assert.Zero(t, s.ConsistencyPercent, "zero logs must yield 0, not NaN")
}

func TestSummarizeHabitWeek_Basic(t *testing.T) {
	h := uuid.New()
	written := time.Date(2026, 8, 28, 20, 0, 0, 0, time.UTC)

	s := SummarizeHabitWeek([]*domain.HabitLog{
		habitLog(h, 0, domain.HabitDone, written),
		habitLog(h, 1, domain.HabitDone, written),
		habitLog(h, 2, domain.HabitDone, written),
		habitLog(h, 3, domain.HabitMissed, written),
	})

	assert.Equal(t, 4, s.Logged)
	assert.Equal(t, 3, s.Done)
	assert.Equal(t, 1, s.Missed)
	assert.Equal(t, float64(75), s.ConsistencyPercent)
}

func TestSummarizeHabitWeek_DuplicateDayLastWriteWins(t *testing.T) {
	h := uuid.New()
	morning := time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 8, 24, 21, 0, 0, 0, time.UTC)

	// An earlier "missed" corrected to "done" later the same day counts
	// once, as done.
	s := SummarizeHabitWeek([]*domain.HabitLog{
		habitLog(h, 0, domain.HabitMissed, morning),
		habitLog(h, 0, domain.HabitDone, evening),
	})

	assert.Equal(t, 1, s.Logged)
	assert.Equal(t, 1, s.Done)
	assert.Zero(t, s.Missed)
	assert.Equal(t, float64(100), s.ConsistencyPercent)
}

func TestSummarizeHabitWeek_DuplicateUsesUpdatedAt(t *testing.T) {
	h := uuid.New()
	first := habitLog(h, 0, domain.HabitDone, time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC))
	// Upserted row: created early, updated late, status flipped to skipped
	second := habitLog(h, 0, domain.HabitSkipped, time.Date(2026, 8, 24, 7, 0, 0, 0, time.UTC))
	second.UpdatedAt = time.Date(2026, 8, 24, 22, 0, 0, 0, time.UTC)

	s := SummarizeHabitWeek([]*domain.HabitLog{first, second})

	assert.Equal(t, 1, s.Logged)
	assert.Equal(t, 1, s.Skipped)
	assert.Zero(t, s.ConsistencyPercent)
}

func TestSummarizeHabitWeek_SeparateHabitsSameDay(t *testing.T) {
	written := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)

	s := SummarizeHabitWeek([]*domain.HabitLog{
		habitLog(uuid.New(), 0, domain.HabitDone, written),
		habitLog(uuid.New(), 0, domain.HabitSkipped, written),
	})

	assert.Equal(t, 2, s.Logged)
	assert.Equal(t, float64(50), s.ConsistencyPercent)
}
