package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Habit represents a tracked recurring habit
type Habit struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Frequency string    `json:"frequency"`
	Active    bool      `json:"active"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Habit frequency constants
const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

// HabitLog records the outcome of one habit on one calendar day.
// At most one log per (habit, day) is stored; writes for an existing
// day replace the previous status.
type HabitLog struct {
	ID        uuid.UUID `json:"id"`
	HabitID   uuid.UUID `json:"habit_id"`
	LogDate   time.Time `json:"log_date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Habit log status constants
const (
	HabitDone    = "done"
	HabitSkipped = "skipped"
	HabitMissed  = "missed"
)

// HabitRepository defines the interface for habits
type HabitRepository interface {
	Create(ctx context.Context, habit *Habit) error
	GetByID(ctx context.Context, id uuid.UUID) (*Habit, error)
	List(ctx context.Context, activeOnly bool) ([]*Habit, error)
	Update(ctx context.Context, habit *Habit) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// HabitLogRepository defines the interface for habit logs
type HabitLogRepository interface {
	// Upsert writes the status for (habit, day), replacing any earlier log.
	Upsert(ctx context.Context, log *HabitLog) error
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*HabitLog, error)
	ListByHabit(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]*HabitLog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
