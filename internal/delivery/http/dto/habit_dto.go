package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"dinoverse/internal/domain"
)

// HabitRequest is the create/update payload for a habit
type HabitRequest struct {
	Title     string `json:"title" validate:"required"`
	Frequency string `json:"frequency" validate:"required,oneof=daily weekly"`
	Active    *bool  `json:"active"`
	Order     int    `json:"order"`
}

// Apply copies the payload onto a habit. Active defaults to true when omitted.
func (r *HabitRequest) Apply(habit *domain.Habit) {
	habit.Title = r.Title
	habit.Frequency = r.Frequency
	habit.Active = true
	if r.Active != nil {
		habit.Active = *r.Active
	}
	habit.Order = r.Order
}

// HabitLogRequest is the upsert payload for one habit's day
type HabitLogRequest struct {
	HabitID string `json:"habit_id" validate:"required,uuid"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Status  string `json:"status" validate:"required,oneof=done skipped missed"`
}

// ToDomain builds a habit log ready for upsert
func (r *HabitLogRequest) ToDomain() (*domain.HabitLog, error) {
	habitID, err := uuid.Parse(r.HabitID)
	if err != nil {
		return nil, fmt.Errorf("invalid habit_id: %w", err)
	}
	date, err := time.Parse(DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	now := time.Now()
	return &domain.HabitLog{
		ID:        uuid.New(),
		HabitID:   habitID,
		LogDate:   date,
		Status:    r.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
