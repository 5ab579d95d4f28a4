package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dinoverse/internal/domain"
)

type fakeHabitRepo struct {
	habits []*domain.Habit
}

func (f *fakeHabitRepo) Create(ctx context.Context, habit *domain.Habit) error { return nil }
func (f *fakeHabitRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error) {
	return nil, nil
}
func (f *fakeHabitRepo) List(ctx context.Context, activeOnly bool) ([]*domain.Habit, error) {
	return f.habits, nil
}
func (f *fakeHabitRepo) Update(ctx context.Context, habit *domain.Habit) error { return nil }
func (f *fakeHabitRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }

type fakeHabitLogRepo struct {
	existing []*domain.HabitLog
	upserted []*domain.HabitLog
}

func (f *fakeHabitLogRepo) Upsert(ctx context.Context, log *domain.HabitLog) error {
	f.upserted = append(f.upserted, log)
	return nil
}
func (f *fakeHabitLogRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.HabitLog, error) {
	return f.existing, nil
}
func (f *fakeHabitLogRepo) ListByHabit(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]*domain.HabitLog, error) {
	return nil, nil
}
func (f *fakeHabitLogRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func habit(frequency string) *domain.Habit {
	return &domain.Habit{ID: uuid.New(), Title: "habit", Frequency: frequency, Active: true}
}

func TestCloseOutDayMarksUnloggedDailyHabitsMissed(t *testing.T) {
	logged := habit(domain.FrequencyDaily)
	unlogged := habit(domain.FrequencyDaily)
	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	habits := &fakeHabitRepo{habits: []*domain.Habit{logged, unlogged}}
	logs := &fakeHabitLogRepo{existing: []*domain.HabitLog{
		{ID: uuid.New(), HabitID: logged.ID, LogDate: day, Status: domain.HabitDone},
	}}

	svc := NewHabitCloserService(habits, logs)
	require.NoError(t, svc.CloseOutDay(context.Background(), day))

	require.Len(t, logs.upserted, 1)
	assert.Equal(t, unlogged.ID, logs.upserted[0].HabitID)
	assert.Equal(t, domain.HabitMissed, logs.upserted[0].Status)
}

func TestCloseOutDaySkipsWeeklyHabits(t *testing.T) {
	weekly := habit(domain.FrequencyWeekly)
	habits := &fakeHabitRepo{habits: []*domain.Habit{weekly}}
	logs := &fakeHabitLogRepo{}

	svc := NewHabitCloserService(habits, logs)
	require.NoError(t, svc.CloseOutDay(context.Background(), time.Now()))

	assert.Empty(t, logs.upserted)
}

func TestCloseOutDayLeavesLoggedHabitsAlone(t *testing.T) {
	daily := habit(domain.FrequencyDaily)
	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	habits := &fakeHabitRepo{habits: []*domain.Habit{daily}}
	logs := &fakeHabitLogRepo{existing: []*domain.HabitLog{
		{ID: uuid.New(), HabitID: daily.ID, LogDate: day, Status: domain.HabitSkipped},
	}}

	svc := NewHabitCloserService(habits, logs)
	require.NoError(t, svc.CloseOutDay(context.Background(), day))

	assert.Empty(t, logs.upserted)
}
