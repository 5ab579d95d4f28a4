package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dinoverse/internal/domain"
)

type stubHabitRepo struct {
	habits map[uuid.UUID]*domain.Habit
}

func (s *stubHabitRepo) Create(ctx context.Context, habit *domain.Habit) error { return nil }
func (s *stubHabitRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error) {
	if h, ok := s.habits[id]; ok {
		return h, nil
	}
	return nil, pgx.ErrNoRows
}
func (s *stubHabitRepo) List(ctx context.Context, activeOnly bool) ([]*domain.Habit, error) {
	return nil, nil
}
func (s *stubHabitRepo) Update(ctx context.Context, habit *domain.Habit) error { return nil }
func (s *stubHabitRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }

type stubHabitLogRepo struct {
	byHabit []*domain.HabitLog
}

func (s *stubHabitLogRepo) Upsert(ctx context.Context, log *domain.HabitLog) error { return nil }
func (s *stubHabitLogRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.HabitLog, error) {
	return nil, nil
}
func (s *stubHabitLogRepo) ListByHabit(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]*domain.HabitLog, error) {
	return s.byHabit, nil
}
func (s *stubHabitLogRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type stubCloseRunner struct {
	ran bool
	err error
}

func (s *stubCloseRunner) RunNow(ctx context.Context) error {
	s.ran = true
	return s.err
}

func TestListHabitLogsForOneHabit(t *testing.T) {
	habitID := uuid.New()
	day := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	habits := &stubHabitRepo{habits: map[uuid.UUID]*domain.Habit{
		habitID: {ID: habitID, Title: "read", Frequency: domain.FrequencyDaily, Active: true},
	}}
	logs := &stubHabitLogRepo{byHabit: []*domain.HabitLog{
		{ID: uuid.New(), HabitID: habitID, LogDate: day, Status: domain.HabitDone},
		{ID: uuid.New(), HabitID: habitID, LogDate: day.AddDate(0, 0, 1), Status: domain.HabitMissed},
	}}
	h := NewHabitHandler(habits, logs, &stubCloseRunner{})

	c, rec := newTestContext(t, http.MethodGet, "/api/admin/habits/x/logs", "")
	c.SetParamNames("id")
	c.SetParamValues(habitID.String())

	require.NoError(t, h.ListHabitLogs(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Logs    []json.RawMessage `json:"logs"`
			Summary struct {
				Done               int     `json:"done"`
				ConsistencyPercent float64 `json:"consistency_percent"`
			} `json:"summary"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Logs, 2)
	assert.Equal(t, 1, resp.Data.Summary.Done)
	assert.Equal(t, 50.0, resp.Data.Summary.ConsistencyPercent)
}

func TestListHabitLogsUnknownHabitReturns404(t *testing.T) {
	h := NewHabitHandler(&stubHabitRepo{}, &stubHabitLogRepo{}, &stubCloseRunner{})

	c, rec := newTestContext(t, http.MethodGet, "/api/admin/habits/x/logs", "")
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	require.NoError(t, h.ListHabitLogs(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCloseOutNowRunsTheCloser(t *testing.T) {
	runner := &stubCloseRunner{}
	h := NewHabitHandler(&stubHabitRepo{}, &stubHabitLogRepo{}, runner)

	c, rec := newTestContext(t, http.MethodPost, "/api/admin/habits/close-out", "")
	require.NoError(t, h.CloseOutNow(c))

	assert.True(t, runner.ran)
	assert.Equal(t, http.StatusOK, rec.Code)
}
