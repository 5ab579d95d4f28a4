package http

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"dinoverse/internal/delivery/http/dto"
	"dinoverse/internal/domain"
	"dinoverse/internal/stats"
	"dinoverse/internal/utils"
)

// CloseRunner triggers the habit close-out outside its nightly schedule
type CloseRunner interface {
	RunNow(ctx context.Context) error
}

// HabitHandler handles the habit tracker endpoints
type HabitHandler struct {
	habitRepo domain.HabitRepository
	logRepo   domain.HabitLogRepository
	closer    CloseRunner
}

// NewHabitHandler creates a new HabitHandler
func NewHabitHandler(habitRepo domain.HabitRepository, logRepo domain.HabitLogRepository, closer CloseRunner) *HabitHandler {
	return &HabitHandler{habitRepo: habitRepo, logRepo: logRepo, closer: closer}
}

// ListHabits returns habits in display order
// GET /api/admin/habits?active=true
func (h *HabitHandler) ListHabits(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	habits, err := h.habitRepo.List(ctx, c.QueryParam("active") == "true")
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to fetch habits", err)
	}

	return SuccessResponse(c, map[string]interface{}{"habits": habits})
}

// CreateHabit records a new habit
// POST /api/admin/habits
func (h *HabitHandler) CreateHabit(c echo.Context) error {
	var req dto.HabitRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	now := time.Now()
	habit := &domain.Habit{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	req.Apply(habit)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.habitRepo.Create(ctx, habit); err != nil {
		return InternalServerErrorResponse(c, "Failed to create habit", err)
	}

	return CreatedResponse(c, habit)
}

// UpdateHabit rewrites an existing habit
// PUT /api/admin/habits/:id
func (h *HabitHandler) UpdateHabit(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid habit ID")
	}

	var req dto.HabitRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	habit, err := h.habitRepo.GetByID(ctx, id)
	if err != nil {
		return RepoErrorResponse(c, "Failed to fetch habit", err)
	}

	req.Apply(habit)
	habit.UpdatedAt = time.Now()

	if err := h.habitRepo.Update(ctx, habit); err != nil {
		return RepoErrorResponse(c, "Failed to update habit", err)
	}

	return SuccessResponse(c, habit)
}

// DeleteHabit removes a habit and its logs
// DELETE /api/admin/habits/:id
func (h *HabitHandler) DeleteHabit(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid habit ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.habitRepo.Delete(ctx, id); err != nil {
		return RepoErrorResponse(c, "Failed to delete habit", err)
	}

	return SuccessResponse(c, map[string]bool{"deleted": true})
}

// ListLogs returns habit logs for a window plus the consistency summary.
// Without from/to the window defaults to the current ISO week.
// GET /api/admin/habits/logs?from=&to=
func (h *HabitHandler) ListLogs(c echo.Context) error {
	loc := utils.GetLocation()
	weekStart, weekEnd := utils.WeekBounds(time.Now().In(loc), loc)
	from := weekStart
	to := weekEnd.AddDate(0, 0, -1) // inclusive Sunday

	if v := c.QueryParam("from"); v != "" {
		parsed, err := time.Parse(dto.DateFormat, v)
		if err != nil {
			return BadRequestResponse(c, "from must be a date (YYYY-MM-DD)")
		}
		from = parsed
	}
	if v := c.QueryParam("to"); v != "" {
		parsed, err := time.Parse(dto.DateFormat, v)
		if err != nil {
			return BadRequestResponse(c, "to must be a date (YYYY-MM-DD)")
		}
		to = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	logs, err := h.logRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to fetch habit logs", err)
	}

	return SuccessResponse(c, map[string]interface{}{
		"logs":    logs,
		"summary": stats.SummarizeHabitWeek(logs),
	})
}

// ListHabitLogs returns one habit's logs for a window, defaulting to the
// current ISO week.
// GET /api/admin/habits/:id/logs?from=&to=
func (h *HabitHandler) ListHabitLogs(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid habit ID")
	}

	loc := utils.GetLocation()
	weekStart, weekEnd := utils.WeekBounds(time.Now().In(loc), loc)
	from := weekStart
	to := weekEnd.AddDate(0, 0, -1)

	if v := c.QueryParam("from"); v != "" {
		parsed, err := time.Parse(dto.DateFormat, v)
		if err != nil {
			return BadRequestResponse(c, "from must be a date (YYYY-MM-DD)")
		}
		from = parsed
	}
	if v := c.QueryParam("to"); v != "" {
		parsed, err := time.Parse(dto.DateFormat, v)
		if err != nil {
			return BadRequestResponse(c, "to must be a date (YYYY-MM-DD)")
		}
		to = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.habitRepo.GetByID(ctx, id); err != nil {
		return RepoErrorResponse(c, "Failed to fetch habit", err)
	}

	logs, err := h.logRepo.ListByHabit(ctx, id, from, to)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to fetch habit logs", err)
	}

	return SuccessResponse(c, map[string]interface{}{
		"logs":    logs,
		"summary": stats.SummarizeHabitWeek(logs),
	})
}

// CloseOutNow runs yesterday's close-out immediately instead of waiting
// for the nightly schedule
// POST /api/admin/habits/close-out
func (h *HabitHandler) CloseOutNow(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	if err := h.closer.RunNow(ctx); err != nil {
		return InternalServerErrorResponse(c, "Failed to run habit close-out", err)
	}

	return SuccessResponse(c, map[string]bool{"closed_out": true})
}

// UpsertLog writes the status for one habit's day
// PUT /api/admin/habits/logs
func (h *HabitHandler) UpsertLog(c echo.Context) error {
	var req dto.HabitLogRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	log, err := req.ToDomain()
	if err != nil {
		return BadRequestResponse(c, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	// Reject logs for unknown habits up front
	if _, err := h.habitRepo.GetByID(ctx, log.HabitID); err != nil {
		return RepoErrorResponse(c, "Failed to fetch habit", err)
	}

	if err := h.logRepo.Upsert(ctx, log); err != nil {
		return InternalServerErrorResponse(c, "Failed to save habit log", err)
	}

	return SuccessResponse(c, log)
}

// DeleteLog removes a habit log
// DELETE /api/admin/habits/logs/:id
func (h *HabitHandler) DeleteLog(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid log ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.logRepo.Delete(ctx, id); err != nil {
		return RepoErrorResponse(c, "Failed to delete habit log", err)
	}

	return SuccessResponse(c, map[string]bool{"deleted": true})
}
