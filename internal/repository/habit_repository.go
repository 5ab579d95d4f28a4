package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dinoverse/internal/domain"
)

// HabitRepositoryImpl implements the HabitRepository interface
type HabitRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewHabitRepository creates a new HabitRepository
func NewHabitRepository(db *pgxpool.Pool) domain.HabitRepository {
	return &HabitRepositoryImpl{db: db}
}

// Create inserts a new habit
func (r *HabitRepositoryImpl) Create(ctx context.Context, habit *domain.Habit) error {
	query := `
		INSERT INTO habits (id, title, frequency, active, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		habit.ID,
		habit.Title,
		habit.Frequency,
		habit.Active,
		habit.Order,
		habit.CreatedAt,
		habit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create habit: %w", err)
	}

	return nil
}

// GetByID retrieves a habit by ID
func (r *HabitRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error) {
	query := `
		SELECT id, title, frequency, active, sort_order, created_at, updated_at
		FROM habits
		WHERE id = $1
	`

	habit := &domain.Habit{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&habit.ID,
		&habit.Title,
		&habit.Frequency,
		&habit.Active,
		&habit.Order,
		&habit.CreatedAt,
		&habit.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get habit by ID: %w", err)
	}

	return habit, nil
}

// List retrieves habits in display order
func (r *HabitRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]*domain.Habit, error) {
	query := `
		SELECT id, title, frequency, active, sort_order, created_at, updated_at
		FROM habits
	`
	if activeOnly {
		query += ` WHERE active = true`
	}
	query += ` ORDER BY sort_order ASC, created_at ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	defer rows.Close()

	var habits []*domain.Habit
	for rows.Next() {
		habit := &domain.Habit{}
		err := rows.Scan(
			&habit.ID,
			&habit.Title,
			&habit.Frequency,
			&habit.Active,
			&habit.Order,
			&habit.CreatedAt,
			&habit.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, habit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating habits: %w", err)
	}

	return habits, nil
}

// Update rewrites an existing habit
func (r *HabitRepositoryImpl) Update(ctx context.Context, habit *domain.Habit) error {
	query := `
		UPDATE habits
		SET title = $1, frequency = $2, active = $3, sort_order = $4, updated_at = $5
		WHERE id = $6
	`

	tag, err := r.db.Exec(ctx, query,
		habit.Title,
		habit.Frequency,
		habit.Active,
		habit.Order,
		habit.UpdatedAt,
		habit.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete removes a habit and, by cascade, its logs
func (r *HabitRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM habits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// HabitLogRepositoryImpl implements the HabitLogRepository interface
type HabitLogRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewHabitLogRepository creates a new HabitLogRepository
func NewHabitLogRepository(db *pgxpool.Pool) domain.HabitLogRepository {
	return &HabitLogRepositoryImpl{db: db}
}

// Upsert writes the status for (habit, day). The unique index on
// (habit_id, log_date) makes a repeat write for the same day replace the
// earlier status instead of inserting a second row.
func (r *HabitLogRepositoryImpl) Upsert(ctx context.Context, log *domain.HabitLog) error {
	query := `
		INSERT INTO habit_logs (id, habit_id, log_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (habit_id, log_date)
		DO UPDATE SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		log.ID,
		log.HabitID,
		log.LogDate,
		log.Status,
		log.CreatedAt,
		log.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert habit log: %w", err)
	}

	return nil
}

// ListByDateRange retrieves all logs with log_date in [from, to]
func (r *HabitLogRepositoryImpl) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.HabitLog, error) {
	query := `
		SELECT id, habit_id, log_date, status, created_at, updated_at
		FROM habit_logs
		WHERE log_date >= $1 AND log_date <= $2
		ORDER BY log_date ASC
	`

	return r.queryLogs(ctx, query, from, to)
}

// ListByHabit retrieves one habit's logs with log_date in [from, to]
func (r *HabitLogRepositoryImpl) ListByHabit(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]*domain.HabitLog, error) {
	query := `
		SELECT id, habit_id, log_date, status, created_at, updated_at
		FROM habit_logs
		WHERE habit_id = $1 AND log_date >= $2 AND log_date <= $3
		ORDER BY log_date ASC
	`

	return r.queryLogs(ctx, query, habitID, from, to)
}

// Delete removes a habit log
func (r *HabitLogRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM habit_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete habit log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *HabitLogRepositoryImpl) queryLogs(ctx context.Context, query string, args ...interface{}) ([]*domain.HabitLog, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query habit logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.HabitLog
	for rows.Next() {
		log := &domain.HabitLog{}
		err := rows.Scan(
			&log.ID,
			&log.HabitID,
			&log.LogDate,
			&log.Status,
			&log.CreatedAt,
			&log.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan habit log: %w", err)
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating habit logs: %w", err)
	}

	return logs, nil
}
