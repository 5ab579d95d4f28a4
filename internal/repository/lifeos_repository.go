package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dinoverse/internal/domain"
)

// GoalRepositoryImpl implements the GoalRepository interface
type GoalRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewGoalRepository creates a new GoalRepository
func NewGoalRepository(db *pgxpool.Pool) domain.GoalRepository {
	return &GoalRepositoryImpl{db: db}
}

const goalColumns = `
	id, title, description, category, target_date, progress, status,
	created_at, updated_at
`

func scanGoal(row pgx.Row) (*domain.Goal, error) {
	goal := &domain.Goal{}
	err := row.Scan(
		&goal.ID,
		&goal.Title,
		&goal.Description,
		&goal.Category,
		&goal.TargetDate,
		&goal.Progress,
		&goal.Status,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return goal, nil
}

// Create inserts a new goal
func (r *GoalRepositoryImpl) Create(ctx context.Context, goal *domain.Goal) error {
	query := `
		INSERT INTO goals (
			id, title, description, category, target_date, progress, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		goal.ID, goal.Title, goal.Description, goal.Category, goal.TargetDate,
		goal.Progress, goal.Status, goal.CreatedAt, goal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// GetByID retrieves a goal by ID
func (r *GoalRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = $1`

	goal, err := scanGoal(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get goal by ID: %w", err)
	}
	return goal, nil
}

// List retrieves goals matching the filter
func (r *GoalRepositoryImpl) List(ctx context.Context, filter domain.LifeOSFilter) ([]*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE 1=1`
	args := []interface{}{}
	argn := 1

	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argn)
		args = append(args, filter.Status)
		argn++
	}
	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argn)
		args = append(args, filter.Category)
		argn++
	}
	if filter.Q != "" {
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", argn, argn)
		args = append(args, "%"+filter.Q+"%")
		argn++
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goals: %w", err)
	}
	return goals, nil
}

// Update rewrites an existing goal
func (r *GoalRepositoryImpl) Update(ctx context.Context, goal *domain.Goal) error {
	query := `
		UPDATE goals
		SET title = $1, description = $2, category = $3, target_date = $4,
		    progress = $5, status = $6, updated_at = $7
		WHERE id = $8
	`

	tag, err := r.db.Exec(ctx, query,
		goal.Title, goal.Description, goal.Category, goal.TargetDate,
		goal.Progress, goal.Status, goal.UpdatedAt, goal.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a goal
func (r *GoalRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// RuleRepositoryImpl implements the RuleRepository interface
type RuleRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewRuleRepository creates a new RuleRepository
func NewRuleRepository(db *pgxpool.Pool) domain.RuleRepository {
	return &RuleRepositoryImpl{db: db}
}

func scanRule(row pgx.Row) (*domain.Rule, error) {
	rule := &domain.Rule{}
	err := row.Scan(
		&rule.ID,
		&rule.Title,
		&rule.Description,
		&rule.Category,
		&rule.Order,
		&rule.Active,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return rule, nil
}

// Create inserts a new rule
func (r *RuleRepositoryImpl) Create(ctx context.Context, rule *domain.Rule) error {
	query := `
		INSERT INTO rules (
			id, title, description, category, sort_order, active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		rule.ID, rule.Title, rule.Description, rule.Category, rule.Order,
		rule.Active, rule.CreatedAt, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create rule: %w", err)
	}
	return nil
}

// GetByID retrieves a rule by ID
func (r *RuleRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rule, error) {
	query := `
		SELECT id, title, description, category, sort_order, active, created_at, updated_at
		FROM rules WHERE id = $1
	`

	rule, err := scanRule(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get rule by ID: %w", err)
	}
	return rule, nil
}

// List retrieves rules matching the filter, in display order
func (r *RuleRepositoryImpl) List(ctx context.Context, filter domain.LifeOSFilter) ([]*domain.Rule, error) {
	query := `
		SELECT id, title, description, category, sort_order, active, created_at, updated_at
		FROM rules WHERE 1=1
	`
	args := []interface{}{}
	argn := 1

	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argn)
		args = append(args, filter.Category)
		argn++
	}
	if filter.Q != "" {
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", argn, argn)
		args = append(args, "%"+filter.Q+"%")
		argn++
	}
	query += " ORDER BY sort_order ASC, created_at ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	defer rows.Close()

	var rules []*domain.Rule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rules: %w", err)
	}
	return rules, nil
}

// Update rewrites an existing rule
func (r *RuleRepositoryImpl) Update(ctx context.Context, rule *domain.Rule) error {
	query := `
		UPDATE rules
		SET title = $1, description = $2, category = $3, sort_order = $4,
		    active = $5, updated_at = $6
		WHERE id = $7
	`

	tag, err := r.db.Exec(ctx, query,
		rule.Title, rule.Description, rule.Category, rule.Order, rule.Active,
		rule.UpdatedAt, rule.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a rule
func (r *RuleRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ReflectionRepositoryImpl implements the ReflectionRepository interface
type ReflectionRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewReflectionRepository creates a new ReflectionRepository
func NewReflectionRepository(db *pgxpool.Pool) domain.ReflectionRepository {
	return &ReflectionRepositoryImpl{db: db}
}

func scanReflection(row pgx.Row) (*domain.Reflection, error) {
	reflection := &domain.Reflection{}
	err := row.Scan(
		&reflection.ID,
		&reflection.Date,
		&reflection.Content,
		&reflection.Mood,
		&reflection.Tags,
		&reflection.CreatedAt,
		&reflection.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return reflection, nil
}

// Create inserts a new reflection
func (r *ReflectionRepositoryImpl) Create(ctx context.Context, reflection *domain.Reflection) error {
	query := `
		INSERT INTO reflections (
			id, reflection_date, content, mood, tags, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		reflection.ID, reflection.Date, reflection.Content, reflection.Mood,
		reflection.Tags, reflection.CreatedAt, reflection.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create reflection: %w", err)
	}
	return nil
}

// GetByID retrieves a reflection by ID
func (r *ReflectionRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reflection, error) {
	query := `
		SELECT id, reflection_date, content, mood, tags, created_at, updated_at
		FROM reflections WHERE id = $1
	`

	reflection, err := scanReflection(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get reflection by ID: %w", err)
	}
	return reflection, nil
}

// List retrieves reflections matching the filter, newest first
func (r *ReflectionRepositoryImpl) List(ctx context.Context, filter domain.LifeOSFilter) ([]*domain.Reflection, error) {
	query := `
		SELECT id, reflection_date, content, mood, tags, created_at, updated_at
		FROM reflections WHERE 1=1
	`
	args := []interface{}{}
	argn := 1

	if filter.From != nil {
		query += fmt.Sprintf(" AND reflection_date >= $%d", argn)
		args = append(args, *filter.From)
		argn++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND reflection_date <= $%d", argn)
		args = append(args, *filter.To)
		argn++
	}
	if filter.Q != "" {
		query += fmt.Sprintf(" AND content ILIKE $%d", argn)
		args = append(args, "%"+filter.Q+"%")
		argn++
	}
	query += " ORDER BY reflection_date DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reflections: %w", err)
	}
	defer rows.Close()

	var reflections []*domain.Reflection
	for rows.Next() {
		reflection, err := scanReflection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reflection: %w", err)
		}
		reflections = append(reflections, reflection)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reflections: %w", err)
	}
	return reflections, nil
}

// Update rewrites an existing reflection
func (r *ReflectionRepositoryImpl) Update(ctx context.Context, reflection *domain.Reflection) error {
	query := `
		UPDATE reflections
		SET reflection_date = $1, content = $2, mood = $3, tags = $4, updated_at = $5
		WHERE id = $6
	`

	tag, err := r.db.Exec(ctx, query,
		reflection.Date, reflection.Content, reflection.Mood, reflection.Tags,
		reflection.UpdatedAt, reflection.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update reflection: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a reflection
func (r *ReflectionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reflections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reflection: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// QuoteRepositoryImpl implements the QuoteRepository interface
type QuoteRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewQuoteRepository creates a new QuoteRepository
func NewQuoteRepository(db *pgxpool.Pool) domain.QuoteRepository {
	return &QuoteRepositoryImpl{db: db}
}

func scanQuote(row pgx.Row) (*domain.Quote, error) {
	quote := &domain.Quote{}
	err := row.Scan(
		&quote.ID,
		&quote.Text,
		&quote.Author,
		&quote.Source,
		&quote.Favorite,
		&quote.CreatedAt,
		&quote.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return quote, nil
}

// Create inserts a new quote
func (r *QuoteRepositoryImpl) Create(ctx context.Context, quote *domain.Quote) error {
	query := `
		INSERT INTO quotes (id, text, author, source, favorite, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		quote.ID, quote.Text, quote.Author, quote.Source, quote.Favorite,
		quote.CreatedAt, quote.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create quote: %w", err)
	}
	return nil
}

// GetByID retrieves a quote by ID
func (r *QuoteRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quote, error) {
	query := `
		SELECT id, text, author, source, favorite, created_at, updated_at
		FROM quotes WHERE id = $1
	`

	quote, err := scanQuote(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get quote by ID: %w", err)
	}
	return quote, nil
}

// List retrieves quotes, newest first
func (r *QuoteRepositoryImpl) List(ctx context.Context, filter domain.LifeOSFilter) ([]*domain.Quote, error) {
	query := `
		SELECT id, text, author, source, favorite, created_at, updated_at
		FROM quotes WHERE 1=1
	`
	args := []interface{}{}

	if filter.Q != "" {
		query += " AND (text ILIKE $1 OR author ILIKE $1)"
		args = append(args, "%"+filter.Q+"%")
	}
	query += " ORDER BY favorite DESC, created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotes: %w", err)
	}
	defer rows.Close()

	var quotes []*domain.Quote
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		quotes = append(quotes, quote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quotes: %w", err)
	}
	return quotes, nil
}

// Update rewrites an existing quote
func (r *QuoteRepositoryImpl) Update(ctx context.Context, quote *domain.Quote) error {
	query := `
		UPDATE quotes
		SET text = $1, author = $2, source = $3, favorite = $4, updated_at = $5
		WHERE id = $6
	`

	tag, err := r.db.Exec(ctx, query,
		quote.Text, quote.Author, quote.Source, quote.Favorite,
		quote.UpdatedAt, quote.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update quote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a quote
func (r *QuoteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete quote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
