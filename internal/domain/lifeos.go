package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Goal represents a tracked personal goal
type Goal struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	Progress    int        `json:"progress"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Goal status constants
const (
	GoalActive  = "active"
	GoalDone    = "done"
	GoalDropped = "dropped"
)

// Rule represents a personal discipline rule
type Rule struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Order       int       `json:"order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Reflection represents a dated journal reflection
type Reflection struct {
	ID        uuid.UUID `json:"id"`
	Date      time.Time `json:"date"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Quote represents a saved quote
type Quote struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author,omitempty"`
	Source    string    `json:"source,omitempty"`
	Favorite  bool      `json:"favorite"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LifeOSFilter narrows Life OS listings
type LifeOSFilter struct {
	Q        string
	Status   string
	Category string
	From     *time.Time
	To       *time.Time
}

// GoalRepository defines the interface for goals
type GoalRepository interface {
	Create(ctx context.Context, goal *Goal) error
	GetByID(ctx context.Context, id uuid.UUID) (*Goal, error)
	List(ctx context.Context, filter LifeOSFilter) ([]*Goal, error)
	Update(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RuleRepository defines the interface for discipline rules
type RuleRepository interface {
	Create(ctx context.Context, rule *Rule) error
	GetByID(ctx context.Context, id uuid.UUID) (*Rule, error)
	List(ctx context.Context, filter LifeOSFilter) ([]*Rule, error)
	Update(ctx context.Context, rule *Rule) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReflectionRepository defines the interface for reflections
type ReflectionRepository interface {
	Create(ctx context.Context, r *Reflection) error
	GetByID(ctx context.Context, id uuid.UUID) (*Reflection, error)
	List(ctx context.Context, filter LifeOSFilter) ([]*Reflection, error)
	Update(ctx context.Context, r *Reflection) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// QuoteRepository defines the interface for quotes
type QuoteRepository interface {
	Create(ctx context.Context, q *Quote) error
	GetByID(ctx context.Context, id uuid.UUID) (*Quote, error)
	List(ctx context.Context, filter LifeOSFilter) ([]*Quote, error)
	Update(ctx context.Context, q *Quote) error
	Delete(ctx context.Context, id uuid.UUID) error
}
