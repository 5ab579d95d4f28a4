package dto

import (
	"fmt"
	"time"

	"dinoverse/internal/domain"
)

// GoalRequest is the create/update payload for a goal
type GoalRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	TargetDate  string `json:"target_date" validate:"omitempty,datetime=2006-01-02"`
	Progress    int    `json:"progress" validate:"gte=0,lte=100"`
	Status      string `json:"status" validate:"required,oneof=active done dropped"`
}

// Apply copies the payload onto a goal
func (r *GoalRequest) Apply(goal *domain.Goal) error {
	goal.Title = r.Title
	goal.Description = r.Description
	goal.Category = r.Category
	goal.Progress = r.Progress
	goal.Status = r.Status

	goal.TargetDate = nil
	if r.TargetDate != "" {
		date, err := time.Parse(DateFormat, r.TargetDate)
		if err != nil {
			return fmt.Errorf("invalid target_date: %w", err)
		}
		goal.TargetDate = &date
	}
	return nil
}

// RuleRequest is the create/update payload for a discipline rule
type RuleRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Order       int    `json:"order"`
	Active      *bool  `json:"active"`
}

// Apply copies the payload onto a rule
func (r *RuleRequest) Apply(rule *domain.Rule) {
	rule.Title = r.Title
	rule.Description = r.Description
	rule.Category = r.Category
	rule.Order = r.Order
	rule.Active = true
	if r.Active != nil {
		rule.Active = *r.Active
	}
}

// ReflectionRequest is the create/update payload for a reflection
type ReflectionRequest struct {
	Date    string   `json:"date" validate:"required,datetime=2006-01-02"`
	Content string   `json:"content" validate:"required"`
	Mood    string   `json:"mood"`
	Tags    []string `json:"tags"`
}

// Apply copies the payload onto a reflection
func (r *ReflectionRequest) Apply(reflection *domain.Reflection) error {
	date, err := time.Parse(DateFormat, r.Date)
	if err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}

	reflection.Date = date
	reflection.Content = r.Content
	reflection.Mood = r.Mood
	reflection.Tags = r.Tags
	return nil
}

// QuoteRequest is the create/update payload for a quote
type QuoteRequest struct {
	Text     string `json:"text" validate:"required"`
	Author   string `json:"author"`
	Source   string `json:"source"`
	Favorite bool   `json:"favorite"`
}

// Apply copies the payload onto a quote
func (r *QuoteRequest) Apply(quote *domain.Quote) {
	quote.Text = r.Text
	quote.Author = r.Author
	quote.Source = r.Source
	quote.Favorite = r.Favorite
}
