package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RuleChecks records whether a trade honored each discipline rule.
// Emotional is a violation when true; the other three are violations when false.
type RuleChecks struct {
	FollowedPlan       bool `json:"followed_plan"`
	RespectedDailyLoss bool `json:"respected_daily_loss"`
	ValidSession       bool `json:"valid_session"`
	Emotional          bool `json:"emotional"`
}

// Compliant reports whether every rule check passed
func (rc RuleChecks) Compliant() bool {
	return rc.FollowedPlan && rc.RespectedDailyLoss && rc.ValidSession && !rc.Emotional
}

// Trade represents one journaled trade
type Trade struct {
	ID         uuid.UUID   `json:"id"`
	Date       time.Time   `json:"date"`
	Instrument string      `json:"instrument"`
	Direction  string      `json:"direction"`
	Entry      float64     `json:"entry"`
	Stop       float64     `json:"stop"`
	TakeProfit *float64    `json:"take_profit,omitempty"`
	Size       float64     `json:"size"`
	ResultR    *float64    `json:"result_r,omitempty"`
	ResultPct  *float64    `json:"result_pct,omitempty"`
	PnL        *float64    `json:"pnl,omitempty"`
	RuleChecks *RuleChecks `json:"rule_checks,omitempty"`
	Status     string      `json:"status"`
	Note       string      `json:"note,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Trade direction constants
const (
	DirectionLong  = "long"
	DirectionShort = "short"
)

// Trade status constants
const (
	TradeOpen      = "open"
	TradeClosed    = "closed"
	TradeBreakeven = "breakeven"
)

// IsClosed reports whether the trade counts toward win/loss accounting
func (t *Trade) IsClosed() bool {
	return t.Status == TradeClosed || t.Status == TradeBreakeven
}

// BreaksRules reports whether the trade has rule checks recorded and at
// least one of them violated. Trades without checks never break a streak.
func (t *Trade) BreaksRules() bool {
	return t.RuleChecks != nil && !t.RuleChecks.Compliant()
}

// TradeFilter narrows a trade listing
type TradeFilter struct {
	From       *time.Time
	To         *time.Time
	Instrument string
	Status     string
}

// TradeRepository defines the interface for journal entries
type TradeRepository interface {
	Create(ctx context.Context, trade *Trade) error
	GetByID(ctx context.Context, id uuid.UUID) (*Trade, error)
	List(ctx context.Context, filter TradeFilter) ([]*Trade, error)
	Update(ctx context.Context, trade *Trade) error
	Delete(ctx context.Context, id uuid.UUID) error
}
