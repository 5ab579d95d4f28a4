package dto

import (
	"fmt"
	"time"

	"dinoverse/internal/domain"
)

// RuleChecksRequest mirrors domain.RuleChecks on the wire
type RuleChecksRequest struct {
	FollowedPlan       bool `json:"followed_plan"`
	RespectedDailyLoss bool `json:"respected_daily_loss"`
	ValidSession       bool `json:"valid_session"`
	Emotional          bool `json:"emotional"`
}

// TradeRequest is the create/update payload for a journaled trade
type TradeRequest struct {
	Date       string             `json:"date" validate:"required,datetime=2006-01-02"`
	Instrument string             `json:"instrument" validate:"required"`
	Direction  string             `json:"direction" validate:"required,oneof=long short"`
	Entry      float64            `json:"entry" validate:"required"`
	Stop       float64            `json:"stop" validate:"required"`
	TakeProfit *float64           `json:"take_profit"`
	Size       float64            `json:"size" validate:"required,gt=0"`
	ResultR    *float64           `json:"result_r"`
	ResultPct  *float64           `json:"result_pct"`
	PnL        *float64           `json:"pnl"`
	RuleChecks *RuleChecksRequest `json:"rule_checks"`
	Status     string             `json:"status" validate:"required,oneof=open closed breakeven"`
	Note       string             `json:"note"`
}

// Apply copies the payload onto a trade
func (r *TradeRequest) Apply(trade *domain.Trade) error {
	date, err := time.Parse(DateFormat, r.Date)
	if err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}

	trade.Date = date
	trade.Instrument = r.Instrument
	trade.Direction = r.Direction
	trade.Entry = r.Entry
	trade.Stop = r.Stop
	trade.TakeProfit = r.TakeProfit
	trade.Size = r.Size
	trade.ResultR = r.ResultR
	trade.ResultPct = r.ResultPct
	trade.PnL = r.PnL
	trade.Status = r.Status
	trade.Note = r.Note

	trade.RuleChecks = nil
	if r.RuleChecks != nil {
		trade.RuleChecks = &domain.RuleChecks{
			FollowedPlan:       r.RuleChecks.FollowedPlan,
			RespectedDailyLoss: r.RuleChecks.RespectedDailyLoss,
			ValidSession:       r.RuleChecks.ValidSession,
			Emotional:          r.RuleChecks.Emotional,
		}
	}
	return nil
}
