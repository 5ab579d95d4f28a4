package stats

import (
	"math"
	"time"

	"dinoverse/internal/domain"
	"dinoverse/internal/utils"
)

// TradingStats aggregates a trading journal
type TradingStats struct {
	TotalTrades               int     `json:"total_trades"`
	TotalClosed               int     `json:"total_closed"`
	WinningTrades             int     `json:"winning_trades"`
	LosingTrades              int     `json:"losing_trades"`
	WinRate                   float64 `json:"win_rate"`
	AvgR                      float64 `json:"avg_r"`
	RuleComplianceRate        float64 `json:"rule_compliance_rate"`
	WinRateWhenRulesRespected float64 `json:"win_rate_when_rules_respected"`
	DaysWithoutRuleBreak      int     `json:"days_without_rule_break"`
	TradesThisWeek            int     `json:"trades_this_week"`
	RulesBrokenThisWeek       int     `json:"rules_broken_this_week"`
	TotalPnL                  float64 `json:"total_pnl"`
}

// outcome classifies a closed trade by resultR sign, falling back to pnl.
// A trade with neither field, or with a value of exactly zero, is neither a
// win nor a loss; it still counts toward TotalClosed.
func outcome(t *domain.Trade) (win, loss bool) {
	switch {
	case t.ResultR != nil:
		return *t.ResultR > 0, *t.ResultR < 0
	case t.PnL != nil:
		return *t.PnL > 0, *t.PnL < 0
	}
	return false, false
}

// SummarizeTrades computes journal statistics over the given trades. The
// "today" and "this week" figures are anchored at now in loc; percentage
// outputs are rounded to precision decimal places and a zero denominator
// always yields 0 rather than NaN.
func SummarizeTrades(trades []*domain.Trade, now time.Time, loc *time.Location, precision int) TradingStats {
	var s TradingStats
	s.TotalTrades = len(trades)

	weekStart, weekEnd := utils.WeekBounds(now, loc)

	var (
		sumR        float64
		rCount      int
		checked     int
		compliant   int
		compWins    int
		compLosses  int
		earliestDay time.Time
		brokenDays  = make(map[time.Time]bool)
	)

	for _, t := range trades {
		if t.IsClosed() {
			s.TotalClosed++
			win, loss := outcome(t)
			if win {
				s.WinningTrades++
			}
			if loss {
				s.LosingTrades++
			}
			if t.RuleChecks != nil && t.RuleChecks.Compliant() {
				if win {
					compWins++
				}
				if loss {
					compLosses++
				}
			}
		}

		if t.ResultR != nil {
			sumR += *t.ResultR
			rCount++
		}
		if t.PnL != nil {
			s.TotalPnL += *t.PnL
		}

		if t.RuleChecks != nil {
			checked++
			if t.RuleChecks.Compliant() {
				compliant++
			}
		}

		day := utils.StartOfDay(t.Date, loc)
		if earliestDay.IsZero() || day.Before(earliestDay) {
			earliestDay = day
		}
		if t.BreaksRules() {
			brokenDays[day] = true
		}

		tradeDate := t.Date.In(loc)
		if !tradeDate.Before(weekStart) && tradeDate.Before(weekEnd) {
			s.TradesThisWeek++
			if t.BreaksRules() {
				s.RulesBrokenThisWeek++
			}
		}
	}

	s.WinRate = roundTo(percentage(s.WinningTrades, s.WinningTrades+s.LosingTrades), precision)
	s.RuleComplianceRate = roundTo(percentage(compliant, checked), precision)
	s.WinRateWhenRulesRespected = roundTo(percentage(compWins, compWins+compLosses), precision)

	if rCount > 0 {
		s.AvgR = roundTo(sumR/float64(rCount), precision)
	}

	// Walk backward from today until a day with a rule-breaking trade, or
	// past the earliest journaled day.
	if !earliestDay.IsZero() {
		for day := utils.StartOfDay(now, loc); !day.Before(earliestDay); day = day.AddDate(0, 0, -1) {
			if brokenDays[day] {
				break
			}
			s.DaysWithoutRuleBreak++
		}
	}

	return s
}

// percentage returns part/total*100, or 0 when total is 0
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func roundTo(v float64, places int) float64 {
	if places < 0 {
		places = 0
	}
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
