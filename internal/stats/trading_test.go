package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dinoverse/internal/domain"
)

func fp(v float64) *float64 { return &v }

func allPassed() *domain.RuleChecks {
	return &domain.RuleChecks{
		FollowedPlan:       true,
		RespectedDailyLoss: true,
		ValidSession:       true,
		Emotional:          false,
	}
}

// now is a Wednesday; the ISO week runs Monday 2026-08-24 to Sunday 2026-08-30
var statsNow = time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

func closedTrade(date time.Time, resultR *float64, checks *domain.RuleChecks) *domain.Trade {
	return &domain.Trade{
		Date:       date,
		Instrument: "XAUUSD",
		Direction:  domain.DirectionLong,
		Status:     domain.TradeClosed,
		ResultR:    resultR,
		RuleChecks: checks,
	}
}

func TestSummarizeTrades_Empty(t *testing.T) {
	s := SummarizeTrades(nil, statsNow, time.UTC, 1)

	assert.Zero(t, s.TotalTrades)
	assert.Zero(t, s.WinRate, "win rate must be 0, not NaN")
	assert.Zero(t, s.RuleComplianceRate)
	assert.Zero(t, s.WinRateWhenRulesRespected)
	assert.Zero(t, s.DaysWithoutRuleBreak)
}

func TestSummarizeTrades_ZeroResultCountsClosedOnly(t *testing.T) {
	s := SummarizeTrades([]*domain.Trade{
		closedTrade(statsNow, fp(0), nil),
	}, statsNow, time.UTC, 1)

	assert.Equal(t, 1, s.TotalClosed)
	assert.Zero(t, s.WinningTrades)
	assert.Zero(t, s.LosingTrades)
	assert.Zero(t, s.WinRate)
}

func TestSummarizeTrades_OpenExcludedFromWinLoss(t *testing.T) {
	open := closedTrade(statsNow, fp(2), nil)
	open.Status = domain.TradeOpen

	s := SummarizeTrades([]*domain.Trade{
		open,
		closedTrade(statsNow, fp(1), nil),
	}, statsNow, time.UTC, 1)

	assert.Equal(t, 2, s.TotalTrades)
	assert.Equal(t, 1, s.TotalClosed)
	assert.Equal(t, 1, s.WinningTrades)
	assert.Equal(t, float64(100), s.WinRate)
}

func TestSummarizeTrades_PnLFallbackClassification(t *testing.T) {
	winByPnl := closedTrade(statsNow, nil, nil)
	winByPnl.PnL = fp(120)
	lossByPnl := closedTrade(statsNow, nil, nil)
	lossByPnl.PnL = fp(-40)
	noResult := closedTrade(statsNow, nil, nil)

	s := SummarizeTrades([]*domain.Trade{winByPnl, lossByPnl, noResult}, statsNow, time.UTC, 1)

	assert.Equal(t, 3, s.TotalClosed)
	assert.Equal(t, 1, s.WinningTrades)
	assert.Equal(t, 1, s.LosingTrades)
	assert.Equal(t, float64(50), s.WinRate)
	assert.InDelta(t, 80, s.TotalPnL, 1e-9)
	assert.Zero(t, s.AvgR, "trades without resultR are excluded from avgR entirely")
}

func TestSummarizeTrades_AvgRSkipsUndefined(t *testing.T) {
	withPnlOnly := closedTrade(statsNow, nil, nil)
	withPnlOnly.PnL = fp(500)

	s := SummarizeTrades([]*domain.Trade{
		closedTrade(statsNow, fp(2), nil),
		closedTrade(statsNow, fp(-1), nil),
		withPnlOnly,
	}, statsNow, time.UTC, 1)

	assert.InDelta(t, 0.5, s.AvgR, 1e-9)
}

func TestSummarizeTrades_RuleCompliance(t *testing.T) {
	emotional := allPassed()
	emotional.Emotional = true

	s := SummarizeTrades([]*domain.Trade{
		closedTrade(statsNow, fp(1), allPassed()),
		closedTrade(statsNow, fp(1), emotional),
	}, statsNow, time.UTC, 1)

	assert.Equal(t, float64(50), s.RuleComplianceRate,
		"a single emotional trade drops compliance below 100")
}

func TestSummarizeTrades_WinRateWhenRulesRespected(t *testing.T) {
	noPlan := allPassed()
	noPlan.FollowedPlan = false

	// 2 compliant wins, 1 non-compliant loss: the compliant-only win rate
	// must be 100, not 66.7
	s := SummarizeTrades([]*domain.Trade{
		closedTrade(statsNow, fp(1.2), allPassed()),
		closedTrade(statsNow, fp(0.8), allPassed()),
		closedTrade(statsNow, fp(-1), noPlan),
	}, statsNow, time.UTC, 1)

	assert.Equal(t, float64(100), s.WinRateWhenRulesRespected)
	assert.InDelta(t, 66.7, s.WinRate, 0.05)
}

func TestSummarizeTrades_SpecScenario(t *testing.T) {
	broken := allPassed()
	broken.FollowedPlan = false

	s := SummarizeTrades([]*domain.Trade{
		closedTrade(statsNow, fp(1.5), allPassed()),
		closedTrade(statsNow, fp(-1), broken),
	}, statsNow, time.UTC, 1)

	assert.Equal(t, float64(50), s.WinRate)
	assert.Equal(t, float64(50), s.RuleComplianceRate)
	assert.Equal(t, float64(100), s.WinRateWhenRulesRespected)
}

func TestSummarizeTrades_WeekWindow(t *testing.T) {
	broken := allPassed()
	broken.Emotional = true

	s := SummarizeTrades([]*domain.Trade{
		closedTrade(time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC), fp(1), allPassed()), // Monday
		closedTrade(time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC), fp(-1), broken),    // Tuesday
		closedTrade(time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC), fp(1), broken),     // previous Sunday
	}, statsNow, time.UTC, 1)

	assert.Equal(t, 2, s.TradesThisWeek)
	assert.Equal(t, 1, s.RulesBrokenThisWeek)
}

func TestSummarizeTrades_StreakStopsAtViolation(t *testing.T) {
	broken := allPassed()
	broken.RespectedDailyLoss = false

	s := SummarizeTrades([]*domain.Trade{
		closedTrade(statsNow.AddDate(0, 0, -5), fp(1), broken),
		closedTrade(statsNow.AddDate(0, 0, -2), fp(1), allPassed()),
	}, statsNow, time.UTC, 1)

	// Today, yesterday, ... back to the violation five days ago exclusive
	assert.Equal(t, 5, s.DaysWithoutRuleBreak)
}

func TestSummarizeTrades_StreakBoundedByEarliestTrade(t *testing.T) {
	s := SummarizeTrades([]*domain.Trade{
		closedTrade(statsNow.AddDate(0, 0, -3), fp(1), allPassed()),
		closedTrade(statsNow.AddDate(0, 0, -1), fp(-1), allPassed()),
	}, statsNow, time.UTC, 1)

	// No violation anywhere: earliest trade 3 days ago, today inclusive
	assert.Equal(t, 4, s.DaysWithoutRuleBreak)
}

func TestSummarizeTrades_StreakZeroWhenTodayBroken(t *testing.T) {
	broken := allPassed()
	broken.ValidSession = false

	s := SummarizeTrades([]*domain.Trade{
		closedTrade(statsNow, fp(-1), broken),
	}, statsNow, time.UTC, 1)

	assert.Zero(t, s.DaysWithoutRuleBreak)
}

func TestSummarizeTrades_Precision(t *testing.T) {
	s := SummarizeTrades([]*domain.Trade{
		closedTrade(statsNow, fp(1), nil),
		closedTrade(statsNow, fp(1), nil),
		closedTrade(statsNow, fp(-1), nil),
	}, statsNow, time.UTC, 2)

	assert.Equal(t, 66.67, s.WinRate)
}
