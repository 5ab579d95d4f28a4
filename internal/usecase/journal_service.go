package usecase

import (
	"context"
	"fmt"
	"time"

	"dinoverse/internal/domain"
	"dinoverse/internal/stats"
	"dinoverse/internal/utils"
)

// percentage outputs carry one decimal place
const statsPrecision = 1

// JournalService composes the trade repository with the statistics
// summarizer for the trading-journal endpoints.
type JournalService struct {
	tradeRepo domain.TradeRepository
}

// NewJournalService creates a new JournalService
func NewJournalService(tradeRepo domain.TradeRepository) *JournalService {
	return &JournalService{tradeRepo: tradeRepo}
}

// ListWithStats returns the trades matching the filter together with the
// journal statistics. The streak and this-week figures always come from
// the full journal: a date filter narrows the listing, not the history
// the discipline numbers are judged against.
func (s *JournalService) ListWithStats(ctx context.Context, filter domain.TradeFilter) ([]*domain.Trade, stats.TradingStats, error) {
	trades, err := s.tradeRepo.List(ctx, filter)
	if err != nil {
		return nil, stats.TradingStats{}, fmt.Errorf("failed to list trades: %w", err)
	}

	all := trades
	if filter != (domain.TradeFilter{}) {
		all, err = s.tradeRepo.List(ctx, domain.TradeFilter{})
		if err != nil {
			return nil, stats.TradingStats{}, fmt.Errorf("failed to list journal for stats: %w", err)
		}
	}

	loc := utils.GetLocation()
	summary := stats.SummarizeTrades(all, time.Now().In(loc), loc, statsPrecision)
	return trades, summary, nil
}

// Stats returns the journal statistics on their own
func (s *JournalService) Stats(ctx context.Context) (stats.TradingStats, error) {
	_, summary, err := s.ListWithStats(ctx, domain.TradeFilter{})
	return summary, err
}
