package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dinoverse/internal/domain"
)

type fakeTradeRepo struct {
	all       []*domain.Trade
	listCalls []domain.TradeFilter
}

func (f *fakeTradeRepo) Create(ctx context.Context, trade *domain.Trade) error { return nil }
func (f *fakeTradeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Trade, error) {
	return nil, nil
}

func (f *fakeTradeRepo) List(ctx context.Context, filter domain.TradeFilter) ([]*domain.Trade, error) {
	f.listCalls = append(f.listCalls, filter)
	if filter == (domain.TradeFilter{}) {
		return f.all, nil
	}

	var matched []*domain.Trade
	for _, t := range f.all {
		if filter.From != nil && t.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !t.Date.Before(*filter.To) {
			continue
		}
		matched = append(matched, t)
	}
	return matched, nil
}

func (f *fakeTradeRepo) Update(ctx context.Context, trade *domain.Trade) error { return nil }
func (f *fakeTradeRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }

func closedTrade(date time.Time, resultR float64) *domain.Trade {
	return &domain.Trade{
		ID:         uuid.New(),
		Date:       date,
		Instrument: "XAUUSD",
		Direction:  domain.DirectionLong,
		Status:     domain.TradeClosed,
		ResultR:    &resultR,
	}
}

func TestListWithStatsFilterNarrowsListingNotStats(t *testing.T) {
	old := closedTrade(time.Now().AddDate(0, -2, 0), -1)
	recent := closedTrade(time.Now().AddDate(0, 0, -1), 2)
	repo := &fakeTradeRepo{all: []*domain.Trade{old, recent}}
	svc := NewJournalService(repo)

	from := time.Now().AddDate(0, -1, 0)
	trades, summary, err := svc.ListWithStats(context.Background(), domain.TradeFilter{From: &from})
	require.NoError(t, err)

	// The listing honors the filter
	require.Len(t, trades, 1)
	assert.Equal(t, recent.ID, trades[0].ID)

	// The statistics cover the whole journal regardless of the filter
	assert.Equal(t, 2, summary.TotalTrades)
	assert.Equal(t, 2, summary.TotalClosed)
	assert.Equal(t, 1, summary.WinningTrades)
	assert.Equal(t, 1, summary.LosingTrades)
	assert.Equal(t, 50.0, summary.WinRate)

	// One filtered fetch plus one unfiltered fetch for the stats
	require.Len(t, repo.listCalls, 2)
	assert.Equal(t, domain.TradeFilter{}, repo.listCalls[1])
}

func TestListWithStatsEmptyFilterFetchesOnce(t *testing.T) {
	repo := &fakeTradeRepo{all: []*domain.Trade{closedTrade(time.Now(), 1)}}
	svc := NewJournalService(repo)

	trades, summary, err := svc.ListWithStats(context.Background(), domain.TradeFilter{})
	require.NoError(t, err)

	assert.Len(t, trades, 1)
	assert.Equal(t, 1, summary.TotalTrades)
	assert.Len(t, repo.listCalls, 1)
}

func TestStatsUsesFullJournal(t *testing.T) {
	repo := &fakeTradeRepo{all: []*domain.Trade{
		closedTrade(time.Now().AddDate(0, 0, -3), 1),
		closedTrade(time.Now().AddDate(0, 0, -2), 1),
	}}
	svc := NewJournalService(repo)

	summary, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalTrades)
	assert.Equal(t, 100.0, summary.WinRate)
}
