package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dinoverse/internal/domain"
)

// TradeRepositoryImpl implements the TradeRepository interface
type TradeRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewTradeRepository creates a new TradeRepository
func NewTradeRepository(db *pgxpool.Pool) domain.TradeRepository {
	return &TradeRepositoryImpl{db: db}
}

const tradeColumns = `
	id, trade_date, instrument, direction, entry, stop, take_profit, size,
	result_r, result_pct, pnl, rule_checks, status, note, created_at, updated_at
`

func marshalRuleChecks(rc *domain.RuleChecks) ([]byte, error) {
	if rc == nil {
		return nil, nil
	}
	data, err := json.Marshal(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rule checks: %w", err)
	}
	return data, nil
}

func scanTrade(row pgx.Row) (*domain.Trade, error) {
	trade := &domain.Trade{}
	var checks []byte
	err := row.Scan(
		&trade.ID,
		&trade.Date,
		&trade.Instrument,
		&trade.Direction,
		&trade.Entry,
		&trade.Stop,
		&trade.TakeProfit,
		&trade.Size,
		&trade.ResultR,
		&trade.ResultPct,
		&trade.PnL,
		&checks,
		&trade.Status,
		&trade.Note,
		&trade.CreatedAt,
		&trade.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(checks) > 0 {
		rc := &domain.RuleChecks{}
		if err := json.Unmarshal(checks, rc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal rule checks: %w", err)
		}
		trade.RuleChecks = rc
	}
	return trade, nil
}

// Create inserts a new trade
func (r *TradeRepositoryImpl) Create(ctx context.Context, trade *domain.Trade) error {
	checks, err := marshalRuleChecks(trade.RuleChecks)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO trades (
			id, trade_date, instrument, direction, entry, stop, take_profit,
			size, result_r, result_pct, pnl, rule_checks, status, note,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err = r.db.Exec(ctx, query,
		trade.ID,
		trade.Date,
		trade.Instrument,
		trade.Direction,
		trade.Entry,
		trade.Stop,
		trade.TakeProfit,
		trade.Size,
		trade.ResultR,
		trade.ResultPct,
		trade.PnL,
		checks,
		trade.Status,
		trade.Note,
		trade.CreatedAt,
		trade.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create trade: %w", err)
	}

	return nil
}

// GetByID retrieves a trade by ID
func (r *TradeRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Trade, error) {
	query := `SELECT ` + tradeColumns + ` FROM trades WHERE id = $1`

	trade, err := scanTrade(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get trade by ID: %w", err)
	}
	return trade, nil
}

// List retrieves trades matching the filter, newest first
func (r *TradeRepositoryImpl) List(ctx context.Context, filter domain.TradeFilter) ([]*domain.Trade, error) {
	query := `SELECT ` + tradeColumns + ` FROM trades WHERE 1=1`
	args := []interface{}{}
	argn := 1

	if filter.From != nil {
		query += fmt.Sprintf(" AND trade_date >= $%d", argn)
		args = append(args, *filter.From)
		argn++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND trade_date < $%d", argn)
		args = append(args, *filter.To)
		argn++
	}
	if filter.Instrument != "" {
		query += fmt.Sprintf(" AND instrument = $%d", argn)
		args = append(args, filter.Instrument)
		argn++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argn)
		args = append(args, filter.Status)
		argn++
	}
	query += " ORDER BY trade_date DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades: %w", err)
	}
	defer rows.Close()

	var trades []*domain.Trade
	for rows.Next() {
		trade, err := scanTrade(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trade: %w", err)
		}
		trades = append(trades, trade)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trades: %w", err)
	}

	return trades, nil
}

// Update rewrites an existing trade
func (r *TradeRepositoryImpl) Update(ctx context.Context, trade *domain.Trade) error {
	checks, err := marshalRuleChecks(trade.RuleChecks)
	if err != nil {
		return err
	}

	query := `
		UPDATE trades
		SET trade_date = $1,
		    instrument = $2,
		    direction = $3,
		    entry = $4,
		    stop = $5,
		    take_profit = $6,
		    size = $7,
		    result_r = $8,
		    result_pct = $9,
		    pnl = $10,
		    rule_checks = $11,
		    status = $12,
		    note = $13,
		    updated_at = $14
		WHERE id = $15
	`

	tag, err := r.db.Exec(ctx, query,
		trade.Date,
		trade.Instrument,
		trade.Direction,
		trade.Entry,
		trade.Stop,
		trade.TakeProfit,
		trade.Size,
		trade.ResultR,
		trade.ResultPct,
		trade.PnL,
		checks,
		trade.Status,
		trade.Note,
		trade.UpdatedAt,
		trade.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trade: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete removes a trade
func (r *TradeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM trades WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trade: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
