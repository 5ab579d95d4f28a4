package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"dinoverse/internal/domain"
	"dinoverse/internal/utils"
)

// TransactionRepositoryImpl implements the TransactionRepository interface
type TransactionRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db *pgxpool.Pool) domain.TransactionRepository {
	return &TransactionRepositoryImpl{db: db}
}

const transactionColumns = `
	id, tx_date, tx_type, category, source, amount::text, note, tags,
	is_investment_in_self, created_at, updated_at
`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	tx := &domain.Transaction{}
	var amount string
	err := row.Scan(
		&tx.ID,
		&tx.Date,
		&tx.Type,
		&tx.Category,
		&tx.Source,
		&amount,
		&tx.Note,
		&tx.Tags,
		&tx.IsInvestmentInSelf,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	tx.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid stored amount %q: %w", amount, err)
	}
	return tx, nil
}

// Create inserts a new transaction
func (r *TransactionRepositoryImpl) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `
		INSERT INTO transactions (
			id, tx_date, tx_type, category, source, amount, note, tags,
			is_investment_in_self, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		tx.ID,
		tx.Date,
		tx.Type,
		tx.Category,
		tx.Source,
		tx.Amount.String(),
		tx.Note,
		tx.Tags,
		tx.IsInvestmentInSelf,
		tx.CreatedAt,
		tx.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// GetByID retrieves a transaction by ID
func (r *TransactionRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	tx, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction by ID: %w", err)
	}
	return tx, nil
}

// List retrieves transactions matching the filter, newest first
func (r *TransactionRepositoryImpl) List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	args := []interface{}{}
	argn := 1

	if filter.Year != 0 && filter.Month != 0 {
		// Range predicate so the tx_date index serves the common month
		// view; EXTRACT would force a full scan.
		start, end := utils.MonthBounds(filter.Year, time.Month(filter.Month), time.UTC)
		query += fmt.Sprintf(" AND tx_date >= $%d AND tx_date < $%d", argn, argn+1)
		args = append(args, start, end)
		argn += 2
	} else if filter.Year != 0 {
		query += fmt.Sprintf(" AND EXTRACT(YEAR FROM tx_date) = $%d", argn)
		args = append(args, filter.Year)
		argn++
	} else if filter.Month != 0 {
		query += fmt.Sprintf(" AND EXTRACT(MONTH FROM tx_date) = $%d", argn)
		args = append(args, filter.Month)
		argn++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND tx_type = $%d", argn)
		args = append(args, filter.Type)
		argn++
	}
	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argn)
		args = append(args, filter.Category)
		argn++
	}
	query += " ORDER BY tx_date DESC, created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txs []*domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return txs, nil
}

// Update rewrites an existing transaction
func (r *TransactionRepositoryImpl) Update(ctx context.Context, tx *domain.Transaction) error {
	query := `
		UPDATE transactions
		SET tx_date = $1,
		    tx_type = $2,
		    category = $3,
		    source = $4,
		    amount = $5,
		    note = $6,
		    tags = $7,
		    is_investment_in_self = $8,
		    updated_at = $9
		WHERE id = $10
	`

	tag, err := r.db.Exec(ctx, query,
		tx.Date,
		tx.Type,
		tx.Category,
		tx.Source,
		tx.Amount.String(),
		tx.Note,
		tx.Tags,
		tx.IsInvestmentInSelf,
		tx.UpdatedAt,
		tx.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete removes a transaction
func (r *TransactionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
