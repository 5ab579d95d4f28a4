package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a single income or expense entry in the finance tracker
type Transaction struct {
	ID                 uuid.UUID       `json:"id"`
	Date               time.Time       `json:"date"`
	Type               string          `json:"type"`
	Category           string          `json:"category"`
	Source             string          `json:"source,omitempty"`
	Amount             decimal.Decimal `json:"amount"`
	Note               string          `json:"note,omitempty"`
	Tags               []string        `json:"tags,omitempty"`
	IsInvestmentInSelf bool            `json:"is_investment_in_self"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// Transaction type constants
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// TransactionFilter narrows a transaction listing
type TransactionFilter struct {
	// Month (1-12) and Year scope the listing to one calendar month.
	// Zero values mean "not filtered".
	Month    int
	Year     int
	Type     string
	Category string
}

// TransactionRepository defines the interface for finance entries
type TransactionRepository interface {
	Create(ctx context.Context, tx *Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]*Transaction, error)
	Update(ctx context.Context, tx *Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
}
