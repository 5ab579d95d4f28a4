package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"dinoverse/internal/domain"
)

// DateFormat is the wire format for calendar dates
const DateFormat = "2006-01-02"

// TransactionRequest is the create/update payload for a finance entry
type TransactionRequest struct {
	Date               string          `json:"date" validate:"required,datetime=2006-01-02"`
	Type               string          `json:"type" validate:"required,oneof=income expense"`
	Category           string          `json:"category" validate:"required"`
	Source             string          `json:"source"`
	Amount             decimal.Decimal `json:"amount"`
	Note               string          `json:"note"`
	Tags               []string        `json:"tags"`
	IsInvestmentInSelf bool            `json:"is_investment_in_self"`
}

// Apply copies the payload onto a transaction. The amount must not be
// negative; zero is rejected too since a zero-amount entry is meaningless.
func (r *TransactionRequest) Apply(tx *domain.Transaction) error {
	date, err := time.Parse(DateFormat, r.Date)
	if err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}
	if r.Amount.Sign() <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}

	tx.Date = date
	tx.Type = r.Type
	tx.Category = r.Category
	tx.Source = r.Source
	tx.Amount = r.Amount
	tx.Note = r.Note
	tx.Tags = r.Tags
	tx.IsInvestmentInSelf = r.IsInvestmentInSelf
	return nil
}
