package stats

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dinoverse/internal/domain"
)

func tx(txType, category string, amount float64) *domain.Transaction {
	return &domain.Transaction{
		Date:     time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Type:     txType,
		Category: category,
		Amount:   decimal.NewFromFloat(amount),
	}
}

func TestSummarizeTransactions_Empty(t *testing.T) {
	s := SummarizeTransactions(nil)

	assert.True(t, s.TotalIncome.IsZero())
	assert.True(t, s.TotalExpense.IsZero())
	assert.True(t, s.Net.IsZero())
	assert.Empty(t, s.ByCategory)
	assert.NotNil(t, s.ByCategory)
}

func TestSummarizeTransactions_Basic(t *testing.T) {
	s := SummarizeTransactions([]*domain.Transaction{
		tx(domain.TransactionIncome, "salary", 1000),
		tx(domain.TransactionExpense, "tools", 300),
	})

	assert.True(t, s.TotalIncome.Equal(decimal.NewFromInt(1000)), "income: %s", s.TotalIncome)
	assert.True(t, s.TotalExpense.Equal(decimal.NewFromInt(300)), "expense: %s", s.TotalExpense)
	assert.True(t, s.Net.Equal(decimal.NewFromInt(700)), "net: %s", s.Net)
	require.Len(t, s.ByCategory, 1)
	assert.True(t, s.ByCategory["tools"].Equal(decimal.NewFromInt(300)))
}

func TestSummarizeTransactions_NetIdentity(t *testing.T) {
	sets := [][]*domain.Transaction{
		{tx(domain.TransactionIncome, "salary", 5000.50)},
		{
			tx(domain.TransactionIncome, "freelance", 1200.25),
			tx(domain.TransactionExpense, "rent", 800),
			tx(domain.TransactionExpense, "food", 150.75),
		},
		{
			tx(domain.TransactionExpense, "rent", 800),
			tx(domain.TransactionExpense, "rent", 200),
		},
	}

	for _, set := range sets {
		s := SummarizeTransactions(set)
		assert.True(t, s.TotalIncome.Sub(s.TotalExpense).Equal(s.Net))
	}
}

func TestSummarizeTransactions_CategoriesAccumulate(t *testing.T) {
	s := SummarizeTransactions([]*domain.Transaction{
		tx(domain.TransactionExpense, "tools", 100),
		tx(domain.TransactionExpense, "tools", 50),
		tx(domain.TransactionExpense, "hosting", 25),
		// Income must never land in the expense breakdown
		tx(domain.TransactionIncome, "tools", 999),
	})

	require.Len(t, s.ByCategory, 2)
	assert.True(t, s.ByCategory["tools"].Equal(decimal.NewFromInt(150)))
	assert.True(t, s.ByCategory["hosting"].Equal(decimal.NewFromInt(25)))
}

func TestSummarizeTransactions_NoClamping(t *testing.T) {
	// Negative amounts are rejected at validation time; if one slips
	// through it is summed as-is.
	s := SummarizeTransactions([]*domain.Transaction{
		tx(domain.TransactionExpense, "refund", -50),
		tx(domain.TransactionExpense, "tools", 100),
	})

	assert.True(t, s.TotalExpense.Equal(decimal.NewFromInt(50)))
	assert.True(t, s.Net.Equal(decimal.NewFromInt(-50)))
}
