package stats

import (
	"github.com/shopspring/decimal"

	"dinoverse/internal/domain"
)

// FinanceSummary aggregates a window of transactions
type FinanceSummary struct {
	TotalIncome  decimal.Decimal            `json:"total_income"`
	TotalExpense decimal.Decimal            `json:"total_expense"`
	Net          decimal.Decimal            `json:"net"`
	ByCategory   map[string]decimal.Decimal `json:"by_category"`
}

// SummarizeTransactions computes income/expense totals and a per-category
// expense breakdown over the given transactions. The caller scopes the slice
// to the month/year window it cares about; this function sums whatever it is
// handed, as-is, with no clamping.
func SummarizeTransactions(txs []*domain.Transaction) FinanceSummary {
	summary := FinanceSummary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		ByCategory:   make(map[string]decimal.Decimal),
	}

	for _, tx := range txs {
		switch tx.Type {
		case domain.TransactionIncome:
			summary.TotalIncome = summary.TotalIncome.Add(tx.Amount)
		case domain.TransactionExpense:
			summary.TotalExpense = summary.TotalExpense.Add(tx.Amount)
			current, ok := summary.ByCategory[tx.Category]
			if !ok {
				current = decimal.Zero
			}
			summary.ByCategory[tx.Category] = current.Add(tx.Amount)
		}
	}

	summary.Net = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary
}
