// Package analytics turns a raw transaction/goal snapshot into aggregate
// summaries, month-bucketed trends, a financial-health score and ranked
// suggestions. Every operation is a pure function over the snapshot it is
// handed; nothing here performs I/O or keeps state between calls.
package analytics

import (
	"math"

	"github.com/fin-tools/finsight/pkg/models/domain"
)

// Summarize reduces a transaction snapshot into income/expense totals and
// per-category expense totals. Malformed records degrade instead of
// failing: anything not typed "income" counts as expense, a missing
// category lands in "other", and a non-finite amount counts as zero.
func Summarize(txs []domain.Transaction) domain.Summary {
	var income, expenses float64
	byCategory := make(map[string]float64)
	var order []string

	for _, tx := range txs {
		amount := tx.Amount
		if math.IsNaN(amount) || math.IsInf(amount, 0) {
			amount = 0
		}
		if tx.Type == domain.TypeIncome {
			income += amount
			continue
		}
		expenses += amount
		category := tx.Category
		if category == "" {
			category = domain.CategoryOther
		}
		if _, seen := byCategory[category]; !seen {
			order = append(order, category)
		}
		byCategory[category] += amount
	}

	for category, total := range byCategory {
		byCategory[category] = round2(total)
	}

	return domain.Summary{
		MonthlyIncome:   round2(income),
		MonthlyExpenses: round2(expenses),
		ByCategory:      byCategory,
		CategoryOrder:   order,
		// Placeholder policy: twice the monthly expenses, not a stored balance.
		EmergencyFund: round2(2 * expenses),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
