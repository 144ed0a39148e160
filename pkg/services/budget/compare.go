// Package budget lines up planned budgets against actual spending.
package budget

import (
	"sort"

	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/fin-tools/finsight/pkg/services/analytics"
)

// Compare builds a per-category budget-vs-actual comparison over the
// inclusive [start, end] month range. The month axis is the union of
// retained budget months and retained expense months; actuals follow the
// same bucketing rules as the trend builders.
func Compare(
	budgets []domain.Budget,
	txs []domain.Transaction,
	start, end string,
) domain.BudgetComparison {
	matrix := analytics.CategoryMatrix(txs, start, end)

	monthSet := make(map[string]struct{}, len(matrix.Months))
	for _, month := range matrix.Months {
		monthSet[month] = struct{}{}
	}
	categorySet := make(map[string]struct{}, len(matrix.Categories))
	for category := range matrix.Categories {
		categorySet[category] = struct{}{}
	}

	var retained []domain.Budget
	for _, b := range budgets {
		if !analytics.InMonthRange(b.Month, start, end) {
			continue
		}
		retained = append(retained, b)
		monthSet[b.Month] = struct{}{}
		categorySet[b.Category] = struct{}{}
	}

	months := make([]string, 0, len(monthSet))
	for month := range monthSet {
		months = append(months, month)
	}
	sort.Strings(months)
	index := make(map[string]int, len(months))
	for i, month := range months {
		index[month] = i
	}

	categories := make([]string, 0, len(categorySet))
	for category := range categorySet {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	data := make(map[string]domain.BudgetActual, len(categories))
	for _, category := range categories {
		series := domain.BudgetActual{
			Budget: make([]float64, len(months)),
			Actual: make([]float64, len(months)),
		}
		for i, month := range matrix.Months {
			if actual := matrix.Categories[category]; actual != nil {
				series.Actual[index[month]] = actual[i]
			}
		}
		data[category] = series
	}

	for _, b := range retained {
		data[b.Category].Budget[index[b.Month]] += b.Amount
	}

	return domain.BudgetComparison{
		Months:     months,
		Categories: categories,
		Data:       data,
	}
}
