package analytics

import (
	"sort"

	"github.com/fin-tools/finsight/pkg/models/domain"
)

// monthKey derives the YYYY-MM bucket from a transaction date. Dates
// shorter than seven characters yield an empty key.
func monthKey(date string) string {
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}

// inRange reports whether a month key satisfies the inclusive bounds.
// Keys are zero-padded YYYY-MM, so lexicographic comparison is
// chronological. An empty key never satisfies a bounded range, but with
// no bounds at all every transaction is retained.
func inRange(month, start, end string) bool {
	if start == "" && end == "" {
		return true
	}
	if month == "" {
		return false
	}
	if start != "" && month < start {
		return false
	}
	if end != "" && month > end {
		return false
	}
	return true
}

// MonthlyTrend buckets income and expense totals per month, optionally
// restricted to the inclusive [start, end] month range. Months come back
// ascending with the two series aligned to them.
func MonthlyTrend(txs []domain.Transaction, start, end string) domain.TrendSeries {
	type bucket struct {
		income   float64
		expenses float64
	}
	buckets := make(map[string]*bucket)

	for _, tx := range txs {
		month := monthKey(tx.Date)
		if !inRange(month, start, end) {
			continue
		}
		b := buckets[month]
		if b == nil {
			b = &bucket{}
			buckets[month] = b
		}
		if tx.Type == domain.TypeIncome {
			b.income += tx.Amount
		} else {
			b.expenses += tx.Amount
		}
	}

	months := sortedKeys(buckets)
	series := domain.TrendSeries{
		Months:   months,
		Income:   make([]float64, len(months)),
		Expenses: make([]float64, len(months)),
	}
	for i, month := range months {
		series.Income[i] = round2(buckets[month].income)
		series.Expenses[i] = round2(buckets[month].expenses)
	}
	return series
}

// CategoryMatrix builds a category x month matrix of expense totals.
// Income transactions never contribute a category; a transaction whose
// month falls outside the retained set is skipped.
func CategoryMatrix(txs []domain.Transaction, start, end string) domain.CategoryMatrix {
	monthSet := make(map[string]struct{})
	categorySet := make(map[string]struct{})

	for _, tx := range txs {
		month := monthKey(tx.Date)
		if !inRange(month, start, end) {
			continue
		}
		monthSet[month] = struct{}{}
		if tx.Type != domain.TypeIncome {
			categorySet[expenseCategory(tx)] = struct{}{}
		}
	}

	months := sortedKeys(monthSet)
	index := make(map[string]int, len(months))
	for i, month := range months {
		index[month] = i
	}

	categories := make(map[string][]float64, len(categorySet))
	for category := range categorySet {
		categories[category] = make([]float64, len(months))
	}

	for _, tx := range txs {
		if tx.Type == domain.TypeIncome {
			continue
		}
		i, ok := index[monthKey(tx.Date)]
		if !ok {
			continue
		}
		categories[expenseCategory(tx)][i] += tx.Amount
	}

	for _, series := range categories {
		for i := range series {
			series[i] = round2(series[i])
		}
	}

	return domain.CategoryMatrix{Months: months, Categories: categories}
}

func expenseCategory(tx domain.Transaction) string {
	if tx.Category == "" {
		return domain.CategoryOther
	}
	return tx.Category
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
