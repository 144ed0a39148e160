package analytics

import (
	"testing"

	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trendFixture() []domain.Transaction {
	return []domain.Transaction{
		{Date: "2025-10-05", Amount: 200, Type: "expense", Category: "food"},
		{Date: "2025-09-01", Amount: 1000, Type: "income", Category: "salary"},
		{Date: "2025-09-15", Amount: 300, Type: "expense", Category: "food"},
		{Date: "2025-10-01", Amount: 1200, Type: "income", Category: "salary"},
		{Date: "2025-09-20", Amount: 100, Type: "expense", Category: "transport"},
	}
}

func TestMonthlyTrend(t *testing.T) {
	t.Run("buckets per month in ascending order", func(t *testing.T) {
		trend := MonthlyTrend(trendFixture(), "", "")

		require.Equal(t, []string{"2025-09", "2025-10"}, trend.Months)
		assert.Equal(t, []float64{1000, 1200}, trend.Income)
		assert.Equal(t, []float64{400, 200}, trend.Expenses)
	})

	t.Run("matches summarize when re-aggregated", func(t *testing.T) {
		txs := trendFixture()
		summary := Summarize(txs)
		trend := MonthlyTrend(txs, "", "")

		var income, expenses float64
		for i := range trend.Months {
			income += trend.Income[i]
			expenses += trend.Expenses[i]
		}
		assert.InDelta(t, summary.MonthlyIncome, income, 0.001)
		assert.InDelta(t, summary.MonthlyExpenses, expenses, 0.001)
	})

	t.Run("inclusive range filter", func(t *testing.T) {
		trend := MonthlyTrend(trendFixture(), "2025-10", "2025-10")

		require.Equal(t, []string{"2025-10"}, trend.Months)
		assert.Equal(t, []float64{1200}, trend.Income)
		assert.Equal(t, []float64{200}, trend.Expenses)
	})

	t.Run("later start yields a subset of months", func(t *testing.T) {
		wide := MonthlyTrend(trendFixture(), "2025-09", "")
		narrow := MonthlyTrend(trendFixture(), "2025-10", "")

		for _, month := range narrow.Months {
			assert.Contains(t, wide.Months, month)
		}
	})

	t.Run("inverted range yields no months", func(t *testing.T) {
		trend := MonthlyTrend(trendFixture(), "2025-10", "2025-09")
		assert.Empty(t, trend.Months)
	})

	t.Run("short date buckets under empty key without range", func(t *testing.T) {
		txs := []domain.Transaction{
			{Date: "", Amount: 100, Type: "expense", Category: "food"},
			{Date: "2025-09-01", Amount: 50, Type: "expense", Category: "food"},
		}

		unbounded := MonthlyTrend(txs, "", "")
		require.Equal(t, []string{"", "2025-09"}, unbounded.Months)
		assert.Equal(t, []float64{100, 50}, unbounded.Expenses)

		// any bound excludes the empty key
		bounded := MonthlyTrend(txs, "2025-01", "")
		require.Equal(t, []string{"2025-09"}, bounded.Months)
	})

	t.Run("empty input yields empty series", func(t *testing.T) {
		trend := MonthlyTrend(nil, "", "")
		assert.Empty(t, trend.Months)
		assert.Empty(t, trend.Income)
		assert.Empty(t, trend.Expenses)
	})
}

func TestCategoryMatrix(t *testing.T) {
	t.Run("zero-filled category series aligned to months", func(t *testing.T) {
		matrix := CategoryMatrix(trendFixture(), "", "")

		require.Equal(t, []string{"2025-09", "2025-10"}, matrix.Months)
		require.Len(t, matrix.Categories, 2)
		assert.Equal(t, []float64{300, 200}, matrix.Categories["food"])
		assert.Equal(t, []float64{100, 0}, matrix.Categories["transport"])
	})

	t.Run("income never contributes a category", func(t *testing.T) {
		matrix := CategoryMatrix(trendFixture(), "", "")
		assert.NotContains(t, matrix.Categories, "salary")
	})

	t.Run("income-only month still appears on the axis", func(t *testing.T) {
		txs := []domain.Transaction{
			{Date: "2025-08-01", Amount: 500, Type: "income", Category: "salary"},
			{Date: "2025-09-10", Amount: 40, Type: "expense", Category: "food"},
		}

		matrix := CategoryMatrix(txs, "", "")
		require.Equal(t, []string{"2025-08", "2025-09"}, matrix.Months)
		assert.Equal(t, []float64{0, 40}, matrix.Categories["food"])
	})

	t.Run("filtered transactions are skipped", func(t *testing.T) {
		matrix := CategoryMatrix(trendFixture(), "2025-10", "2025-10")

		require.Equal(t, []string{"2025-10"}, matrix.Months)
		assert.Equal(t, []float64{200}, matrix.Categories["food"])
		assert.NotContains(t, matrix.Categories, "transport")
	})

	t.Run("missing category lands in other", func(t *testing.T) {
		txs := []domain.Transaction{
			{Date: "2025-09-01", Amount: 10, Type: "expense"},
		}

		matrix := CategoryMatrix(txs, "", "")
		assert.Equal(t, []float64{10}, matrix.Categories["other"])
	})
}
