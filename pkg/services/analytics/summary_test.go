package analytics

import (
	"testing"

	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Run("partitions totals by type", func(t *testing.T) {
		txs := []domain.Transaction{
			{Date: "2025-09-01", Amount: 1000, Type: "income"},
			{Date: "2025-09-02", Amount: 800, Type: "expense", Category: "food"},
		}

		summary := Summarize(txs)

		assert.Equal(t, 1000.0, summary.MonthlyIncome)
		assert.Equal(t, 800.0, summary.MonthlyExpenses)
		assert.Equal(t, map[string]float64{"food": 800}, summary.ByCategory)
		assert.Equal(t, 1600.0, summary.EmergencyFund)
	})

	t.Run("category totals partition expenses", func(t *testing.T) {
		txs := []domain.Transaction{
			{Amount: 120.5, Type: "expense", Category: "food"},
			{Amount: 79.25, Type: "expense", Category: "transport"},
			{Amount: 50.25, Type: "expense", Category: "food"},
			{Amount: 999, Type: "income", Category: "salary"},
		}

		summary := Summarize(txs)

		var categoryTotal float64
		for _, v := range summary.ByCategory {
			categoryTotal += v
		}
		assert.InDelta(t, summary.MonthlyExpenses, categoryTotal, 0.001)
		assert.Equal(t, 2*summary.MonthlyExpenses, summary.EmergencyFund)
		// income never contributes a category
		assert.NotContains(t, summary.ByCategory, "salary")
	})

	t.Run("malformed records degrade to defaults", func(t *testing.T) {
		txs := []domain.Transaction{
			{Amount: 100, Type: ""},          // type not "income" counts as expense
			{Amount: 50, Type: "EXPENSE"},    // unknown casing too
			{Amount: 25, Type: "expense"},    // missing category -> other
			{Amount: 10, Type: "income"},     // income keeps no category
		}

		summary := Summarize(txs)

		assert.Equal(t, 10.0, summary.MonthlyIncome)
		assert.Equal(t, 175.0, summary.MonthlyExpenses)
		assert.Equal(t, map[string]float64{"other": 175}, summary.ByCategory)
	})

	t.Run("empty input yields zero summary", func(t *testing.T) {
		summary := Summarize(nil)

		assert.Zero(t, summary.MonthlyIncome)
		assert.Zero(t, summary.MonthlyExpenses)
		assert.Empty(t, summary.ByCategory)
		assert.Zero(t, summary.EmergencyFund)
	})

	t.Run("records categories in first-seen order", func(t *testing.T) {
		txs := []domain.Transaction{
			{Amount: 10, Type: "expense", Category: "transport"},
			{Amount: 10, Type: "expense", Category: "food"},
			{Amount: 10, Type: "expense", Category: "transport"},
		}

		summary := Summarize(txs)
		require.Equal(t, []string{"transport", "food"}, summary.CategoryOrder)
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		txs := []domain.Transaction{
			{Amount: 0.111, Type: "expense", Category: "a"},
			{Amount: 0.222, Type: "income"},
		}

		summary := Summarize(txs)

		assert.Equal(t, 0.22, summary.MonthlyIncome)
		assert.Equal(t, 0.11, summary.MonthlyExpenses)
		assert.Equal(t, 0.22, summary.EmergencyFund)
	})
}
