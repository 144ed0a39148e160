package analytics

import (
	"fmt"
	"testing"

	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineSuggest(t *testing.T) {
	engine := NewEngine()

	t.Run("empty snapshot falls back to stable suggestion", func(t *testing.T) {
		suggestions := engine.Suggest(Summarize(nil), nil, domain.AnalysisContext{})

		require.Len(t, suggestions, 1)
		assert.Equal(t, "stable", suggestions[0].ID)
		assert.Equal(t, int64(0), suggestions[0].ImpactIDR)
		assert.Equal(t, domain.LevelLow, suggestions[0].Level)
	})

	t.Run("returns at most three, sorted by impact", func(t *testing.T) {
		txs := []domain.Transaction{
			{Date: "2025-10-01", Amount: 8000000, Type: "income", Category: "salary"},
			{Date: "2025-10-02", Amount: 3000000, Type: "expense", Category: "food"},
			{Date: "2025-10-03", Amount: 2000000, Type: "expense", Category: "transport"},
			{Date: "2025-10-04", Amount: 2500000, Type: "expense", Category: "shopping"},
		}
		goals := []domain.Goal{{Name: "Dana Darurat", Target: 20000000, Current: 1000000}}

		suggestions := engine.Suggest(Summarize(txs), goals, domain.AnalysisContext{TransactionCount: len(txs)})

		require.Len(t, suggestions, 3)
		for i := 1; i < len(suggestions); i++ {
			assert.GreaterOrEqual(t, suggestions[i-1].ImpactIDR, suggestions[i].ImpactIDR)
		}
	})

	t.Run("two expense categories with no income", func(t *testing.T) {
		txs := []domain.Transaction{
			{Date: "2025-10-01", Amount: 500, Type: "expense", Category: "food"},
			{Date: "2025-10-02", Amount: 300, Type: "expense", Category: "transport"},
		}

		suggestions := engine.Suggest(Summarize(txs), nil, domain.AnalysisContext{TransactionCount: len(txs)})

		ids := make(map[string]int64, len(suggestions))
		for _, s := range suggestions {
			ids[s.ID] = s.ImpactIDR
		}
		assert.Equal(t, int64(50), ids["overspend_food"])
		assert.Equal(t, int64(30), ids["overspend_transport"])
		assert.NotContains(t, ids, "surplus_allocation")
		assert.NotContains(t, ids, "savings_rate")
	})

	t.Run("emergency fund gap spreads over six months", func(t *testing.T) {
		// expenses 800 -> target 2400, emergency fund 1600, gap 800
		txs := []domain.Transaction{
			{Date: "2025-10-01", Amount: 800, Type: "expense", Category: "food"},
		}

		suggestions := engine.Suggest(Summarize(txs), nil, domain.AnalysisContext{})

		var found *domain.Suggestion
		for i := range suggestions {
			if suggestions[i].ID == "emergency_fund" {
				found = &suggestions[i]
			}
		}
		require.NotNil(t, found)
		assert.Equal(t, int64(133), found.ImpactIDR)
		assert.Equal(t, domain.LevelHigh, found.Level)
		assert.Contains(t, found.SuggestedAction, "133")
	})

	t.Run("surplus goes to least-progressed goal, ties keep list order", func(t *testing.T) {
		txs := []domain.Transaction{
			{Date: "2025-10-01", Amount: 1000, Type: "income"},
			{Date: "2025-10-02", Amount: 200, Type: "expense", Category: "food"},
		}
		goals := []domain.Goal{
			{Name: "First", Target: 100, Current: 25},
			{Name: "Second", Target: 400, Current: 100},
			{Name: "Behind", Target: 100, Current: 10},
		}

		suggestions := engine.Suggest(Summarize(txs), goals, domain.AnalysisContext{})

		var found *domain.Suggestion
		for i := range suggestions {
			if suggestions[i].ID == "surplus_allocation" {
				found = &suggestions[i]
			}
		}
		require.NotNil(t, found)
		assert.Contains(t, found.Message, "Behind")
		assert.Equal(t, int64(400), found.ImpactIDR)

		// First and Second share a 25% ratio; dropping Behind keeps First.
		suggestions = engine.Suggest(Summarize(txs), goals[:2], domain.AnalysisContext{})
		for i := range suggestions {
			if suggestions[i].ID == "surplus_allocation" {
				assert.Contains(t, suggestions[i].Message, "First")
			}
		}
	})

	t.Run("zero-target goal counts as no progress", func(t *testing.T) {
		txs := []domain.Transaction{
			{Date: "2025-10-01", Amount: 1000, Type: "income"},
			{Date: "2025-10-02", Amount: 100, Type: "expense", Category: "food"},
		}
		goals := []domain.Goal{
			{Name: "Funded", Target: 100, Current: 90},
			{Name: "NoTarget", Target: 0, Current: 50},
		}

		suggestions := engine.Suggest(Summarize(txs), goals, domain.AnalysisContext{})

		for _, s := range suggestions {
			if s.ID == "surplus_allocation" {
				assert.Contains(t, s.Message, "NoTarget")
			}
		}
	})

	t.Run("low savings rate proposes the uplift amount", func(t *testing.T) {
		txs := []domain.Transaction{
			{Date: "2025-10-01", Amount: 1000, Type: "income"},
			{Date: "2025-10-02", Amount: 900, Type: "expense", Category: "food"},
		}

		suggestions := engine.Suggest(Summarize(txs), nil, domain.AnalysisContext{})

		var found *domain.Suggestion
		for i := range suggestions {
			if suggestions[i].ID == "savings_rate" {
				found = &suggestions[i]
			}
		}
		require.NotNil(t, found)
		// uplift = 1000*0.2 - 100 = 100
		assert.Equal(t, int64(100), found.ImpactIDR)
		assert.Contains(t, found.SuggestedAction, fmt.Sprintf("%d", found.ImpactIDR))
		assert.Contains(t, found.Reason, "~10%")
	})

	t.Run("overspend ties keep first-seen category order", func(t *testing.T) {
		txs := []domain.Transaction{
			{Date: "2025-10-01", Amount: 100, Type: "expense", Category: "zeta"},
			{Date: "2025-10-02", Amount: 100, Type: "expense", Category: "alpha"},
		}

		suggestions := engine.Suggest(Summarize(txs), nil, domain.AnalysisContext{})

		var overspend []string
		for _, s := range suggestions {
			if s.ImpactIDR == 10 {
				overspend = append(overspend, s.ID)
			}
		}
		require.Equal(t, []string{"overspend_zeta", "overspend_alpha"}, overspend)
	})
}
