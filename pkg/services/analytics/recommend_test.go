package analytics

import (
	"testing"

	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend(t *testing.T) {
	t.Run("all guards firing keeps declaration order", func(t *testing.T) {
		// expenses above 70% of income, emergency fund short, surplus present
		recs := Recommend(domain.Summary{
			MonthlyIncome:   1000,
			MonthlyExpenses: 800,
			EmergencyFund:   1600,
		})

		require.Len(t, recs, 3)
		assert.Contains(t, recs[0], "Pengeluaran >70%")
		assert.Contains(t, recs[1], "dana darurat")
		assert.Contains(t, recs[2], "investasi")
	})

	t.Run("falls back to stability message", func(t *testing.T) {
		recs := Recommend(domain.Summary{})

		require.Len(t, recs, 1)
		assert.Contains(t, recs[0], "Kondisi stabil")
	})

	t.Run("spend ratio rule needs both totals positive", func(t *testing.T) {
		recs := Recommend(domain.Summary{MonthlyExpenses: 900, EmergencyFund: 10000})

		for _, rec := range recs {
			assert.NotContains(t, rec, "Pengeluaran >70%")
		}
	})
}
