package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/fin-tools/finsight/pkg/models/domain"
)

// roundIDR rounds a monetary amount to whole rupiah. Every string that
// quotes an amount is rendered from this integer, so text and ImpactIDR
// never disagree.
func roundIDR(v float64) int64 {
	return int64(math.Round(v))
}

// overspendRule proposes a 10% cut for the top two expense categories.
func overspendRule(in RuleInput) []domain.Suggestion {
	summary := in.Summary
	if summary.MonthlyExpenses <= 0 || len(summary.ByCategory) == 0 {
		return nil
	}

	ordered := orderedCategories(summary)
	sort.SliceStable(ordered, func(i, j int) bool {
		return summary.ByCategory[ordered[i]] > summary.ByCategory[ordered[j]]
	})
	if len(ordered) > 2 {
		ordered = ordered[:2]
	}

	suggestions := make([]domain.Suggestion, 0, len(ordered))
	for _, category := range ordered {
		cut := roundIDR(summary.ByCategory[category] * 0.1)
		suggestions = append(suggestions, domain.Suggestion{
			ID:              "overspend_" + category,
			Message:         fmt.Sprintf("Kurangi pengeluaran %s sebesar 10%%", category),
			Reason:          fmt.Sprintf("Kategori %s termasuk pengeluaran terbesar bulan ini", category),
			SuggestedAction: fmt.Sprintf("Tetapkan batas baru untuk %s dan pantau mingguan", category),
			ImpactIDR:       cut,
			Level:           domain.LevelMedium,
		})
	}
	return suggestions
}

// emergencyFundRule fires when the fund sits below three months of
// expenses and spreads the gap over a six month plan.
func emergencyFundRule(in RuleInput) []domain.Suggestion {
	summary := in.Summary
	target := summary.MonthlyExpenses * 3
	if target <= 0 || summary.EmergencyFund >= target {
		return nil
	}

	gap := math.Max(0, target-summary.EmergencyFund)
	monthly := roundIDR(gap / 6)
	return []domain.Suggestion{{
		ID:              "emergency_fund",
		Message:         "Tambahkan dana darurat hingga 3x pengeluaran",
		Reason:          "Dana darurat di bawah rekomendasi (3x pengeluaran bulanan)",
		SuggestedAction: fmt.Sprintf("Sisihkan sekitar %d per bulan selama 6 bulan", monthly),
		ImpactIDR:       monthly,
		Level:           domain.LevelHigh,
	}}
}

// surplusAllocationRule routes half the monthly surplus to the goal with
// the least progress. Ties keep original list order.
func surplusAllocationRule(in RuleInput) []domain.Suggestion {
	surplus := in.Summary.MonthlyIncome - in.Summary.MonthlyExpenses
	if surplus <= 0 || len(in.Goals) == 0 {
		return nil
	}

	goals := append([]domain.Goal(nil), in.Goals...)
	sort.SliceStable(goals, func(i, j int) bool {
		return goalProgress(goals[i]) < goalProgress(goals[j])
	})
	target := goals[0]

	allocate := roundIDR(surplus * 0.5)
	return []domain.Suggestion{{
		ID:              "surplus_allocation",
		Message:         fmt.Sprintf("Alokasikan 50%% surplus ke goal: %s", target.Name),
		Reason:          "Ada surplus bulanan yang bisa dipercepat ke target prioritas",
		SuggestedAction: fmt.Sprintf("Alokasikan %d ke '%s' bulan ini", allocate, target.Name),
		ImpactIDR:       allocate,
		Level:           domain.LevelMedium,
	}}
}

// savingsRateRule fires when less than 20% of income is saved.
func savingsRateRule(in RuleInput) []domain.Suggestion {
	income := in.Summary.MonthlyIncome
	if income <= 0 {
		return nil
	}

	net := income - in.Summary.MonthlyExpenses
	rate := math.Max(0, net/income)
	if rate >= 0.2 {
		return nil
	}

	uplift := roundIDR(income*0.2 - net)
	return []domain.Suggestion{{
		ID:              "savings_rate",
		Message:         "Naikkan savings rate ke 20%",
		Reason:          fmt.Sprintf("Savings rate saat ini ~%d%%", int(rate*100)),
		SuggestedAction: fmt.Sprintf("Cari penghematan %d/bulan atau tambah pemasukan", uplift),
		ImpactIDR:       uplift,
		Level:           domain.LevelHigh,
	}}
}

// goalProgress is current/target, or 0 when the target is not positive.
func goalProgress(g domain.Goal) float64 {
	if g.Target <= 0 {
		return 0
	}
	return g.Current / g.Target
}

// orderedCategories returns the summary's categories in first-seen order,
// falling back to sorted names for any the order slice does not cover.
func orderedCategories(summary domain.Summary) []string {
	seen := make(map[string]bool, len(summary.ByCategory))
	ordered := make([]string, 0, len(summary.ByCategory))
	for _, category := range summary.CategoryOrder {
		if _, ok := summary.ByCategory[category]; ok && !seen[category] {
			ordered = append(ordered, category)
			seen[category] = true
		}
	}

	var rest []string
	for category := range summary.ByCategory {
		if !seen[category] {
			rest = append(rest, category)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}
