package analytics

import "github.com/fin-tools/finsight/pkg/models/domain"

// Assess maps a summary onto a 0-100 health score. Savings are defined
// only when both income and expenses are non-zero; an all-income or
// all-expense ledger reports zero savings rather than a large swing.
// A negative savings rate clamps to zero, so the score never drops below
// 50 while any income exists.
func Assess(summary domain.Summary) domain.HealthAssessment {
	income := summary.MonthlyIncome
	expenses := summary.MonthlyExpenses

	var savings float64
	if income != 0 && expenses != 0 {
		savings = income - expenses
	}

	score := 50
	if income > 0 {
		rate := savings / income
		if rate < 0 {
			rate = 0
		}
		if rate > 1 {
			rate = 1
		}
		score = int(50 + rate*50)
	}

	status := domain.StatusHealthy
	switch {
	case score < 40:
		status = domain.StatusCritical
	case score < 70:
		status = domain.StatusCaution
	}

	return domain.HealthAssessment{
		Score:   score,
		Status:  status,
		Savings: savings,
	}
}
