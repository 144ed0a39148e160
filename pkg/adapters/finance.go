package adapters

import (
	"maps"

	"github.com/fin-tools/finsight/pkg/models/api"
	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/fin-tools/finsight/pkg/models/store"
)

func MapTransactionStoreToDomain(t store.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:          t.ID,
		Date:        t.Date,
		Description: t.Description,
		Amount:      t.Amount,
		Type:        t.Type,
		Category:    t.Category,
	}
}

func MapTransactionDomainToStore(t domain.Transaction) store.Transaction {
	return store.Transaction{
		ID:          t.ID,
		Date:        t.Date,
		Description: t.Description,
		Amount:      t.Amount,
		Type:        t.Type,
		Category:    t.Category,
	}
}

func MapTransactionDomainToApi(t domain.Transaction) api.Transaction {
	return api.Transaction{
		ID:          t.ID,
		Date:        t.Date,
		Description: t.Description,
		Amount:      t.Amount,
		Type:        t.Type,
		Category:    t.Category,
	}
}

func MapGoalStoreToDomain(g store.Goal) domain.Goal {
	return domain.Goal{ID: g.ID, Name: g.Name, Target: g.Target, Current: g.Current}
}

func MapGoalDomainToStore(g domain.Goal) store.Goal {
	return store.Goal{ID: g.ID, Name: g.Name, Target: g.Target, Current: g.Current}
}

func MapGoalDomainToApi(g domain.Goal) api.Goal {
	return api.Goal{ID: g.ID, Name: g.Name, Target: g.Target, Current: g.Current}
}

func MapBudgetStoreToDomain(b store.Budget) domain.Budget {
	return domain.Budget{ID: b.ID, Category: b.Category, Amount: b.Amount, Month: b.Month}
}

func MapBudgetDomainToStore(b domain.Budget) store.Budget {
	return store.Budget{ID: b.ID, Category: b.Category, Amount: b.Amount, Month: b.Month}
}

func MapBudgetDomainToApi(b domain.Budget) api.Budget {
	return api.Budget{ID: b.ID, Category: b.Category, Amount: b.Amount, Month: b.Month}
}

func MapSummaryDomainToApi(s domain.Summary) api.Summary {
	return api.Summary{
		MonthlyIncome:   s.MonthlyIncome,
		MonthlyExpenses: s.MonthlyExpenses,
		ByCategory:      maps.Clone(s.ByCategory),
		EmergencyFund:   s.EmergencyFund,
	}
}

func MapHealthDomainToApi(h domain.HealthAssessment) api.HealthAssessment {
	return api.HealthAssessment{Score: h.Score, Status: string(h.Status), Savings: h.Savings}
}

func MapSuggestionDomainToApi(s domain.Suggestion) api.Suggestion {
	return api.Suggestion{
		ID:              s.ID,
		Message:         s.Message,
		Reason:          s.Reason,
		SuggestedAction: s.SuggestedAction,
		ImpactIDR:       s.ImpactIDR,
		Level:           string(s.Level),
	}
}

func MapTrendDomainToApi(t domain.TrendSeries) api.TrendSeries {
	return api.TrendSeries{Months: t.Months, Income: t.Income, Expenses: t.Expenses}
}

func MapCategoryMatrixDomainToApi(m domain.CategoryMatrix) api.CategoryMatrix {
	return api.CategoryMatrix{Months: m.Months, Categories: m.Categories}
}

func MapBudgetComparisonDomainToApi(c domain.BudgetComparison) api.BudgetComparison {
	data := make(map[string]api.BudgetActual, len(c.Data))
	for category, series := range c.Data {
		data[category] = api.BudgetActual{Budget: series.Budget, Actual: series.Actual}
	}
	return api.BudgetComparison{Months: c.Months, Categories: c.Categories, Data: data}
}
