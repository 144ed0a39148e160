package finance

import (
	"encoding/json"
	"net/http"

	"github.com/fin-tools/finsight/pkg/adapters"
	"github.com/fin-tools/finsight/pkg/models/api"
	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/fin-tools/finsight/pkg/services/analytics"
	budgetsvc "github.com/fin-tools/finsight/pkg/services/budget"
)

// GetSummary serves the aggregate summary together with the health
// assessment derived from it.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	txs, err := h.listDomainTransactions(r)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	summary := analytics.Summarize(txs)
	health := analytics.Assess(summary)
	respondJSON(w, r, http.StatusOK, map[string]any{
		"summary": adapters.MapSummaryDomainToApi(summary),
		"health":  adapters.MapHealthDomainToApi(health),
	})
}

// GetHealth serves the assessment alone for callers that do not need
// the summary payload.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	txs, err := h.listDomainTransactions(r)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	health := analytics.Assess(analytics.Summarize(txs))
	respondJSON(w, r, http.StatusOK, adapters.MapHealthDomainToApi(health))
}

func (h *Handler) GetTrend(w http.ResponseWriter, r *http.Request) {
	txs, err := h.listDomainTransactions(r)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	trend := analytics.MonthlyTrend(txs, start, end)
	respondJSON(w, r, http.StatusOK, adapters.MapTrendDomainToApi(trend))
}

func (h *Handler) GetCategoryMatrix(w http.ResponseWriter, r *http.Request) {
	txs, err := h.listDomainTransactions(r)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	matrix := analytics.CategoryMatrix(txs, start, end)
	respondJSON(w, r, http.StatusOK, adapters.MapCategoryMatrixDomainToApi(matrix))
}

func (h *Handler) GetBudgetVsActual(w http.ResponseWriter, r *http.Request) {
	txs, err := h.listDomainTransactions(r)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	budgetRecords, err := h.budgets.List(r.Context())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	budgets := make([]domain.Budget, 0, len(budgetRecords))
	for _, record := range budgetRecords {
		budgets = append(budgets, adapters.MapBudgetStoreToDomain(record))
	}

	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	comparison := budgetsvc.Compare(budgets, txs, start, end)
	respondJSON(w, r, http.StatusOK, adapters.MapBudgetComparisonDomainToApi(comparison))
}

// GetRecommendations serves the legacy flat advice list. A POST may carry
// a {"summary": ...} payload to evaluate; otherwise a fresh summary is
// computed from the current snapshot.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	var summary domain.Summary

	var posted struct {
		Summary *api.Summary `json:"summary"`
	}
	if r.Method == http.MethodPost {
		_ = json.NewDecoder(r.Body).Decode(&posted)
	}

	if posted.Summary != nil {
		summary = domain.Summary{
			MonthlyIncome:   posted.Summary.MonthlyIncome,
			MonthlyExpenses: posted.Summary.MonthlyExpenses,
			ByCategory:      posted.Summary.ByCategory,
			EmergencyFund:   posted.Summary.EmergencyFund,
		}
	} else {
		txs, err := h.listDomainTransactions(r)
		if err != nil {
			respondStoreError(w, r, err)
			return
		}
		summary = analytics.Summarize(txs)
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"recommendations": analytics.Recommend(summary),
	})
}

func (h *Handler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.listDomainTransactions(r)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	goals, err := h.listDomainGoals(r)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	summary := analytics.Summarize(txs)
	suggestions := h.engine.Suggest(summary, goals, domain.AnalysisContext{
		TransactionCount: len(txs),
	})

	response := make([]api.Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		response = append(response, adapters.MapSuggestionDomainToApi(s))
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"suggestions": response})
}
