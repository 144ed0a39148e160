// Package finance exposes the analytics core and the record stores over
// HTTP. Handlers read one consistent snapshot from the stores, hand it
// to the pure analytics functions and serialize the result verbatim.
package finance

import (
	"encoding/json"
	"net/http"

	"github.com/fin-tools/finsight/pkg/adapters"
	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/fin-tools/finsight/pkg/services/analytics"
	"github.com/fin-tools/finsight/pkg/store/sqlite/budget"
	"github.com/fin-tools/finsight/pkg/store/sqlite/goal"
	"github.com/fin-tools/finsight/pkg/store/sqlite/transaction"
	"github.com/rs/zerolog"
)

type Handler struct {
	transactions transaction.Store
	goals        goal.Store
	budgets      budget.Store
	engine       *analytics.Engine
}

func NewHandler(transactions transaction.Store, goals goal.Store, budgets budget.Store) *Handler {
	return &Handler{
		transactions: transactions,
		goals:        goals,
		budgets:      budgets,
		engine:       analytics.NewEngine(),
	}
}

func (h *Handler) listDomainTransactions(r *http.Request) ([]domain.Transaction, error) {
	records, err := h.transactions.List(r.Context())
	if err != nil {
		return nil, err
	}
	txs := make([]domain.Transaction, 0, len(records))
	for _, record := range records {
		txs = append(txs, adapters.MapTransactionStoreToDomain(record))
	}
	return txs, nil
}

func (h *Handler) listDomainGoals(r *http.Request) ([]domain.Goal, error) {
	records, err := h.goals.List(r.Context())
	if err != nil {
		return nil, err
	}
	goals := make([]domain.Goal, 0, len(records))
	for _, record := range records {
		goals = append(goals, adapters.MapGoalStoreToDomain(record))
	}
	return goals, nil
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, r, status, map[string]string{"error": message})
}

func respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).Msg("store operation failed")
	respondError(w, r, http.StatusInternalServerError, "internal error")
}
