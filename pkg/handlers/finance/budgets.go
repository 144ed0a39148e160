package finance

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/fin-tools/finsight/pkg/adapters"
	"github.com/fin-tools/finsight/pkg/models/api"
	"github.com/fin-tools/finsight/pkg/models/store"
	"github.com/fin-tools/finsight/pkg/store/sqlite"
	"github.com/go-chi/chi/v5"
)

type createBudgetRequest struct {
	Category *string  `json:"category"`
	Amount   *float64 `json:"amount"`
	Month    *string  `json:"month"`
}

func (req *createBudgetRequest) missingField() string {
	switch {
	case req.Category == nil:
		return "category"
	case req.Amount == nil:
		return "amount"
	case req.Month == nil:
		return "month"
	}
	return ""
}

func (h *Handler) ListBudgets(w http.ResponseWriter, r *http.Request) {
	records, err := h.budgets.List(r.Context())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	response := make([]api.Budget, 0, len(records))
	for _, record := range records {
		response = append(response, adapters.MapBudgetDomainToApi(
			adapters.MapBudgetStoreToDomain(record)))
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"budgets": response})
}

func (h *Handler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	var req createBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid payload")
		return
	}
	if field := req.missingField(); field != "" {
		respondError(w, r, http.StatusBadRequest, "missing required field: "+field)
		return
	}

	id, err := h.budgets.Add(r.Context(), store.Budget{
		Category: *req.Category,
		Amount:   *req.Amount,
		Month:    *req.Month,
	})
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, map[string]any{"status": "ok", "id": id})
}

func (h *Handler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid budget id")
		return
	}

	if err := h.budgets.Delete(r.Context(), id); err != nil {
		if errors.Is(err, sqlite.ErrNotFound) {
			respondError(w, r, http.StatusNotFound, "budget not found")
			return
		}
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
