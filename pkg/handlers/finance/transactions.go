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

// createTransactionRequest uses pointer fields so absent keys are
// distinguishable from zero values during validation.
type createTransactionRequest struct {
	Date        *string  `json:"date"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	Type        *string  `json:"type"`
	Category    *string  `json:"category"`
}

func (req *createTransactionRequest) missingField() string {
	switch {
	case req.Date == nil:
		return "date"
	case req.Description == nil:
		return "description"
	case req.Amount == nil:
		return "amount"
	case req.Type == nil:
		return "type"
	case req.Category == nil:
		return "category"
	}
	return ""
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	records, err := h.transactions.List(r.Context())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	response := make([]api.Transaction, 0, len(records))
	for _, record := range records {
		response = append(response, adapters.MapTransactionDomainToApi(
			adapters.MapTransactionStoreToDomain(record)))
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"transactions": response})
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid payload")
		return
	}
	if field := req.missingField(); field != "" {
		respondError(w, r, http.StatusBadRequest, "missing required field: "+field)
		return
	}

	id, err := h.transactions.Add(r.Context(), store.Transaction{
		Date:        *req.Date,
		Description: *req.Description,
		Amount:      *req.Amount,
		Type:        *req.Type,
		Category:    *req.Category,
	})
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, map[string]any{"status": "ok", "id": id})
}

func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid transaction id")
		return
	}

	if err := h.transactions.Delete(r.Context(), id); err != nil {
		if errors.Is(err, sqlite.ErrNotFound) {
			respondError(w, r, http.StatusNotFound, "transaction not found")
			return
		}
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
