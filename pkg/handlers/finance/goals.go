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

type createGoalRequest struct {
	Name    *string  `json:"name"`
	Target  *float64 `json:"target"`
	Current *float64 `json:"current"`
}

func (req *createGoalRequest) missingField() string {
	switch {
	case req.Name == nil:
		return "name"
	case req.Target == nil:
		return "target"
	case req.Current == nil:
		return "current"
	}
	return ""
}

type goalProgressRequest struct {
	Increment *float64 `json:"increment"`
}

func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	records, err := h.goals.List(r.Context())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	response := make([]api.Goal, 0, len(records))
	for _, record := range records {
		response = append(response, adapters.MapGoalDomainToApi(
			adapters.MapGoalStoreToDomain(record)))
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"goals": response})
}

func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid payload")
		return
	}
	if field := req.missingField(); field != "" {
		respondError(w, r, http.StatusBadRequest, "missing required field: "+field)
		return
	}

	id, err := h.goals.Add(r.Context(), store.Goal{
		Name:    *req.Name,
		Target:  *req.Target,
		Current: *req.Current,
	})
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, map[string]any{"status": "ok", "id": id})
}

func (h *Handler) UpdateGoalProgress(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid goal id")
		return
	}

	var req goalProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Increment == nil {
		respondError(w, r, http.StatusBadRequest, "missing required field: increment")
		return
	}

	if err := h.goals.AddProgress(r.Context(), id, *req.Increment); err != nil {
		if errors.Is(err, sqlite.ErrNotFound) {
			respondError(w, r, http.StatusNotFound, "goal not found")
			return
		}
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid goal id")
		return
	}

	if err := h.goals.Delete(r.Context(), id); err != nil {
		if errors.Is(err, sqlite.ErrNotFound) {
			respondError(w, r, http.StatusNotFound, "goal not found")
			return
		}
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
