package complaint

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/yellomango9/it-mgmt-tool/internal/auth"
	"github.com/yellomango9/it-mgmt-tool/internal/transport"
	"github.com/yellomango9/it-mgmt-tool/pkg/logger"
)

type ServiceAPI interface {
	Create(ctx context.Context, actor auth.Actor, dto CreateComplaintDTO) (*Complaint, error)
	List(filters ListFilters) ([]View, error)
	Update(ctx context.Context, actor auth.Actor, id int64, dto UpdateComplaintDTO) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     service,
	}
}

func (h *Handler) AddComplaint(w http.ResponseWriter, r *http.Request) {
	var dto CreateComplaintDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("AddComplaint: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	actor := auth.ActorFromContext(r.Context())
	if _, err := h.Service.Create(r.Context(), actor, dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteMessage(w, http.StatusCreated, "Complaint submitted successfully")
}

func (h *Handler) GetComplaints(w http.ResponseWriter, r *http.Request) {
	filters := FiltersFromQuery(r)

	views, err := h.Service.List(filters)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"complaints": views})
}

func (h *Handler) UpdateComplaint(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid complaint ID")
		return
	}

	var dto UpdateComplaintDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateComplaint: invalid request body", "error", err, "complaint_id", id)
		h.WriteError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	actor := auth.ActorFromContext(r.Context())
	if err := h.Service.Update(r.Context(), actor, id, dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteMessage(w, http.StatusOK, "Complaint updated successfully")
}

// FiltersFromQuery extracts the whitelisted equality filters. The report
// handler reuses it so listings and exports accept identical parameters.
func FiltersFromQuery(r *http.Request) ListFilters {
	var filters ListFilters
	if status := r.URL.Query().Get("status"); status != "" {
		filters.Status = &status
	}
	if priority := r.URL.Query().Get("priority"); priority != "" {
		filters.Priority = &priority
	}
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filters.UserID = &id
		}
	}
	return filters
}
