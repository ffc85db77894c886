package system

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
	Create(ctx context.Context, actor auth.Actor, dto CreateSystemDTO) (*System, error)
	List(filters ListFilters) ([]View, error)
	Update(ctx context.Context, actor auth.Actor, id int64, dto UpdateSystemDTO) error
	Delete(ctx context.Context, actor auth.Actor, id int64) error
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

func (h *Handler) AddSystem(w http.ResponseWriter, r *http.Request) {
	var dto CreateSystemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("AddSystem: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	actor := auth.ActorFromContext(r.Context())
	if _, err := h.Service.Create(r.Context(), actor, dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteMessage(w, http.StatusCreated, "System added successfully")
}

func (h *Handler) GetSystems(w http.ResponseWriter, r *http.Request) {
	views, err := h.Service.List(FiltersFromQuery(r))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"systems": views})
}

func (h *Handler) UpdateSystem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid system ID")
		return
	}

	var dto UpdateSystemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateSystem: invalid request body", "error", err, "system_id", id)
		h.WriteError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	actor := auth.ActorFromContext(r.Context())
	if err := h.Service.Update(r.Context(), actor, id, dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteMessage(w, http.StatusOK, "System updated successfully")
}

func (h *Handler) DeleteSystem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid system ID")
		return
	}

	actor := auth.ActorFromContext(r.Context())
	if err := h.Service.Delete(r.Context(), actor, id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteMessage(w, http.StatusOK, "System deleted successfully")
}

// FiltersFromQuery extracts the whitelisted equality filters. The report
// handler reuses it so listings and exports accept identical parameters.
func FiltersFromQuery(r *http.Request) ListFilters {
	var filters ListFilters
	if raw := r.URL.Query().Get("department_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filters.DepartmentID = &id
		}
	}
	if raw := r.URL.Query().Get("network_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filters.NetworkID = &id
		}
	}
	return filters
}
