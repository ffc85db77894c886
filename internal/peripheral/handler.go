package peripheral

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
	Create(ctx context.Context, actor auth.Actor, dto CreatePeripheralDTO) (*Peripheral, error)
	List() ([]View, error)
	Update(ctx context.Context, actor auth.Actor, id int64, dto UpdatePeripheralDTO) error
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

func (h *Handler) AddPeripheral(w http.ResponseWriter, r *http.Request) {
	var dto CreatePeripheralDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("AddPeripheral: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	actor := auth.ActorFromContext(r.Context())
	if _, err := h.Service.Create(r.Context(), actor, dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteMessage(w, http.StatusCreated, "Peripheral added successfully")
}

func (h *Handler) GetPeripherals(w http.ResponseWriter, r *http.Request) {
	views, err := h.Service.List()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"peripherals": views})
}

func (h *Handler) UpdatePeripheral(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid peripheral ID")
		return
	}

	var dto UpdatePeripheralDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdatePeripheral: invalid request body", "error", err, "peripheral_id", id)
		h.WriteError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	actor := auth.ActorFromContext(r.Context())
	if err := h.Service.Update(r.Context(), actor, id, dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteMessage(w, http.StatusOK, "Peripheral updated successfully")
}

func (h *Handler) DeletePeripheral(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid peripheral ID")
		return
	}

	actor := auth.ActorFromContext(r.Context())
	if err := h.Service.Delete(r.Context(), actor, id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteMessage(w, http.StatusOK, "Peripheral deleted successfully")
}
