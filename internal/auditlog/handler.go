package auditlog

import (
	"net/http"

	"github.com/yellomango9/it-mgmt-tool/internal/transport"
	"github.com/yellomango9/it-mgmt-tool/pkg/logger"
)

type ServiceAPI interface {
	List() ([]EntryView, error)
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

func (h *Handler) GetLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.Service.List()
	if err != nil {
		h.Logger.Error("GetLogs: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"logs": logs})
}
