package report

import (
	"net/http"

	"github.com/yellomango9/it-mgmt-tool/internal/auth"
	"github.com/yellomango9/it-mgmt-tool/internal/complaint"
	"github.com/yellomango9/it-mgmt-tool/internal/system"
	"github.com/yellomango9/it-mgmt-tool/internal/transport"
	"github.com/yellomango9/it-mgmt-tool/pkg/logger"
)

type ServiceAPI interface {
	ComplaintReport(filters complaint.ListFilters) ([]byte, error)
	SystemReport(filters system.ListFilters) ([]byte, error)
	LogReport() ([]byte, error)
	PeripheralExport() (string, error)
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

func (h *Handler) ExportComplaints(w http.ResponseWriter, r *http.Request) {
	if !auth.ActorFromContext(r.Context()).IsAdmin() {
		h.WriteError(w, http.StatusForbidden, "Only Admins can export complaints")
		return
	}

	data, err := h.Service.ComplaintReport(complaint.FiltersFromQuery(r))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.writePDF(w, "complaints.pdf", data)
}

func (h *Handler) ExportSystems(w http.ResponseWriter, r *http.Request) {
	if !auth.ActorFromContext(r.Context()).IsAdmin() {
		h.WriteError(w, http.StatusForbidden, "Only Admins can export systems")
		return
	}

	data, err := h.Service.SystemReport(system.FiltersFromQuery(r))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.writePDF(w, "systems.pdf", data)
}

func (h *Handler) ExportLogs(w http.ResponseWriter, r *http.Request) {
	if !auth.ActorFromContext(r.Context()).IsAdmin() {
		h.WriteError(w, http.StatusForbidden, "Only Admins can export logs")
		return
	}

	data, err := h.Service.LogReport()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.writePDF(w, "logs.pdf", data)
}

// ExportPeripherals writes the report file server-side and answers with its
// name; the file is then reachable as a static asset.
func (h *Handler) ExportPeripherals(w http.ResponseWriter, r *http.Request) {
	filename, err := h.Service.PeripheralExport()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Peripherals exported successfully",
		"file":    filename,
	})
}

func (h *Handler) writePDF(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.Logger.Error("failed to write PDF response", "error", err, "filename", filename)
	}
}
