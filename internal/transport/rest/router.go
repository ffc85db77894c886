package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/yellomango9/it-mgmt-tool/internal/auditlog"
	"github.com/yellomango9/it-mgmt-tool/internal/complaint"
	"github.com/yellomango9/it-mgmt-tool/internal/peripheral"
	"github.com/yellomango9/it-mgmt-tool/internal/report"
	"github.com/yellomango9/it-mgmt-tool/internal/system"
	"github.com/yellomango9/it-mgmt-tool/internal/transport/middleware"
	"github.com/yellomango9/it-mgmt-tool/internal/transport/static"
	"github.com/yellomango9/it-mgmt-tool/internal/transport/swagger"
	"github.com/yellomango9/it-mgmt-tool/internal/user"
)

func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	userHandler *user.Handler,
	systemHandler *system.Handler,
	peripheralHandler *peripheral.Handler,
	complaintHandler *complaint.Handler,
	auditlogHandler *auditlog.Handler,
	reportHandler *report.Handler,
	staticHandler *static.Handler,
	openapiPath string,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.ActorContext)

	// Serve OpenAPI spec at root
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, openapiPath)
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	router.Get("/health", healthHandler.healthCheckHandler)

	// Auth routes
	router.Post("/register", userHandler.Register)
	router.Post("/login", userHandler.Login)

	// System routes
	router.Post("/add-system", systemHandler.AddSystem)
	router.Get("/systems", systemHandler.GetSystems)
	router.Put("/system/{id}", systemHandler.UpdateSystem)
	router.Delete("/system/{id}", systemHandler.DeleteSystem)

	// Peripheral routes
	router.Post("/add-peripheral", peripheralHandler.AddPeripheral)
	router.Get("/peripherals", peripheralHandler.GetPeripherals)
	router.Put("/peripheral/{id}", peripheralHandler.UpdatePeripheral)
	router.Delete("/peripheral/{id}", peripheralHandler.DeletePeripheral)

	// Complaint routes
	router.Post("/add-complaint", complaintHandler.AddComplaint)
	router.Get("/complaints", complaintHandler.GetComplaints)
	router.Put("/complaint/{id}", complaintHandler.UpdateComplaint)

	// Audit log routes
	router.Get("/logs", auditlogHandler.GetLogs)

	// Report routes
	router.Get("/export-complaints", reportHandler.ExportComplaints)
	router.Get("/export-systems", reportHandler.ExportSystems)
	router.Get("/export-logs", reportHandler.ExportLogs)
	router.Get("/export/peripherals", reportHandler.ExportPeripherals)

	// Unknown GET paths fall through to the web UI; everything else is a
	// JSON 404 so API clients never see an HTML error page.
	notFound := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && staticHandler.TryServe(w, r) {
			return
		}
		writeRouteNotFound(w)
	}
	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)
}

func writeRouteNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(`{"error": "Route not found"}`))
}
