package rest_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yellomango9/it-mgmt-tool/internal/auditlog"
	"github.com/yellomango9/it-mgmt-tool/internal/auth"
	"github.com/yellomango9/it-mgmt-tool/internal/complaint"
	"github.com/yellomango9/it-mgmt-tool/internal/peripheral"
	"github.com/yellomango9/it-mgmt-tool/internal/report"
	"github.com/yellomango9/it-mgmt-tool/internal/system"
	"github.com/yellomango9/it-mgmt-tool/internal/transport/rest"
	"github.com/yellomango9/it-mgmt-tool/internal/transport/static"
	"github.com/yellomango9/it-mgmt-tool/internal/user"
)

func TestRouter(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Router Suite")
}

// Stub services: routing behavior is under test, not business logic.

type stubUserService struct{}

func (s *stubUserService) Register(user.RegisterDTO) (*user.User, error) {
	return &user.User{ID: 1}, nil
}
func (s *stubUserService) Login(user.LoginDTO) (*user.PublicUser, error) {
	return &user.PublicUser{UserID: 1}, nil
}

type stubSystemService struct{}

func (s *stubSystemService) Create(context.Context, auth.Actor, system.CreateSystemDTO) (*system.System, error) {
	return &system.System{ID: 1}, nil
}
func (s *stubSystemService) List(system.ListFilters) ([]system.View, error) {
	return []system.View{}, nil
}
func (s *stubSystemService) Update(context.Context, auth.Actor, int64, system.UpdateSystemDTO) error {
	return nil
}
func (s *stubSystemService) Delete(context.Context, auth.Actor, int64) error { return nil }

type stubPeripheralService struct{}

func (s *stubPeripheralService) Create(context.Context, auth.Actor, peripheral.CreatePeripheralDTO) (*peripheral.Peripheral, error) {
	return &peripheral.Peripheral{ID: 1}, nil
}
func (s *stubPeripheralService) List() ([]peripheral.View, error) {
	return []peripheral.View{}, nil
}
func (s *stubPeripheralService) Update(context.Context, auth.Actor, int64, peripheral.UpdatePeripheralDTO) error {
	return nil
}
func (s *stubPeripheralService) Delete(context.Context, auth.Actor, int64) error { return nil }

type stubComplaintService struct{}

func (s *stubComplaintService) Create(context.Context, auth.Actor, complaint.CreateComplaintDTO) (*complaint.Complaint, error) {
	return &complaint.Complaint{ID: 1}, nil
}
func (s *stubComplaintService) List(complaint.ListFilters) ([]complaint.View, error) {
	return []complaint.View{}, nil
}
func (s *stubComplaintService) Update(context.Context, auth.Actor, int64, complaint.UpdateComplaintDTO) error {
	return nil
}

type stubAuditlogService struct{}

func (s *stubAuditlogService) List() ([]auditlog.EntryView, error) {
	return []auditlog.EntryView{}, nil
}

type stubReportService struct{}

func (s *stubReportService) ComplaintReport(complaint.ListFilters) ([]byte, error) {
	return []byte("%PDF-"), nil
}
func (s *stubReportService) SystemReport(system.ListFilters) ([]byte, error) {
	return []byte("%PDF-"), nil
}
func (s *stubReportService) LogReport() ([]byte, error)       { return []byte("%PDF-"), nil }
func (s *stubReportService) PeripheralExport() (string, error) { return "peripherals.pdf", nil }

var _ = Describe("Route fallthrough", func() {
	var router *chi.Mux

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		root := GinkgoT().TempDir()
		Expect(os.WriteFile(filepath.Join(root, "index.html"), []byte("<html>home</html>"), 0o644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(root, "about.html"), []byte("<html>about</html>"), 0o644)).To(Succeed())

		gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		sqlDB, err := gormDB.DB()
		Expect(err).NotTo(HaveOccurred())

		router = chi.NewRouter()
		rest.RegisterAllRoutes(
			router,
			sqlDB,
			user.NewHandler(&stubUserService{}),
			system.NewHandler(&stubSystemService{}),
			peripheral.NewHandler(&stubPeripheralService{}),
			complaint.NewHandler(&stubComplaintService{}),
			auditlog.NewHandler(&stubAuditlogService{}),
			report.NewHandler(&stubReportService{}),
			static.NewHandler(root, logger),
			filepath.Join(root, "openapi.yml"),
			logger,
		)
	})

	expectRouteNotFound := func(rec *httptest.ResponseRecorder) {
		Expect(rec.Code).To(Equal(http.StatusNotFound))
		Expect(rec.Header().Get("Content-Type")).To(Equal("application/json"))

		var body map[string]string
		Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
		Expect(body).To(HaveKeyWithValue("error", "Route not found"))
	}

	It("should dispatch registered API routes", func() {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/systems", nil))

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring("systems"))
	})

	It("should serve an unmatched GET path from the asset root", func() {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/about.html", nil))

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring("about"))
	})

	It("should serve index.html for the root path", func() {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring("home"))
	})

	It("should answer the JSON 404 for an unmatched GET with no file", func() {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/no-such-page.html", nil))

		expectRouteNotFound(rec)
	})

	It("should answer the JSON 404 for an unmatched non-GET method without touching static", func() {
		// about.html exists, but static fallthrough is GET-only
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("POST", "/about.html", nil))

		expectRouteNotFound(rec)
	})

	It("should fold method-not-allowed into the same fallback", func() {
		// /complaints is registered for GET only
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/complaints", nil))

		expectRouteNotFound(rec)
	})

	It("should short-circuit OPTIONS preflight before routing", func() {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("OPTIONS", "/no-such-page", nil))

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
	})
})
