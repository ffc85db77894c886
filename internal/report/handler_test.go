package report_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/yellomango9/it-mgmt-tool/internal/auth"
	"github.com/yellomango9/it-mgmt-tool/internal/complaint"
	"github.com/yellomango9/it-mgmt-tool/internal/report"
	"github.com/yellomango9/it-mgmt-tool/internal/system"
)

// MockReportService implements report.ServiceAPI for handler tests
type MockReportService struct{}

func (m *MockReportService) ComplaintReport(complaint.ListFilters) ([]byte, error) {
	return []byte("%PDF-1.3 complaints"), nil
}

func (m *MockReportService) SystemReport(system.ListFilters) ([]byte, error) {
	return []byte("%PDF-1.3 systems"), nil
}

func (m *MockReportService) LogReport() ([]byte, error) {
	return []byte("%PDF-1.3 logs"), nil
}

func (m *MockReportService) PeripheralExport() (string, error) {
	return "peripherals.pdf", nil
}

var _ = Describe("Report Handler", func() {
	var handler *report.Handler

	BeforeEach(func() {
		handler = report.NewHandler(&MockReportService{})
	})

	asAdmin := func(r *http.Request) *http.Request {
		id := int64(1)
		return r.WithContext(auth.ContextWithActor(r.Context(), auth.Actor{UserID: &id, Role: auth.RoleAdmin}))
	}

	asUser := func(r *http.Request) *http.Request {
		id := int64(2)
		return r.WithContext(auth.ContextWithActor(r.Context(), auth.Actor{UserID: &id, Role: auth.RoleUser}))
	}

	Describe("ExportComplaints", func() {
		It("should refuse non-admin actors", func() {
			rec := httptest.NewRecorder()
			handler.ExportComplaints(rec, asUser(httptest.NewRequest("GET", "/export-complaints", nil)))

			Expect(rec.Code).To(Equal(http.StatusForbidden))

			var body map[string]string
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body).To(HaveKeyWithValue("error", "Only Admins can export complaints"))
		})

		It("should stream the PDF to admins", func() {
			rec := httptest.NewRecorder()
			handler.ExportComplaints(rec, asAdmin(httptest.NewRequest("GET", "/export-complaints", nil)))

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(Equal("application/pdf"))
			Expect(rec.Header().Get("Content-Disposition")).To(Equal("attachment; filename=complaints.pdf"))
			Expect(rec.Body.String()).To(HavePrefix("%PDF-"))
		})
	})

	Describe("ExportSystems", func() {
		It("should refuse non-admin actors", func() {
			rec := httptest.NewRecorder()
			handler.ExportSystems(rec, asUser(httptest.NewRequest("GET", "/export-systems", nil)))

			Expect(rec.Code).To(Equal(http.StatusForbidden))

			var body map[string]string
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body).To(HaveKeyWithValue("error", "Only Admins can export systems"))
		})

		It("should refuse anonymous requests", func() {
			rec := httptest.NewRecorder()
			handler.ExportSystems(rec, httptest.NewRequest("GET", "/export-systems", nil))

			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})
	})

	Describe("ExportLogs", func() {
		It("should stream the PDF to admins", func() {
			rec := httptest.NewRecorder()
			handler.ExportLogs(rec, asAdmin(httptest.NewRequest("GET", "/export-logs", nil)))

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Disposition")).To(Equal("attachment; filename=logs.pdf"))
		})
	})

	Describe("ExportPeripherals", func() {
		It("should answer with the written file name for any actor", func() {
			rec := httptest.NewRecorder()
			handler.ExportPeripherals(rec, asUser(httptest.NewRequest("GET", "/export/peripherals", nil)))

			Expect(rec.Code).To(Equal(http.StatusOK))

			var body map[string]string
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body).To(HaveKeyWithValue("message", "Peripherals exported successfully"))
			Expect(body).To(HaveKeyWithValue("file", "peripherals.pdf"))
		})
	})
})
