package system_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/yellomango9/it-mgmt-tool/internal/auth"
	"github.com/yellomango9/it-mgmt-tool/internal/system"
)

// MockService implements system.ServiceAPI for handler tests
type MockService struct {
	createErr error
	updateErr error
	deleteErr error
	listViews []system.View
	lastActor auth.Actor
}

func (m *MockService) Create(_ context.Context, actor auth.Actor, dto system.CreateSystemDTO) (*system.System, error) {
	m.lastActor = actor
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &system.System{ID: 1, Hostname: dto.Hostname}, nil
}

func (m *MockService) List(filters system.ListFilters) ([]system.View, error) {
	return m.listViews, nil
}

func (m *MockService) Update(_ context.Context, actor auth.Actor, id int64, dto system.UpdateSystemDTO) error {
	m.lastActor = actor
	return m.updateErr
}

func (m *MockService) Delete(_ context.Context, actor auth.Actor, id int64) error {
	m.lastActor = actor
	return m.deleteErr
}

func decodeBody(rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
	return body
}

var _ = Describe("System Handler", func() {
	var (
		mockService *MockService
		handler     *system.Handler
	)

	BeforeEach(func() {
		mockService = &MockService{}
		handler = system.NewHandler(mockService)
	})

	withURLParam := func(r *http.Request, key, value string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add(key, value)
		return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}

	Describe("AddSystem", func() {
		It("should return 400 for malformed JSON", func() {
			req := httptest.NewRequest("POST", "/add-system", strings.NewReader("{not json"))
			rec := httptest.NewRecorder()

			handler.AddSystem(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeBody(rec)).To(HaveKeyWithValue("error", "Invalid JSON"))
		})

		It("should return 201 with a confirmation message", func() {
			req := httptest.NewRequest("POST", "/add-system",
				strings.NewReader(`{"hostname":"ws-01","os_name":"Ubuntu","ip_address":"10.0.0.5"}`))
			rec := httptest.NewRecorder()

			handler.AddSystem(rec, req)

			Expect(rec.Code).To(Equal(http.StatusCreated))
			Expect(decodeBody(rec)).To(HaveKeyWithValue("message", "System added successfully"))
		})

		It("should pass the actor from the request context to the service", func() {
			id := int64(42)
			req := httptest.NewRequest("POST", "/add-system",
				strings.NewReader(`{"hostname":"ws-01","os_name":"Ubuntu","ip_address":"10.0.0.5"}`))
			req = req.WithContext(auth.ContextWithActor(req.Context(), auth.Actor{UserID: &id, Role: auth.RoleAdmin}))
			rec := httptest.NewRecorder()

			handler.AddSystem(rec, req)

			Expect(mockService.lastActor.UserID).NotTo(BeNil())
			Expect(*mockService.lastActor.UserID).To(Equal(int64(42)))
		})
	})

	Describe("GetSystems", func() {
		It("should wrap results under the systems key", func() {
			mockService.listViews = []system.View{{ID: 1, Hostname: "ws-01"}}
			req := httptest.NewRequest("GET", "/systems", nil)
			rec := httptest.NewRecorder()

			handler.GetSystems(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			body := decodeBody(rec)
			Expect(body).To(HaveKey("systems"))
			Expect(body["systems"]).To(HaveLen(1))
		})
	})

	Describe("UpdateSystem", func() {
		It("should return 400 for a non-numeric id", func() {
			req := withURLParam(httptest.NewRequest("PUT", "/system/abc", strings.NewReader(`{}`)), "id", "abc")
			rec := httptest.NewRecorder()

			handler.UpdateSystem(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeBody(rec)).To(HaveKeyWithValue("error", "Invalid system ID"))
		})

		It("should map a not found error to 404", func() {
			mockService.updateErr = system.ErrNotFound
			req := withURLParam(httptest.NewRequest("PUT", "/system/999",
				strings.NewReader(`{"hostname":"x"}`)), "id", "999")
			rec := httptest.NewRecorder()

			handler.UpdateSystem(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(decodeBody(rec)).To(HaveKeyWithValue("error", "System not found"))
		})

		It("should return 200 with a confirmation message", func() {
			req := withURLParam(httptest.NewRequest("PUT", "/system/1",
				strings.NewReader(`{"hostname":"ws-renamed"}`)), "id", "1")
			rec := httptest.NewRecorder()

			handler.UpdateSystem(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(rec)).To(HaveKeyWithValue("message", "System updated successfully"))
		})
	})

	Describe("DeleteSystem", func() {
		It("should return 400 for a non-numeric id", func() {
			req := withURLParam(httptest.NewRequest("DELETE", "/system/abc", nil), "id", "abc")
			rec := httptest.NewRecorder()

			handler.DeleteSystem(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeBody(rec)).To(HaveKeyWithValue("error", "Invalid system ID"))
		})

		It("should return 200 with a confirmation message", func() {
			req := withURLParam(httptest.NewRequest("DELETE", "/system/1", nil), "id", "1")
			rec := httptest.NewRecorder()

			handler.DeleteSystem(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(rec)).To(HaveKeyWithValue("message", "System deleted successfully"))
		})
	})
})

var _ = Describe("FiltersFromQuery", func() {
	It("should parse both filters", func() {
		req := httptest.NewRequest("GET", "/systems?department_id=3&network_id=5", nil)
		filters := system.FiltersFromQuery(req)

		Expect(filters.DepartmentID).NotTo(BeNil())
		Expect(*filters.DepartmentID).To(Equal(int64(3)))
		Expect(filters.NetworkID).NotTo(BeNil())
		Expect(*filters.NetworkID).To(Equal(int64(5)))
	})

	It("should ignore non-numeric values", func() {
		req := httptest.NewRequest("GET", "/systems?department_id=abc", nil)
		filters := system.FiltersFromQuery(req)
		Expect(filters.DepartmentID).To(BeNil())
	})

	It("should leave absent filters nil", func() {
		req := httptest.NewRequest("GET", "/systems", nil)
		filters := system.FiltersFromQuery(req)
		Expect(filters.DepartmentID).To(BeNil())
		Expect(filters.NetworkID).To(BeNil())
	})
})
