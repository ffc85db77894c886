package auth_test

import (
	"context"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/yellomango9/it-mgmt-tool/internal/auth"
)

var _ = Describe("ActorFromRequest", func() {
	It("should resolve id and role from headers", func() {
		req := httptest.NewRequest("POST", "/add-system", nil)
		req.Header.Set(auth.HeaderUserID, "42")
		req.Header.Set(auth.HeaderUserRole, "Admin")

		actor := auth.ActorFromRequest(req)
		Expect(actor.UserID).NotTo(BeNil())
		Expect(*actor.UserID).To(Equal(int64(42)))
		Expect(actor.Role).To(Equal(auth.RoleAdmin))
		Expect(actor.IsAdmin()).To(BeTrue())
	})

	It("should fall back to query parameters", func() {
		req := httptest.NewRequest("GET", "/export-logs?user_id=7&user_role=Admin", nil)

		actor := auth.ActorFromRequest(req)
		Expect(actor.UserID).NotTo(BeNil())
		Expect(*actor.UserID).To(Equal(int64(7)))
		Expect(actor.Role).To(Equal(auth.RoleAdmin))
	})

	It("should prefer headers over query parameters", func() {
		req := httptest.NewRequest("GET", "/export-logs?user_id=7&user_role=User", nil)
		req.Header.Set(auth.HeaderUserID, "42")
		req.Header.Set(auth.HeaderUserRole, "Admin")

		actor := auth.ActorFromRequest(req)
		Expect(*actor.UserID).To(Equal(int64(42)))
		Expect(actor.Role).To(Equal(auth.RoleAdmin))
	})

	It("should default to an anonymous User actor", func() {
		req := httptest.NewRequest("GET", "/systems", nil)

		actor := auth.ActorFromRequest(req)
		Expect(actor.UserID).To(BeNil())
		Expect(actor.Role).To(Equal(auth.RoleUser))
		Expect(actor.IsAdmin()).To(BeFalse())
	})

	It("should ignore a non-numeric user id", func() {
		req := httptest.NewRequest("GET", "/systems", nil)
		req.Header.Set(auth.HeaderUserID, "abc")

		actor := auth.ActorFromRequest(req)
		Expect(actor.UserID).To(BeNil())
	})

	It("should ignore a negative user id", func() {
		req := httptest.NewRequest("GET", "/systems", nil)
		req.Header.Set(auth.HeaderUserID, "-5")

		actor := auth.ActorFromRequest(req)
		Expect(actor.UserID).To(BeNil())
	})
})

var _ = Describe("Actor context", func() {
	It("should round-trip through a context", func() {
		id := int64(9)
		ctx := auth.ContextWithActor(context.Background(), auth.Actor{UserID: &id, Role: auth.RoleAdmin})

		actor := auth.ActorFromContext(ctx)
		Expect(*actor.UserID).To(Equal(int64(9)))
		Expect(actor.Role).To(Equal(auth.RoleAdmin))
	})

	It("should default when the context carries no actor", func() {
		actor := auth.ActorFromContext(context.Background())
		Expect(actor.UserID).To(BeNil())
		Expect(actor.Role).To(Equal(auth.RoleUser))
	})
})
