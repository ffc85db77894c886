package middleware

import (
	"net/http"

	"github.com/yellomango9/it-mgmt-tool/internal/auth"
	"github.com/yellomango9/it-mgmt-tool/pkg/logger"
)

// ActorContext resolves the request's actor identity (header first, query
// parameter fallback) and stores it in the context for handlers, role gates
// and audit attribution.
func ActorContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := auth.ActorFromRequest(r)

		ctx := auth.ContextWithActor(r.Context(), actor)
		if actor.UserID != nil {
			ctx = logger.With(ctx, "actor_id", *actor.UserID, "actor_role", actor.Role)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
