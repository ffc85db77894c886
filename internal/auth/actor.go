package auth

import (
	"context"
	"net/http"
	"strconv"
)

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"

	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// Actor is the user id/role pair attributed to a request. UserID is nil when
// neither the identity header nor the query fallback carries a valid integer;
// mutations still proceed, they just go unattributed in the audit trail.
type Actor struct {
	UserID *int64
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// ActorFromRequest resolves identity with header precedence and query
// parameter fallback, defaulting the role to "User".
func ActorFromRequest(r *http.Request) Actor {
	actor := Actor{Role: RoleUser}

	if id, ok := parseID(r.Header.Get(HeaderUserID)); ok {
		actor.UserID = &id
	} else if id, ok := parseID(r.URL.Query().Get("user_id")); ok {
		actor.UserID = &id
	}

	if role := r.Header.Get(HeaderUserRole); role != "" {
		actor.Role = role
	} else if role := r.URL.Query().Get("user_role"); role != "" {
		actor.Role = role
	}

	return actor
}

func parseID(raw string) (int64, bool) {
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

type ctxKey string

const actorKey ctxKey = "actor"

func ContextWithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

func ActorFromContext(ctx context.Context) Actor {
	if actor, ok := ctx.Value(actorKey).(Actor); ok {
		return actor
	}
	return Actor{Role: RoleUser}
}
