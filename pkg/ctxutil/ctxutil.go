package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
)

type ctxKey string

const (
	actorKey     ctxKey = "actor"
	requestIDKey ctxKey = "request_id"
)

// WithActor stores the authenticated actor in the context.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromCtx extracts the actor from the context.
// Returns false if the value is missing, of the wrong type, or has an
// invalid role.
func ActorFromCtx(ctx context.Context) (domain.Actor, bool) {
	a, ok := ctx.Value(actorKey).(domain.Actor)
	if !ok || !a.Role.IsValid() {
		return domain.Actor{}, false
	}
	return a, true
}

// ActorIDFromCtx returns the actor id, or uuid.Nil and false when absent.
func ActorIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	a, ok := ActorFromCtx(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return a.ID, true
}

// IsAdminCtx reports whether the context actor is an admin.
func IsAdminCtx(ctx context.Context) bool {
	a, ok := ActorFromCtx(ctx)
	return ok && a.IsAdmin()
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
