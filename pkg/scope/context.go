package scope

import (
	"context"

	"rockguard-srv/internal/model"
)

type contextKey string

const (
	payloadKey contextKey = "scope_payload"
	scopeKey   contextKey = "scope"
)

// SetPayloadToContext stores the verified payload in the context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadKey, payload)
}

// GetPayloadFromContext returns the payload stored by SetPayloadToContext.
func GetPayloadFromContext(ctx context.Context) Payload {
	if p, ok := ctx.Value(payloadKey).(Payload); ok {
		return p
	}
	return Payload{}
}

// SetScopeToContext stores the scope in the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey, sc)
}

// GetScopeFromContext returns the scope stored by SetScopeToContext.
func GetScopeFromContext(ctx context.Context) model.Scope {
	if sc, ok := ctx.Value(scopeKey).(model.Scope); ok {
		return sc
	}
	return model.Scope{}
}
