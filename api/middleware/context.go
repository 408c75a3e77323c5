package middleware

import (
	"context"

	"github.com/emberworks/forgefront-backend/internal/session"
)

type contextKey string

const ctxSession contextKey = "session"

// WithSession injects the visitor's session state into the context.
func WithSession(ctx context.Context, state *session.State) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSession, state)
}

func SessionFromContext(ctx context.Context) *session.State {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxSession).(*session.State); ok {
		return v
	}
	return nil
}
