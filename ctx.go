package authstate

import (
	"context"
)

var outcomeCtxKey = &contextKey{"outcome"}

type contextKey struct {
	name string
}

// WithContext sets the resolved Outcome in the given context so downstream
// consumers can read the authentication status without re-resolving.
func WithContext(ctx context.Context, outcome Outcome) context.Context {
	return context.WithValue(ctx, outcomeCtxKey, outcome)
}

// FromContext finds the resolved Outcome in the context.
func FromContext(ctx context.Context) (Outcome, bool) {
	raw, ok := ctx.Value(outcomeCtxKey).(Outcome)
	return raw, ok
}

// IsAuthenticated reports whether the context carries an authenticated
// outcome.
func IsAuthenticated(ctx context.Context) bool {
	outcome, ok := FromContext(ctx)
	return ok && outcome.IsAuthenticated()
}
