package auth

import "context"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// principalContextKey is the context key for the verified principal id.
const principalContextKey contextKey = "principal_id"

// ContextWithPrincipal adds the verified user id to the context.
func ContextWithPrincipal(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, principalContextKey, userID)
}

// PrincipalFromContext retrieves the verified user id from the context.
// Returns empty string if the request is unauthenticated.
func PrincipalFromContext(ctx context.Context) string {
	id, ok := ctx.Value(principalContextKey).(string)
	if !ok {
		return ""
	}
	return id
}

// MustPrincipalFromContext retrieves the verified user id from the context.
// Panics if not present (use only after the auth middleware has run).
func MustPrincipalFromContext(ctx context.Context) string {
	id := PrincipalFromContext(ctx)
	if id == "" {
		panic("principal not found in context - ensure auth middleware is applied")
	}
	return id
}
