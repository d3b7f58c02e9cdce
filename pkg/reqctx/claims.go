package reqctx

import (
	"context"

	"github.com/google/uuid"
)

// AuthClaims is the subset of token claims the rest of the application
// needs. Keeping it an interface here avoids a dependency on the concrete
// token implementation.
type AuthClaims interface {
	GetUserID() uuid.UUID

	// GetSessionID returns the server-side session ID, nil for tokens
	// issued without one.
	GetSessionID() *uuid.UUID

	// GetTokenType returns "access" or "refresh".
	GetTokenType() string

	IsExpired() bool
}

// WithClaims stores authenticated claims in the context.
func WithClaims(ctx context.Context, claims AuthClaims) context.Context {
	return context.WithValue(ctx, keyClaims, claims)
}

// ClaimsFromContext returns the claims set by WithClaims, or nil for an
// unauthenticated request.
func ClaimsFromContext(ctx context.Context) AuthClaims {
	v := ctx.Value(keyClaims)
	if v == nil {
		return nil
	}
	claims, ok := v.(AuthClaims)
	if !ok {
		return nil
	}
	return claims
}

// UserIDFromContext extracts the authenticated user's ID from the context
// claims. The second return is false when the request is unauthenticated.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	claims := ClaimsFromContext(ctx)
	if claims == nil {
		return uuid.Nil, false
	}
	return claims.GetUserID(), true
}
