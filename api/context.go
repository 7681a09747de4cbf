package api

import (
	"context"

	"github.com/avelara/portfolio-backend/auth"
)

type keyType string

const claimsKey keyType = "claims"

func ctxWithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ctxGetClaims returns the verified token claims, or nil when the request
// did not pass the auth middleware.
func ctxGetClaims(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}
