package http

import (
	"context"

	"usespace-backend/internal/domain"
)

type contextKey int

const principalKey contextKey = iota

func withPrincipal(ctx context.Context, p *domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// principalFrom returns the authenticated caller stored by the auth
// middleware. The bool is false on unauthenticated routes.
func principalFrom(ctx context.Context) (*domain.Principal, bool) {
	p, ok := ctx.Value(principalKey).(*domain.Principal)
	return p, ok
}
