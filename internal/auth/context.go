// Package auth carries the authenticated principal through request context.
// Operations never read ambient state; the resolver pulls the user out of
// the context the middleware populated.
package auth

import (
	"context"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
)

type userKey struct{}

func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

func UserFrom(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey{}).(*domain.User)
	return user, ok
}
