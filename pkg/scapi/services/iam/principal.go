package iam

import (
	"context"

	"github.com/quatton/scitech/pkg/scapi/schemas"
)

type ctxKey string

const principalKey ctxKey = "scitech.principal"

func (s *IAMService) Principal(ctx context.Context) (*schemas.User, bool) {
	if v := ctx.Value(principalKey); v != nil {
		if p, ok := v.(*schemas.User); ok {
			return p, true
		}
	}
	return nil, false
}

// Get returns nil when the request carried no valid token.
func (s *IAMService) Get(ctx context.Context) *schemas.User {
	if s == nil {
		return nil
	}
	if p, ok := s.Principal(ctx); ok && p != nil {
		return p
	}
	return nil
}

// WithPrincipal attaches a principal to ctx.
func WithPrincipal(ctx context.Context, user *schemas.User) context.Context {
	return context.WithValue(ctx, principalKey, user)
}
