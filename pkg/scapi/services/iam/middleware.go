package iam

import (
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// Middleware resolves a bearer token into a principal. Requests without a
// valid token pass through anonymously; protected operations reject them.
func (s *IAMService) Middleware() func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token := BearerToken(ctx.Header("Authorization"))
		if token != "" {
			if user, err := s.auth.ValidateToken(ctx.Context(), token); err == nil {
				s.logger.Debug("authenticated", "email", user.Email)
				ctx = huma.WithValue(ctx, principalKey, user)
			} else {
				s.logger.Warn("invalid token", "error", err)
			}
		}

		next(ctx)
	}
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
