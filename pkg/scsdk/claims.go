package scsdk

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what the CLI can learn from a token without the server secret.
type TokenInfo struct {
	Email     string
	ID        string
	Issuer    string
	ExpiresAt time.Time
}

// ParseTokenInfo decodes the claims without verifying the signature. It is
// only used for display; the server remains the authority.
func ParseTokenInfo(tokenStr string) (*TokenInfo, error) {
	var claims struct {
		Email string `json:"email"`
		jwt.RegisteredClaims
	}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, &claims); err != nil {
		return nil, err
	}

	info := &TokenInfo{
		Email:  claims.Email,
		ID:     claims.ID,
		Issuer: claims.Issuer,
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}

// Expired reports whether the token expires within leeway of now.
func (t *TokenInfo) Expired(now time.Time, leeway time.Duration) bool {
	if t.ExpiresAt.IsZero() {
		return false
	}
	return !now.Add(leeway).Before(t.ExpiresAt)
}
