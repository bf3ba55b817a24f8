package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/quatton/scitech/pkg/kv"
	"github.com/quatton/scitech/pkg/scapi/schemas"
)

const issuer = "scitech"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrRevokedToken       = errors.New("token has been revoked")
)

// Claims is the application token payload.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AuthService mints and validates the HS256 bearer tokens used by the
// protected endpoints. Revoked token ids are kept in the KV store until the
// token would have expired anyway.
type AuthService struct {
	verifier  Verifier
	revoked   kv.Store
	jwtSecret []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewAuthService(verifier Verifier, revoked kv.Store, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		verifier:  verifier,
		revoked:   revoked,
		jwtSecret: []byte(secret),
		ttl:       ttl,
		now:       time.Now,
	}
}

// AccessTokenTTL returns the lifetime of issued tokens in seconds.
func (s *AuthService) AccessTokenTTL() int {
	return int(s.ttl / time.Second)
}

// Login checks the credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if !s.verifier.Verify(ctx, email, password) {
		return "", ErrInvalidCredentials
	}
	return s.IssueToken(email)
}

func (s *AuthService) IssueToken(email string) (string, error) {
	now := s.now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   email,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ValidateToken verifies signature, issuer and expiry, rejects revoked
// tokens, and returns the principal.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*schemas.User, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revoked.Exists(ctx, revokedKey(claims.ID))
	if err != nil {
		return nil, fmt.Errorf("checking revocation: %w", err)
	}
	if revoked {
		return nil, ErrRevokedToken
	}

	user := &schemas.User{
		Email:   claims.Email,
		TokenID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		user.ExpiresAt = claims.ExpiresAt.Unix()
	}
	return user, nil
}

// Revoke invalidates the principal's token for the rest of its lifetime.
func (s *AuthService) Revoke(ctx context.Context, user *schemas.User) error {
	if user == nil || user.TokenID == "" {
		return ErrInvalidToken
	}

	ttl := time.Unix(user.ExpiresAt, 0).Sub(s.now())
	if user.ExpiresAt == 0 {
		ttl = s.ttl
	}
	if ttl <= 0 {
		return nil
	}
	return s.revoked.Set(ctx, revokedKey(user.TokenID), []byte("1"), ttl)
}

func revokedKey(jti string) string {
	return "revoked:" + jti
}
