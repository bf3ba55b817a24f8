package auth

import (
	"context"
	"crypto/subtle"
)

// Verifier decides whether an email/password pair identifies an operator.
// Swap in a real identity provider by implementing this interface.
type Verifier interface {
	Verify(ctx context.Context, email, password string) bool
}

// StaticVerifier accepts exactly one configured credential pair.
type StaticVerifier struct {
	Email    string
	Password string
}

func (v StaticVerifier) Verify(_ context.Context, email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(v.Email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.Password)) == 1
	return emailOK && passOK && v.Email != ""
}
