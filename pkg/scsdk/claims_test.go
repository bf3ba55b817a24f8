package scsdk

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestParseTokenInfo(t *testing.T) {
	exp := time.Unix(2_000_000_000, 0)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "admin@example.com",
		"jti":   "abc-123",
		"iss":   "scitech",
		"exp":   exp.Unix(),
	})
	tokenStr, err := token.SignedString([]byte("whatever"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	info, err := ParseTokenInfo(tokenStr)
	if err != nil {
		t.Fatalf("ParseTokenInfo: %v", err)
	}
	if info.Email != "admin@example.com" || info.ID != "abc-123" || info.Issuer != "scitech" {
		t.Errorf("unexpected info: %+v", info)
	}
	if !info.ExpiresAt.Equal(exp) {
		t.Errorf("expires at %s, want %s", info.ExpiresAt, exp)
	}

	if info.Expired(exp.Add(-time.Hour), time.Minute) {
		t.Error("token should still be valid an hour before expiry")
	}
	if !info.Expired(exp.Add(-30*time.Second), time.Minute) {
		t.Error("token inside the leeway should count as expired")
	}
}

func TestParseTokenInfo_Garbage(t *testing.T) {
	if _, err := ParseTokenInfo("not-a-token"); err == nil {
		t.Fatal("expected an error")
	}
}
