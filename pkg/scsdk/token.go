package scsdk

import (
	"errors"
	"strings"

	"github.com/zalando/go-keyring"
)

const keyringService = "scitech"

// normalizeKey converts a baseURL into a stable key name for keyring storage,
// so http://host:3002/ and http://HOST:3002 share one entry.
func normalizeKey(baseURL string) string {
	s := strings.TrimSpace(baseURL)
	s = strings.TrimRight(s, "/")
	s = strings.ToLower(s)
	return s
}

// SaveToken stores the token in the OS keyring under the normalized baseURL.
func SaveToken(baseURL string, token string) error {
	return keyring.Set(keyringService, normalizeKey(baseURL), token)
}

// LoadToken returns the stored token for baseURL, or "" when there is none.
func LoadToken(baseURL string) (string, error) {
	token, err := keyring.Get(keyringService, normalizeKey(baseURL))
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	return token, err
}

// DeleteToken removes the token entry for baseURL. A missing entry is not an
// error.
func DeleteToken(baseURL string) error {
	err := keyring.Delete(keyringService, normalizeKey(baseURL))
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
