package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewRefreshToken returns an opaque random token. The token carries no
// claims; the store maps it back to an account.
func NewRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("cannot generate refresh token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
