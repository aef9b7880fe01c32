// Package auth provides password hashing and verification utilities
// using the argon2id algorithm for secure credential storage.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2 parameters (OWASP recommended second choice: m=19456, t=2, p=1)
const (
	Argon2Time    = 2
	Argon2Memory  = 19 * 1024 // 19 MB
	Argon2Threads = 1
	Argon2KeyLen  = 32
	Argon2SaltLen = 16
)

// HashPassword derives an argon2id key from the password with a random
// salt and returns the stored form "<keyHex>.<saltHex>".
func HashPassword(password string) (string, error) {
	salt := make([]byte, Argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, Argon2Time, Argon2Memory, Argon2Threads, Argon2KeyLen)

	return hex.EncodeToString(key) + "." + hex.EncodeToString(salt), nil
}

// CheckPassword verifies a password against a stored "<keyHex>.<saltHex>"
// form using a constant-time comparison. A wrong password yields
// (false, nil); a malformed stored form is a data error and yields a
// non-nil error so callers can distinguish the two.
func CheckPassword(password, stored string) (bool, error) {
	keyHex, saltHex, ok := strings.Cut(stored, ".")
	if !ok {
		return false, fmt.Errorf("invalid stored hash format")
	}

	expectedKey, err := hex.DecodeString(keyHex)
	if err != nil {
		return false, fmt.Errorf("decoding stored key: %w", err)
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false, fmt.Errorf("decoding stored salt: %w", err)
	}
	if len(expectedKey) == 0 || len(salt) == 0 {
		return false, fmt.Errorf("invalid stored hash format")
	}

	key := argon2.IDKey([]byte(password), salt, Argon2Time, Argon2Memory, Argon2Threads, uint32(len(expectedKey)))
	return subtle.ConstantTimeCompare(key, expectedKey) == 1, nil
}
