package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength      = 16
	hashIterations  = 100000
	derivedKeyBytes = 32
)

// HashPassword derives a PBKDF2-HMAC-SHA256 key from the password with a
// fresh random salt and returns "salt_hex:hash_hex".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hashWithSalt(password, salt), nil
}

func hashWithSalt(password string, salt []byte) string {
	key := pbkdf2.Key([]byte(password), salt, hashIterations, derivedKeyBytes, sha256.New)
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key)
}

// VerifyPassword re-derives the key with the stored salt and compares
// digests. A malformed stored value verifies as false rather than erroring;
// the caller treats it as invalid credentials either way.
func VerifyPassword(stored, candidate string) bool {
	saltHex, hashHex, ok := strings.Cut(stored, ":")
	if !ok {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	expected, err := hex.DecodeString(hashHex)
	if err != nil {
		return false
	}
	key := pbkdf2.Key([]byte(candidate), salt, hashIterations, len(expected), sha256.New)
	return subtle.ConstantTimeCompare(key, expected) == 1
}
