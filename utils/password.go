package utils

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CheckAdminSecret compares a submitted secret against the configured
// admin password. When the configured value is a bcrypt hash it is
// verified as one; otherwise the comparison is constant-time over the
// raw bytes. Plain storage is supported for parity with the original
// deployment, hashed storage is the recommended setup.
func CheckAdminSecret(configured, submitted string) bool {
	if isBcryptHash(configured) {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(submitted)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(submitted)) == 1
}

// HashAdminSecret returns the bcrypt hash of a secret, for operators who
// want to store a hash instead of the plain password.
func HashAdminSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
