// Package auth provides password hashing and session token functionality.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// bcryptCost is the fixed work factor for password hashes.
	// Cost 12 keeps a single hash in the tens of milliseconds on current
	// hardware, slow enough to blunt offline guessing.
	bcryptCost = 12

	// bcrypt silently truncates at 72 bytes; longer input is rejected outright
	// and also caps the CPU spent on hostile oversized passwords.
	maxPasswordLength = 72
)

// HashPassword creates a bcrypt hash of the password.
// The salt is generated by bcrypt and embedded in the returned string.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	if len(password) > maxPasswordLength {
		return "", errors.New("password exceeds maximum length")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword verifies a password against a bcrypt hash.
// bcrypt's comparison is constant-time; a malformed stored hash is reported as
// a plain mismatch to avoid leaking hash validation details.
func VerifyPassword(encodedHash, password string) bool {
	if len(password) > maxPasswordLength {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}
