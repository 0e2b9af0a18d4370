// Package auth provides password hashing and signed-token utilities.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrHashMismatch indicates the password does not match the stored hash.
var ErrHashMismatch = errors.New("password does not match hash")

// HashPassword creates a salted bcrypt hash of the given password.
// bcrypt embeds a random salt, so hashing the same password twice
// produces different hashes.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password is empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword checks the password against the stored hash.
// bcrypt's comparison is constant-time over the derived key.
// Returns ErrHashMismatch when the password is wrong; other errors
// indicate a malformed hash.
func VerifyPassword(password, encodedHash string) error {
	if encodedHash == "" {
		return ErrHashMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrHashMismatch
	}
	return err
}
