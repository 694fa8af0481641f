package util

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// ValidatePassword enforces the sign-up password policy.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return errors.New("password must be at least 8 characters long")
	}
	return nil
}

// HashPassword produces a bcrypt hash of the plaintext. The salt is
// generated by bcrypt and embedded in the returned string.
func HashPassword(password string) (string, error) {
	if len(password) == 0 {
		return "", errors.New("password cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
// Malformed hashes simply fail the check.
func CheckPassword(password, storedHash string) bool {
	if password == "" || storedHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}
