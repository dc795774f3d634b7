package utils

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is bcrypt's input limit. It counts bytes, not characters.
const MaxPasswordBytes = 72

// CheckPasswordLength rejects passwords bcrypt cannot hash.
func CheckPasswordLength(field, password string) error {
	if len(password) > MaxPasswordBytes {
		return NewValidationError(field, fmt.Sprintf("%s must be at most %d bytes", field, MaxPasswordBytes))
	}
	return nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}

// NormalizeEmail is applied before every account write and lookup so that
// uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
