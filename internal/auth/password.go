package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/khairuladnan/StudentMS_Backend/internal/config"
	"github.com/khairuladnan/StudentMS_Backend/internal/constants"
)

// PasswordConfig holds the parameters for bcrypt password hashing
type PasswordConfig struct {
	Cost int
}

// DefaultPasswordConfig returns the default configuration for password hashing
func DefaultPasswordConfig() *PasswordConfig {
	return &PasswordConfig{
		Cost: constants.DefaultBcryptCost,
	}
}

// ConfigFromAppConfig creates a password config from the application config
func ConfigFromAppConfig(cfg *config.AppConfig) *PasswordConfig {
	return &PasswordConfig{
		Cost: cfg.Password.BcryptCost,
	}
}

// HashPassword generates a bcrypt hash of the provided password. The salt and
// cost parameters are embedded in the returned digest, so the digest alone is
// enough to verify a candidate password later.
func HashPassword(password string, cfg *PasswordConfig) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cfg.Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a candidate password against a stored bcrypt digest.
// A mismatch is reported as (false, nil); only a malformed digest or an
// internal bcrypt failure produces an error.
func VerifyPassword(password, encodedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("failed to verify password: %w", err)
}
