package helpers

import (
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned by Hash for inputs bcrypt cannot represent (over 72 bytes).
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

// maxPasswordBytes is bcrypt's input limit; later bytes are ignored by the algorithm.
const maxPasswordBytes = 72

// PasswordHasher hashes and verifies passwords with bcrypt at a fixed cost.
type PasswordHasher struct {
	Cost   int
	Logger *logrus.Logger
}

func NewPasswordHasher(cost int, logger *logrus.Logger) *PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{Cost: cost, Logger: logger}
}

// Hash hashes the plain text password using bcrypt with a fresh salt
func (h *PasswordHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify compares a bcrypt hash with a plain password. A malformed hash is
// logged and reported as a mismatch. Inputs Hash would reject never match,
// otherwise any suffix past byte 72 would verify.
func (h *PasswordHasher) Verify(plain, hash string) bool {
	if len(plain) > maxPasswordBytes {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return true
	}
	if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) && h.Logger != nil {
		h.Logger.WithError(err).Error("password hash could not be checked")
	}
	return false
}
