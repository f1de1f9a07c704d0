package application

import (
	"errors"
	"fmt"
)

// Client-facing failures. Their messages are safe to return verbatim.
var (
	ErrMissingFields      = errors.New("please enter all fields")
	ErrInvalidInput       = errors.New("invalid Google token or user data")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
	ErrDuplicateEmail     = errors.New("user already exists")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrAccountNotFound    = errors.New("user does not exist")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Server-side failures. Handlers log the wrapped cause and answer with a
// generic message.
var (
	ErrAccountCreationFailed = errors.New("error creating user account")
	ErrOwningAccountNotFound = errors.New("associated user not found")
	ErrUnexpectedFault       = errors.New("unexpected fault")
)

func unexpected(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUnexpectedFault, op, err)
}
