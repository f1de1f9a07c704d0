package repository

import (
	"context"

	"github.com/oksasatya/go-profile-auth/internal/domain/entity"
)

// AccountRepository defines the interface for account-related database operations.
// Lookups return ErrNotFound when nothing matches.
type AccountRepository interface {
	// Create fills ID, CreatedAt and UpdatedAt; it returns ErrDuplicateEmail
	// when the email is already taken.
	Create(ctx context.Context, a *entity.Account) error
	FindByID(ctx context.Context, id string) (*entity.Account, error)
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
}
