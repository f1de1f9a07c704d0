package repository

import (
	"context"

	"github.com/oksasatya/go-profile-auth/internal/domain/entity"
)

// ProfileRepository defines the interface for profile-related database operations.
type ProfileRepository interface {
	// Create returns ErrDuplicateUsername when the username is already taken.
	Create(ctx context.Context, p *entity.Profile) error
	FindByUsername(ctx context.Context, username string) (*entity.Profile, error)
	// ListByAccountID returns the account's profiles newest first with
	// PasswordHash left empty.
	ListByAccountID(ctx context.Context, accountID string) ([]entity.Profile, error)
}
