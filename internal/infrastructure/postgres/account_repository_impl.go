package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/go-profile-auth/internal/domain/entity"
	"github.com/oksasatya/go-profile-auth/internal/domain/repository"
)

const accountColumns = `id, name, email, password_hash, google_id, avatar_url, created_at, updated_at`

type AccountRepository struct {
	db DBTX
}

func NewAccountRepository(db DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, a *entity.Account) error {
	var passwordHash, googleID *string
	switch c := a.Credential.(type) {
	case entity.LocalCredential:
		passwordHash = &c.PasswordHash
	case entity.FederatedCredential:
		if c.Provider != entity.ProviderGoogle {
			return fmt.Errorf("unsupported identity provider %q", c.Provider)
		}
		googleID = &c.Subject
	default:
		return errors.New("account has no credential")
	}

	a.Email = entity.NormalizeEmail(a.Email)
	row := r.db.QueryRow(ctx, `
		INSERT INTO accounts (name, email, password_hash, google_id, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, a.Name, a.Email, passwordHash, googleID, a.PictureURL)

	if err := row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}
	return scanAccount(r.db.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE id = $1
	`, id))
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return scanAccount(r.db.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE lower(email) = $1
	`, entity.NormalizeEmail(email)))
}

func scanAccount(row pgx.Row) (*entity.Account, error) {
	a := &entity.Account{}
	var passwordHash, googleID *string
	if err := row.Scan(&a.ID, &a.Name, &a.Email, &passwordHash, &googleID, &a.PictureURL,
		&a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	switch {
	case passwordHash != nil:
		a.Credential = entity.LocalCredential{PasswordHash: *passwordHash}
	case googleID != nil:
		a.Credential = entity.FederatedCredential{Provider: entity.ProviderGoogle, Subject: *googleID}
	default:
		return nil, fmt.Errorf("account %s has no credential", a.ID)
	}
	return a, nil
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
