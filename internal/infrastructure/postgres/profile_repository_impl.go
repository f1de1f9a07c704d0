package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/go-profile-auth/internal/domain/entity"
	"github.com/oksasatya/go-profile-auth/internal/domain/repository"
)

type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, p *entity.Profile) error {
	p.Username = entity.NormalizeUsername(p.Username)
	row := r.db.QueryRow(ctx, `
		INSERT INTO profiles (account_id, username, password_hash, name, email, avatar_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, p.AccountID, p.Username, p.PasswordHash, p.Name, p.Email, p.PictureURL)

	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateUsername
		}
		return err
	}
	return nil
}

func (r *ProfileRepository) FindByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	p := &entity.Profile{}
	row := r.db.QueryRow(ctx, `
		SELECT id, account_id, username, password_hash, name, email, avatar_url, created_at, updated_at
		FROM profiles
		WHERE username = $1
	`, entity.NormalizeUsername(username))

	if err := row.Scan(&p.ID, &p.AccountID, &p.Username, &p.PasswordHash, &p.Name, &p.Email,
		&p.PictureURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProfileRepository) ListByAccountID(ctx context.Context, accountID string) ([]entity.Profile, error) {
	out := []entity.Profile{}
	if !validID(accountID) {
		return out, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, account_id, username, name, email, avatar_url, created_at, updated_at
		FROM profiles
		WHERE account_id = $1
		ORDER BY created_at DESC
	`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p entity.Profile
		if err := rows.Scan(&p.ID, &p.AccountID, &p.Username, &p.Name, &p.Email,
			&p.PictureURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
