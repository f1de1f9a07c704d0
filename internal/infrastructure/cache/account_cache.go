package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-profile-auth/internal/domain/entity"
	"github.com/oksasatya/go-profile-auth/internal/domain/repository"
	"github.com/oksasatya/go-profile-auth/pkg/helpers"
)

func accountKey(id string) string {
	return "account:" + id
}

// cachedAccount is the JSON form of an account kept in redis.
type cachedAccount struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PictureURL   string    `json:"avatar_url"`
	PasswordHash *string   `json:"password_hash,omitempty"`
	Provider     string    `json:"provider,omitempty"`
	Subject      string    `json:"subject,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toCached(a *entity.Account) cachedAccount {
	c := cachedAccount{
		ID:         a.ID,
		Name:       a.Name,
		Email:      a.Email,
		PictureURL: a.PictureURL,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
	switch cred := a.Credential.(type) {
	case entity.LocalCredential:
		h := cred.PasswordHash
		c.PasswordHash = &h
	case entity.FederatedCredential:
		c.Provider = cred.Provider
		c.Subject = cred.Subject
	}
	return c
}

func (c cachedAccount) toEntity() *entity.Account {
	a := &entity.Account{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		PictureURL: c.PictureURL,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
	if c.PasswordHash != nil {
		a.Credential = entity.LocalCredential{PasswordHash: *c.PasswordHash}
	} else {
		a.Credential = entity.FederatedCredential{Provider: c.Provider, Subject: c.Subject}
	}
	return a
}

// AccountRepository is a read-through redis cache in front of another
// AccountRepository. Only FindByID is cached: accounts are never updated, so
// entries can live until their TTL without invalidation. Redis failures are
// logged and the call falls through to the wrapped repository.
type AccountRepository struct {
	Next   repository.AccountRepository
	Redis  redis.Cmdable
	TTL    time.Duration
	Logger *logrus.Logger
}

func NewAccountRepository(next repository.AccountRepository, rdb redis.Cmdable, ttl time.Duration, logger *logrus.Logger) *AccountRepository {
	return &AccountRepository{Next: next, Redis: rdb, TTL: ttl, Logger: logger}
}

func (r *AccountRepository) Create(ctx context.Context, a *entity.Account) error {
	return r.Next.Create(ctx, a)
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return r.Next.FindByEmail(ctx, email)
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	key := accountKey(id)

	var cached cachedAccount
	found, err := helpers.RedisGetJSON(ctx, r.Redis, key, &cached)
	if err != nil {
		r.warn(err, key, "account cache read failed")
	} else if found {
		return cached.toEntity(), nil
	}

	a, err := r.Next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := helpers.RedisSetJSON(ctx, r.Redis, key, toCached(a), r.TTL); err != nil {
		r.warn(err, key, "account cache write failed")
	}
	return a, nil
}

func (r *AccountRepository) warn(err error, key, msg string) {
	if r.Logger != nil {
		r.Logger.WithError(err).WithField("key", key).Warn(msg)
	}
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
