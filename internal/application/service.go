package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-profile-auth/internal/domain/entity"
	repo "github.com/oksasatya/go-profile-auth/internal/domain/repository"
	"github.com/oksasatya/go-profile-auth/internal/infrastructure/google"
	"github.com/oksasatya/go-profile-auth/pkg/helpers"
)

// IdentityVerifier validates a federated provider token. A nil verifier means
// provider tokens are accepted without a signature check.
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (google.Identity, error)
}

// Service implements the account and profile use cases.
type Service struct {
	Accounts repo.AccountRepository
	Profiles repo.ProfileRepository
	Hasher   *helpers.PasswordHasher
	JWT      *helpers.JWTManager
	Google   IdentityVerifier
	Notifier Notifier
	Logger   *logrus.Logger
}

func NewService(accounts repo.AccountRepository, profiles repo.ProfileRepository, hasher *helpers.PasswordHasher, jwt *helpers.JWTManager, verifier IdentityVerifier, notifier Notifier, logger *logrus.Logger) *Service {
	return &Service{
		Accounts: accounts,
		Profiles: profiles,
		Hasher:   hasher,
		JWT:      jwt,
		Google:   verifier,
		Notifier: notifier,
		Logger:   logger,
	}
}

// AccountSummary is the public view of an account.
type AccountSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ProfilePic string `json:"profilePic"`
}

// AuthResult is returned by every operation that starts a session.
type AuthResult[T any] struct {
	Token     string
	ExpiresAt time.Time
	User      T
}

func summarize(a *entity.Account) AccountSummary {
	return AccountSummary{ID: a.ID, Name: a.Name, Email: a.Email, ProfilePic: a.PictureURL}
}

func (s *Service) hash(password string) (string, error) {
	h, err := s.Hasher.Hash(password)
	if errors.Is(err, helpers.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", unexpected("hash password", err)
	}
	return h, nil
}

func issue[T any](s *Service, claims helpers.Claims, user T) (*AuthResult[T], error) {
	tok, exp, err := s.JWT.Issue(claims, 0)
	if err != nil {
		return nil, unexpected("sign token", err)
	}
	return &AuthResult[T]{Token: tok, ExpiresAt: exp, User: user}, nil
}
