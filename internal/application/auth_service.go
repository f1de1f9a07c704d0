package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oksasatya/go-profile-auth/internal/domain/entity"
	repo "github.com/oksasatya/go-profile-auth/internal/domain/repository"
	"github.com/oksasatya/go-profile-auth/pkg/helpers"
)

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// Register creates a local account and starts a session for it.
func (s *Service) Register(ctx context.Context, name, email, password string) (*AuthResult[AccountSummary], error) {
	if blank(name) || blank(email) || password == "" {
		return nil, ErrMissingFields
	}
	email = entity.NormalizeEmail(email)

	if _, err := s.Accounts.FindByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, unexpected("find account by email", err)
	}

	hash, err := s.hash(password)
	if err != nil {
		return nil, err
	}

	a := &entity.Account{
		Name:       strings.TrimSpace(name),
		Email:      email,
		Credential: entity.LocalCredential{PasswordHash: hash},
	}
	if err := s.Accounts.Create(ctx, a); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, unexpected("create account", err)
	}
	s.notifyAccountCreated(ctx, a)

	return issue(s, helpers.Claims{SubjectID: a.ID, Email: a.Email}, summarize(a))
}

// Login authenticates an account with email and password.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult[AccountSummary], error) {
	if blank(email) || password == "" {
		return nil, ErrMissingFields
	}

	a, err := s.Accounts.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, unexpected("find account by email", err)
	}

	// federated accounts have no local password and can never match
	hash, ok := a.PasswordHash()
	if !ok || !s.Hasher.Verify(password, hash) {
		return nil, ErrInvalidCredentials
	}

	return issue(s, helpers.Claims{SubjectID: a.ID, Email: a.Email}, summarize(a))
}

// ProviderUser is the user profile the client received from Google.
type ProviderUser struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Sub     string `json:"sub"`
}

// FederatedLogin signs in with a Google identity, creating the account on
// first use. An existing account with the same email is reused regardless of
// how it was created.
func (s *Service) FederatedLogin(ctx context.Context, providerToken string, user *ProviderUser) (*AuthResult[AccountSummary], error) {
	if providerToken == "" || user == nil || blank(user.Email) || blank(user.Sub) {
		return nil, ErrInvalidInput
	}
	email := entity.NormalizeEmail(user.Email)

	if s.Google != nil {
		id, err := s.Google.Verify(ctx, providerToken)
		if err != nil {
			s.Logger.WithError(err).Warn("google id token rejected")
			return nil, ErrInvalidInput
		}
		if id.Subject != user.Sub || entity.NormalizeEmail(id.Email) != email {
			s.Logger.WithField("sub", user.Sub).Warn("google id token does not match submitted user")
			return nil, ErrInvalidInput
		}
	}

	a, err := s.Accounts.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		a, err = s.createFederated(ctx, email, user)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, unexpected("find account by email", err)
	}

	summary := summarize(a)
	if summary.ProfilePic == "" {
		summary.ProfilePic = user.Picture
	}
	return issue(s, helpers.Claims{SubjectID: a.ID, Email: a.Email}, summary)
}

func (s *Service) createFederated(ctx context.Context, email string, user *ProviderUser) (*entity.Account, error) {
	name := strings.TrimSpace(user.Name)
	if name == "" {
		name = email
	}
	a := &entity.Account{
		Name:       name,
		Email:      email,
		PictureURL: user.Picture,
		Credential: entity.FederatedCredential{Provider: entity.ProviderGoogle, Subject: user.Sub},
	}
	err := s.Accounts.Create(ctx, a)
	if errors.Is(err, repo.ErrDuplicateEmail) {
		// a concurrent sign-in created it first
		if existing, findErr := s.Accounts.FindByEmail(ctx, email); findErr == nil {
			return existing, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAccountCreationFailed, err)
	}
	s.notifyAccountCreated(ctx, a)
	return a, nil
}

// VerifyResult reports whether a token is valid and who it belongs to.
type VerifyResult struct {
	Valid bool            `json:"valid"`
	User  *AccountSummary `json:"user,omitempty"`
}

// VerifyToken resolves a session token to its account. Every failure is a
// flat {valid:false}; err is only set for faults worth logging.
func (s *Service) VerifyToken(ctx context.Context, token string) (VerifyResult, error) {
	claims, err := s.JWT.Verify(token)
	if err != nil {
		return VerifyResult{}, nil
	}
	a, err := s.Accounts.FindByID(ctx, claims.SubjectID)
	if errors.Is(err, repo.ErrNotFound) {
		return VerifyResult{}, nil
	}
	if err != nil {
		return VerifyResult{}, unexpected("find account by id", err)
	}
	summary := summarize(a)
	return VerifyResult{Valid: true, User: &summary}, nil
}

// Authenticate decodes a bearer token for the auth middleware.
func (s *Service) Authenticate(token string) (*helpers.Claims, error) {
	claims, err := s.JWT.Verify(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
