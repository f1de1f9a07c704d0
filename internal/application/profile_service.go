package application

import (
	"context"
	"errors"
	"time"

	"github.com/oksasatya/go-profile-auth/internal/domain/entity"
	repo "github.com/oksasatya/go-profile-auth/internal/domain/repository"
	"github.com/oksasatya/go-profile-auth/pkg/helpers"
)

// ProfileView is the public view of a profile.
type ProfileView struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	ProfilePictureURL string    `json:"profilePictureUrl"`
	CreatedAt         time.Time `json:"createdAt"`
}

// ProfileSummary is the user returned by ProfileLogin. ID is the owning
// account's id.
type ProfileSummary struct {
	AccountSummary
	Username string `json:"username"`
}

func viewOf(p *entity.Profile) ProfileView {
	return ProfileView{
		ID:                p.ID,
		Username:          p.Username,
		Name:              p.Name,
		Email:             p.Email,
		ProfilePictureURL: p.PictureURL,
		CreatedAt:         p.CreatedAt,
	}
}

// CreateProfile adds a profile to an authenticated account. The profile takes
// a copy of the account's name, email and picture.
func (s *Service) CreateProfile(ctx context.Context, accountID, username, password string) (*ProfileView, error) {
	username = entity.NormalizeUsername(username)
	if username == "" || password == "" {
		return nil, ErrMissingFields
	}

	owner, err := s.Accounts.FindByID(ctx, accountID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, unexpected("find account by id", err)
	}

	if _, err := s.Profiles.FindByUsername(ctx, username); err == nil {
		return nil, ErrDuplicateUsername
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, unexpected("find profile by username", err)
	}

	hash, err := s.hash(password)
	if err != nil {
		return nil, err
	}

	p := &entity.Profile{
		AccountID:    owner.ID,
		Username:     username,
		PasswordHash: hash,
		Name:         owner.Name,
		Email:        owner.Email,
		PictureURL:   owner.PictureURL,
	}
	if err := s.Profiles.Create(ctx, p); err != nil {
		if errors.Is(err, repo.ErrDuplicateUsername) {
			return nil, ErrDuplicateUsername
		}
		return nil, unexpected("create profile", err)
	}
	s.notifyProfileCreated(ctx, owner, p)

	v := viewOf(p)
	return &v, nil
}

// ListProfiles returns the account's profiles, newest first.
func (s *Service) ListProfiles(ctx context.Context, accountID string) ([]ProfileView, error) {
	profiles, err := s.Profiles.ListByAccountID(ctx, accountID)
	if err != nil {
		return nil, unexpected("list profiles", err)
	}
	out := make([]ProfileView, 0, len(profiles))
	for i := range profiles {
		out = append(out, viewOf(&profiles[i]))
	}
	return out, nil
}

// ProfileLogin authenticates a profile. The session subject is the owning
// account; the profile id rides along as an extra claim.
func (s *Service) ProfileLogin(ctx context.Context, username, password string) (*AuthResult[ProfileSummary], error) {
	username = entity.NormalizeUsername(username)
	if username == "" || password == "" {
		return nil, ErrMissingFields
	}

	p, err := s.Profiles.FindByUsername(ctx, username)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, unexpected("find profile by username", err)
	}
	if !s.Hasher.Verify(password, p.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	owner, err := s.Accounts.FindByID(ctx, p.AccountID)
	if errors.Is(err, repo.ErrNotFound) {
		s.Logger.WithField("profile_id", p.ID).Error("profile has no owning account")
		return nil, ErrOwningAccountNotFound
	}
	if err != nil {
		return nil, unexpected("find owning account", err)
	}

	summary := ProfileSummary{
		AccountSummary: AccountSummary{
			ID:         owner.ID,
			Name:       p.Name,
			Email:      p.Email,
			ProfilePic: p.PictureURL,
		},
		Username: p.Username,
	}
	return issue(s, helpers.Claims{SubjectID: owner.ID, ProfileID: p.ID, Email: p.Email}, summary)
}
