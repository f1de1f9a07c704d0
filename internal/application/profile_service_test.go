package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_RegisterProfileLogin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	reg, err := f.svc.Register(ctx, "A", "a@x.com", "secret123")
	require.NoError(t, err)
	v, err := f.svc.VerifyToken(ctx, reg.Token)
	require.NoError(t, err)
	require.True(t, v.Valid)
	assert.Equal(t, "a@x.com", v.User.Email)

	_, err = f.svc.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	p, err := f.svc.CreateProfile(ctx, reg.User.ID, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Username)
	assert.Equal(t, "A", p.Name)
	assert.Equal(t, "a@x.com", p.Email)
	assert.Equal(t, []string{"a@x.com/alice"}, f.notifier.profiles)

	login, err := f.svc.ProfileLogin(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)
	assert.Equal(t, "alice", login.User.Username)

	claims, err := f.svc.JWT.Verify(login.Token)
	require.NoError(t, err)
	assert.Equal(t, p.ID, claims.ProfileID)
	assert.Equal(t, reg.User.ID, claims.SubjectID)
}

func TestCreateProfile_Validation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	reg, err := f.svc.Register(ctx, "A", "a@x.com", "secret123")
	require.NoError(t, err)

	_, err = f.svc.CreateProfile(ctx, reg.User.ID, "  ", "pw")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = f.svc.CreateProfile(ctx, reg.User.ID, "bob", "")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = f.svc.CreateProfile(ctx, "3f1c1c0e-0000-4000-8000-000000000000", "bob", "pw")
	assert.ErrorIs(t, err, ErrAccountNotFound)

	assert.Empty(t, f.profiles.rows)
}

func TestCreateProfile_UsernameIsGloballyUnique(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a, err := f.svc.Register(ctx, "A", "a@x.com", "pw")
	require.NoError(t, err)
	b, err := f.svc.Register(ctx, "B", "b@x.com", "pw")
	require.NoError(t, err)

	_, err = f.svc.CreateProfile(ctx, a.User.ID, "alice", "pw1")
	require.NoError(t, err)

	_, err = f.svc.CreateProfile(ctx, b.User.ID, " alice ", "pw2")
	assert.ErrorIs(t, err, ErrDuplicateUsername)
	assert.Len(t, f.profiles.rows, 1)
}

func TestCreateProfile_SnapshotsAccountFields(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res, err := f.svc.FederatedLogin(ctx, "id-token", &ProviderUser{Email: "g@x.com", Name: "G", Picture: "https://img/g.png", Sub: "s"})
	require.NoError(t, err)

	p, err := f.svc.CreateProfile(ctx, res.User.ID, "gee", "pw")
	require.NoError(t, err)
	assert.Equal(t, "https://img/g.png", p.ProfilePictureURL)

	// later account changes are not reflected
	f.accounts.byID[res.User.ID].Name = "Renamed"
	login, err := f.svc.ProfileLogin(ctx, "gee", "pw")
	require.NoError(t, err)
	assert.Equal(t, "G", login.User.Name)
}

func TestListProfiles(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a, err := f.svc.Register(ctx, "A", "a@x.com", "pw")
	require.NoError(t, err)
	b, err := f.svc.Register(ctx, "B", "b@x.com", "pw")
	require.NoError(t, err)

	for _, u := range []string{"one", "two"} {
		_, err := f.svc.CreateProfile(ctx, a.User.ID, u, "pw")
		require.NoError(t, err)
	}
	_, err = f.svc.CreateProfile(ctx, b.User.ID, "other", "pw")
	require.NoError(t, err)

	list, err := f.svc.ListProfiles(ctx, a.User.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "two", list[0].Username)
	assert.Equal(t, "one", list[1].Username)

	empty, err := f.svc.ListProfiles(ctx, "3f1c1c0e-0000-4000-8000-000000000000")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	f.profiles.err = errors.New("timeout")
	_, err = f.svc.ListProfiles(ctx, a.User.ID)
	assert.ErrorIs(t, err, ErrUnexpectedFault)
}

func TestProfileLogin_Failures(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a, err := f.svc.Register(ctx, "A", "a@x.com", "pw")
	require.NoError(t, err)
	_, err = f.svc.CreateProfile(ctx, a.User.ID, "alice", "pw1")
	require.NoError(t, err)

	_, err = f.svc.ProfileLogin(ctx, "", "pw1")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = f.svc.ProfileLogin(ctx, "bob", "pw1")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = f.svc.ProfileLogin(ctx, "alice", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	long := strings.Repeat("q", 72)
	_, err = f.svc.CreateProfile(ctx, a.User.ID, "bob", long)
	require.NoError(t, err)
	_, err = f.svc.ProfileLogin(ctx, "bob", long+"zzz")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	delete(f.accounts.byID, a.User.ID)
	_, err = f.svc.ProfileLogin(ctx, "alice", "pw1")
	assert.ErrorIs(t, err, ErrOwningAccountNotFound)
}
