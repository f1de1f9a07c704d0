package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-profile-auth/internal/domain/entity"
	"github.com/oksasatya/go-profile-auth/internal/domain/repository"
	"github.com/oksasatya/go-profile-auth/pkg/helpers"
)

// fakeRedis implements the two commands the cache uses; any other call panics
// on the nil embedded interface.
type fakeRedis struct {
	redis.Cmdable
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx, "get", key)
	if f.getErr != nil {
		cmd.SetErr(f.getErr)
		return cmd
	}
	v, ok := f.data[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(v)
	return cmd
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx, "set", key)
	if f.setErr != nil {
		cmd.SetErr(f.setErr)
		return cmd
	}
	b, _ := value.([]byte)
	f.data[key] = string(b)
	f.ttls[key] = ttl
	cmd.SetVal("OK")
	return cmd
}

type countingRepo struct {
	accounts map[string]*entity.Account
	calls    int
}

func (r *countingRepo) Create(context.Context, *entity.Account) error { return nil }
func (r *countingRepo) FindByEmail(context.Context, string) (*entity.Account, error) {
	return nil, repository.ErrNotFound
}
func (r *countingRepo) FindByID(_ context.Context, id string) (*entity.Account, error) {
	r.calls++
	if a, ok := r.accounts[id]; ok {
		return a, nil
	}
	return nil, repository.ErrNotFound
}

func TestAccountCache_ReadThrough(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	next := &countingRepo{accounts: map[string]*entity.Account{
		"a1": {ID: "a1", Name: "A", Email: "a@x.com", Credential: entity.LocalCredential{PasswordHash: "h"}, CreatedAt: created, UpdatedAt: created},
		"g1": {ID: "g1", Name: "G", Email: "g@x.com", Credential: entity.FederatedCredential{Provider: entity.ProviderGoogle, Subject: "sub"}},
	}}
	rdb := newFakeRedis()
	c := NewAccountRepository(next, rdb, time.Minute, helpers.NewDiscardLogger())
	ctx := context.Background()

	first, err := c.FindByID(ctx, "a1")
	require.NoError(t, err)
	second, err := c.FindByID(ctx, "a1")
	require.NoError(t, err)

	assert.Equal(t, 1, next.calls)
	assert.Equal(t, first, second)
	assert.Equal(t, time.Minute, rdb.ttls["account:a1"])

	fed, err := c.FindByID(ctx, "g1")
	require.NoError(t, err)
	fed, err = c.FindByID(ctx, "g1")
	require.NoError(t, err)
	sub, ok := fed.FederatedID()
	assert.True(t, ok)
	assert.Equal(t, "sub", sub)
	assert.Equal(t, 2, next.calls)
}

func TestAccountCache_NotFoundIsNotCached(t *testing.T) {
	next := &countingRepo{accounts: map[string]*entity.Account{}}
	rdb := newFakeRedis()
	c := NewAccountRepository(next, rdb, time.Minute, nil)

	_, err := c.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Empty(t, rdb.data)
}

func TestAccountCache_RedisFailureFallsThrough(t *testing.T) {
	next := &countingRepo{accounts: map[string]*entity.Account{
		"a1": {ID: "a1", Credential: entity.LocalCredential{PasswordHash: "h"}},
	}}
	rdb := newFakeRedis()
	rdb.getErr = errors.New("dial tcp: connection refused")
	rdb.setErr = errors.New("dial tcp: connection refused")
	c := NewAccountRepository(next, rdb, time.Minute, helpers.NewDiscardLogger())

	a, err := c.FindByID(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "a1", a.ID)

	_, err = c.FindByID(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}
