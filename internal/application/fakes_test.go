package application

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/go-profile-auth/internal/domain/entity"
	repo "github.com/oksasatya/go-profile-auth/internal/domain/repository"
	"github.com/oksasatya/go-profile-auth/internal/infrastructure/google"
	"github.com/oksasatya/go-profile-auth/pkg/helpers"
)

type memAccounts struct {
	mu      sync.Mutex
	byID    map[string]*entity.Account
	err     error // returned by every call when set
	failNew error // returned by Create when set
}

func newMemAccounts() *memAccounts {
	return &memAccounts{byID: map[string]*entity.Account{}}
}

func (m *memAccounts) Create(_ context.Context, a *entity.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.failNew != nil {
		return m.failNew
	}
	for _, x := range m.byID {
		if x.Email == a.Email {
			return repo.ErrDuplicateEmail
		}
	}
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	cp := *a
	m.byID[a.ID] = &cp
	return nil
}

func (m *memAccounts) FindByID(_ context.Context, id string) (*entity.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	a, ok := m.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memAccounts) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	email = entity.NormalizeEmail(email)
	for _, a := range m.byID {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memAccounts) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byID)
}

type memProfiles struct {
	mu   sync.Mutex
	rows []entity.Profile
	err  error
}

func (m *memProfiles) Create(_ context.Context, p *entity.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, x := range m.rows {
		if x.Username == p.Username {
			return repo.ErrDuplicateUsername
		}
	}
	p.ID = uuid.NewString()
	// strictly increasing so ordering is deterministic
	p.CreatedAt = time.Unix(int64(len(m.rows)+1), 0)
	p.UpdatedAt = p.CreatedAt
	m.rows = append(m.rows, *p)
	return nil
}

func (m *memProfiles) FindByUsername(_ context.Context, username string) (*entity.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, x := range m.rows {
		if x.Username == username {
			cp := x
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memProfiles) ListByAccountID(_ context.Context, accountID string) ([]entity.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []entity.Profile
	for _, x := range m.rows {
		if x.AccountID == accountID {
			x.PasswordHash = ""
			out = append(out, x)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type recordingNotifier struct {
	mu       sync.Mutex
	accounts []string
	profiles []string
}

func (n *recordingNotifier) AccountCreated(_ context.Context, a *entity.Account) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.accounts = append(n.accounts, a.Email)
}

func (n *recordingNotifier) ProfileCreated(_ context.Context, owner *entity.Account, p *entity.Profile) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.profiles = append(n.profiles, owner.Email+"/"+p.Username)
}

type stubVerifier struct {
	id  google.Identity
	err error
}

func (v stubVerifier) Verify(context.Context, string) (google.Identity, error) {
	return v.id, v.err
}

const testSecret = "test-secret"

type fixture struct {
	svc      *Service
	accounts *memAccounts
	profiles *memProfiles
	notifier *recordingNotifier
}

func newFixture() *fixture {
	f := &fixture{
		accounts: newMemAccounts(),
		profiles: &memProfiles{},
		notifier: &recordingNotifier{},
	}
	logger := helpers.NewDiscardLogger()
	f.svc = NewService(
		f.accounts,
		f.profiles,
		helpers.NewPasswordHasher(bcrypt.MinCost, logger),
		helpers.NewJWTManager(testSecret, time.Hour),
		nil,
		f.notifier,
		logger,
	)
	return f
}
