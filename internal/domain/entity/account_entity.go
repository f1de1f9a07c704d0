package entity

import (
	"strings"
	"time"
)

// ProviderGoogle identifies accounts created through Google sign-in.
const ProviderGoogle = "google"

// Credential is how an Account proves who it is. It is either a
// LocalCredential (bcrypt hash) or a FederatedCredential (provider subject),
// never both and never neither.
type Credential interface {
	isCredential()
}

// LocalCredential holds the bcrypt hash of an account password.
type LocalCredential struct {
	PasswordHash string
}

// FederatedCredential links the account to an identity at an external provider.
type FederatedCredential struct {
	Provider string
	Subject  string
}

func (LocalCredential) isCredential()     {}
func (FederatedCredential) isCredential() {}

// Account is the aggregate root for top-level identities.
type Account struct {
	ID         string
	Name       string
	Email      string
	PictureURL string
	Credential Credential
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PasswordHash returns the local password hash, if the account has one.
func (a *Account) PasswordHash() (string, bool) {
	if c, ok := a.Credential.(LocalCredential); ok && c.PasswordHash != "" {
		return c.PasswordHash, true
	}
	return "", false
}

// FederatedID returns the provider subject for federated accounts.
func (a *Account) FederatedID() (string, bool) {
	if c, ok := a.Credential.(FederatedCredential); ok && c.Subject != "" {
		return c.Subject, true
	}
	return "", false
}

// NormalizeEmail trims and lowercases an address; emails are unique case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
