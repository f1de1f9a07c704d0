package entity

import (
	"strings"
	"time"
)

// Profile is a secondary named identity owned by exactly one Account.
// Name, Email and PictureURL are copied from the account when the profile is
// created and are not kept in sync afterwards.
type Profile struct {
	ID           string
	AccountID    string
	Username     string
	PasswordHash string
	Name         string
	Email        string
	PictureURL   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeUsername trims surrounding whitespace; usernames are case-sensitive.
func NormalizeUsername(username string) string {
	return strings.TrimSpace(username)
}
