package templates

import (
	"time"

	"github.com/oksasatya/go-profile-auth/config"
)

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04")
	}
}

func WithUsername(username string) Option { return func(d *EmailData) { d.Username = username } }

// NewBaseEmailData fills the common fields from config, then applies opts.
func NewBaseEmailData(cfg *config.Config, typ string, name, email, recipient string, opts ...Option) EmailData {
	d := EmailData{
		Name:           name,
		Email:          email,
		RecipientEmail: recipient,
		Type:           typ,

		CompanyName: cfg.CompanyName,
		AppName:     cfg.AppName,
		SupportURL:  cfg.SupportURL,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewWelcomeData(cfg *config.Config, name, email string, opts ...Option) map[string]any {
	d := NewBaseEmailData(cfg, Welcome, name, email, email, opts...)
	return ToMap(d)
}

// NewProfileCreatedData is sent to the owning account, not to the profile.
func NewProfileCreatedData(cfg *config.Config, ownerName, ownerEmail, username string, opts ...Option) map[string]any {
	opts = append([]Option{WithUsername(username)}, opts...)
	d := NewBaseEmailData(cfg, ProfileCreated, ownerName, ownerEmail, ownerEmail, opts...)
	return ToMap(d)
}
