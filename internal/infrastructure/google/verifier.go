package google

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"
)

// Identity is what Google asserts about the signed-in user.
type Identity struct {
	Subject string
	Email   string
}

// tokenValidator is satisfied by *idtoken.Validator.
type tokenValidator interface {
	Validate(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)
}

// Verifier checks Google ID tokens against the configured OAuth client id.
type Verifier struct {
	ClientID  string
	validator tokenValidator
}

func NewVerifier(ctx context.Context, clientID string) (*Verifier, error) {
	v, err := idtoken.NewValidator(ctx)
	if err != nil {
		return nil, fmt.Errorf("create google token validator: %w", err)
	}
	return &Verifier{ClientID: clientID, validator: v}, nil
}

// Verify validates signature, issuer, expiry and audience of the ID token and
// returns the asserted identity.
func (v *Verifier) Verify(ctx context.Context, idToken string) (Identity, error) {
	payload, err := v.validator.Validate(ctx, idToken, v.ClientID)
	if err != nil {
		return Identity{}, err
	}
	if payload.Subject == "" {
		return Identity{}, errors.New("id token has no subject")
	}
	email, _ := payload.Claims["email"].(string)
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return Identity{}, errors.New("google email is not verified")
	}
	return Identity{Subject: payload.Subject, Email: email}, nil
}
