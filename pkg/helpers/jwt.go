package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad structure, bad
// signature, wrong algorithm and expiry are not told apart.
var ErrInvalidToken = errors.New("invalid token")

// Claims carried by session tokens. SubjectID is always the account id;
// ProfileID is only set for profile logins.
type Claims struct {
	SubjectID string `json:"id"`
	ProfileID string `json:"profileId,omitempty"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// JWTManager handles generation and validation of session tokens
type JWTManager struct {
	Secret []byte
	TTL    time.Duration

	now func() time.Time
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTManager{Secret: []byte(secret), TTL: ttl, now: time.Now}
}

// Issue signs the claims with HS256. A non-positive ttl uses the manager default.
func (m *JWTManager) Issue(claims Claims, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = m.TTL
	}
	now := m.now()
	exp := now.Add(ttl)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Verify checks signature and expiry and returns the decoded claims.
func (m *JWTManager) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !tkn.Valid || claims.SubjectID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
