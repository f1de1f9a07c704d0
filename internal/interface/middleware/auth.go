package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-profile-auth/pkg/helpers"
	"github.com/oksasatya/go-profile-auth/pkg/response"
)

// Context keys set by Auth.
const (
	CtxAccountIDKey = "accountID"
	CtxProfileIDKey = "profileID"
	CtxEmailKey     = "email"
)

// Authenticator decodes a session token.
type Authenticator interface {
	Authenticate(token string) (*helpers.Claims, error)
}

// Auth requires a valid Bearer session token. It sets accountID, profileID
// (empty for account sessions) and email in the Gin context on success.
func Auth(authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, "No authentication token, access denied")
			return
		}
		claims, err := authn.Authenticate(token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Token verification failed, authorization denied")
			return
		}

		c.Set(CtxAccountIDKey, claims.SubjectID)
		c.Set(CtxProfileIDKey, claims.ProfileID)
		c.Set(CtxEmailKey, claims.Email)
		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// BearerToken returns the token from an Authorization header, or "".
func BearerToken(c *gin.Context) string {
	return bearerToken(c.GetHeader("Authorization"))
}
