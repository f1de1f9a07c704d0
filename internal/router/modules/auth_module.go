package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-profile-auth/internal/interface/http"
)

// AuthModule registers the public session endpoints:
// POST /auth/register, /auth/login, /auth/google, /auth/profile-login
// and GET /auth/verify-token.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/register", m.Handler.Register)
	auth.POST("/login", m.Handler.Login)
	auth.POST("/google", m.Handler.Google)
	auth.POST("/profile-login", m.Handler.ProfileLogin)
	// reads the bearer token itself so failures answer {valid:false}
	auth.GET("/verify-token", m.Handler.VerifyToken)
}
