package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-profile-auth/internal/interface/http"
	"github.com/oksasatya/go-profile-auth/internal/interface/middleware"
)

// ProfileModule wires the profile endpoints behind bearer auth.
type ProfileModule struct {
	Handler *handlers.ProfileHandler
	Authn   middleware.Authenticator
}

func NewProfileModule(h *handlers.ProfileHandler, authn middleware.Authenticator) *ProfileModule {
	return &ProfileModule{Handler: h, Authn: authn}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	p := rg.Group("/profile")
	p.Use(middleware.Auth(m.Authn))
	{
		p.POST("/create", m.Handler.Create)
		p.GET("/my-profiles", m.Handler.List)
	}
}
