package router

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-profile-auth/internal/interface/http"
)

type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	api := engine.Group("/api")
	return &Registry{Engine: engine, API: api}
}

func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

// RegisterAll mounts every module under /api. The root /health probe sits
// outside the group so load balancers need no prefix.
func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	r.Engine.GET("/health", handlers.Health)
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
