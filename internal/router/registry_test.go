package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/go-profile-auth/internal/router/modules"
)

type pingModule struct{}

func (pingModule) Register(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("mw")) })
}

func TestRegistry_MountsUnderAPI(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := NewRegistry(gin.New())
	reg.Use(func(c *gin.Context) { c.Set("mw", "yes"); c.Next() })
	reg.Add(pingModule{})
	reg.Add(modules.NewHealthModule())
	reg.RegisterAll()

	for path, want := range map[string]int{
		"/api/ping":   http.StatusOK,
		"/api/health": http.StatusOK,
		"/health":     http.StatusOK,
		"/ping":       http.StatusNotFound,
	} {
		w := httptest.NewRecorder()
		reg.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, w.Code, path)
	}

	w := httptest.NewRecorder()
	reg.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	assert.Equal(t, "yes", w.Body.String())
}
