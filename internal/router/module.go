package router

import "github.com/gin-gonic/gin"

// Module registers a feature's routes. The registry hands every module the
// /api group, so paths are relative to it.
type Module interface {
	Register(rg *gin.RouterGroup)
}
