package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Health GET /health and /api/health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}
