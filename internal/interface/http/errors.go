package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-profile-auth/internal/application"
	"github.com/oksasatya/go-profile-auth/internal/interface/middleware"
	"github.com/oksasatya/go-profile-auth/pkg/response"
)

const genericServerError = "internal server error"

var clientErrors = []error{
	application.ErrMissingFields,
	application.ErrInvalidInput,
	application.ErrPasswordTooLong,
	application.ErrDuplicateEmail,
	application.ErrDuplicateUsername,
	application.ErrAccountNotFound,
	application.ErrProfileNotFound,
	application.ErrInvalidCredentials,
}

func clientIP(c *gin.Context) string {
	if ip := c.GetString(middleware.CtxRealIPKey); ip != "" {
		return ip
	}
	return c.ClientIP()
}

// writeError maps use case failures onto status codes. Anything that is not a
// known client error is logged and answered with a generic 500.
func writeError(c *gin.Context, logger *logrus.Logger, op string, err error) {
	if errors.Is(err, application.ErrInvalidToken) {
		response.Error(c, http.StatusUnauthorized, err.Error(), nil)
		return
	}
	for _, known := range clientErrors {
		if errors.Is(err, known) {
			response.Error(c, http.StatusBadRequest, known.Error(), nil)
			return
		}
	}

	logger.WithError(err).WithFields(logrus.Fields{
		"op":         op,
		"request_id": c.GetString("request_id"),
		"account_id": c.GetString(middleware.CtxAccountIDKey),
		"ip":         clientIP(c),
	}).Error("request failed")
	response.Error(c, http.StatusInternalServerError, genericServerError, nil)
}
