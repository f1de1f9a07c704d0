package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-profile-auth/internal/application"
	"github.com/oksasatya/go-profile-auth/internal/interface/middleware"
	"github.com/oksasatya/go-profile-auth/pkg/response"
	"github.com/oksasatya/go-profile-auth/pkg/validation"
)

// AuthService is the account side of the auth use cases.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*application.AuthResult[application.AccountSummary], error)
	Login(ctx context.Context, email, password string) (*application.AuthResult[application.AccountSummary], error)
	FederatedLogin(ctx context.Context, providerToken string, user *application.ProviderUser) (*application.AuthResult[application.AccountSummary], error)
	VerifyToken(ctx context.Context, token string) (application.VerifyResult, error)
	ProfileLogin(ctx context.Context, username, password string) (*application.AuthResult[application.ProfileSummary], error)
}

type AuthHandler struct {
	Svc    AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

// Presence is checked by the use cases so blank fields report MissingFields;
// binding only bounds sizes.
type registerRequest struct {
	Name     string `json:"name" binding:"max=100"`
	Email    string `json:"email" binding:"max=254"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"max=254"`
	Password string `json:"password"`
}

type googleRequest struct {
	Token string                    `json:"token"`
	User  *application.ProviderUser `json:"user"`
}

type profileLoginRequest struct {
	Username string `json:"username" binding:"max=64"`
	Password string `json:"password"`
}

type tokenResponse[T any] struct {
	Token string `json:"token"`
	User  T      `json:"user"`
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return false
	}
	return true
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(c, h.Logger, "register", err)
		return
	}
	h.Logger.WithFields(logrus.Fields{"account_id": res.User.ID, "request_id": c.GetString("request_id")}).Info("account registered")
	response.Success(c, http.StatusCreated, tokenResponse[application.AccountSummary]{Token: res.Token, User: res.User})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.Logger, "login", err)
		return
	}
	response.Success(c, http.StatusOK, tokenResponse[application.AccountSummary]{Token: res.Token, User: res.User})
}

// Google POST /api/auth/google
func (h *AuthHandler) Google(c *gin.Context) {
	var req googleRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Svc.FederatedLogin(c.Request.Context(), req.Token, req.User)
	if err != nil {
		writeError(c, h.Logger, "google login", err)
		return
	}
	response.Success(c, http.StatusOK, tokenResponse[application.AccountSummary]{Token: res.Token, User: res.User})
}

// VerifyToken GET /api/auth/verify-token
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	res, err := h.Svc.VerifyToken(c.Request.Context(), middleware.BearerToken(c))
	if err != nil {
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("verify token failed")
	}
	if !res.Valid {
		c.JSON(http.StatusUnauthorized, application.VerifyResult{Valid: false})
		return
	}
	response.Success(c, http.StatusOK, res)
}

// ProfileLogin POST /api/auth/profile-login
func (h *AuthHandler) ProfileLogin(c *gin.Context) {
	var req profileLoginRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Svc.ProfileLogin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, h.Logger, "profile login", err)
		return
	}
	response.Success(c, http.StatusOK, tokenResponse[application.ProfileSummary]{Token: res.Token, User: res.User})
}
