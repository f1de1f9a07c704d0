package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-profile-auth/internal/application"
	"github.com/oksasatya/go-profile-auth/internal/interface/middleware"
	"github.com/oksasatya/go-profile-auth/pkg/response"
)

// ProfileService is the profile side of the use cases.
type ProfileService interface {
	CreateProfile(ctx context.Context, accountID, username, password string) (*application.ProfileView, error)
	ListProfiles(ctx context.Context, accountID string) ([]application.ProfileView, error)
}

// ProfileHandler serves the bearer-authenticated profile endpoints.
type ProfileHandler struct {
	Svc    ProfileService
	Logger *logrus.Logger
}

func NewProfileHandler(svc ProfileService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

type createProfileRequest struct {
	Username string `json:"username" binding:"max=64"`
	Password string `json:"password"`
}

type createProfileResponse struct {
	Message string                  `json:"message"`
	Profile application.ProfileView `json:"profile"`
}

// Create POST /api/profile/create
func (h *ProfileHandler) Create(c *gin.Context) {
	var req createProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	accountID := c.GetString(middleware.CtxAccountIDKey)
	p, err := h.Svc.CreateProfile(c.Request.Context(), accountID, req.Username, req.Password)
	if errors.Is(err, application.ErrAccountNotFound) {
		response.Error(c, http.StatusNotFound, err.Error(), nil)
		return
	}
	if err != nil {
		writeError(c, h.Logger, "create profile", err)
		return
	}
	h.Logger.WithFields(logrus.Fields{
		"account_id": accountID,
		"profile_id": p.ID,
		"request_id": c.GetString("request_id"),
	}).Info("profile created")
	response.Success(c, http.StatusCreated, createProfileResponse{Message: "Profile created successfully", Profile: *p})
}

// List GET /api/profile/my-profiles
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.Svc.ListProfiles(c.Request.Context(), c.GetString(middleware.CtxAccountIDKey))
	if err != nil {
		writeError(c, h.Logger, "list profiles", err)
		return
	}
	response.Success(c, http.StatusOK, profiles)
}
