package handler

import (
	"net/http"

	"arena-wallet/internal/model"

	"github.com/gin-gonic/gin"
)

// CreateProfile
// @Summary Create the caller's profile
// @Description Idempotent on first sign-in; an existing profile is returned unchanged
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body model.CreateProfileRequest false "Username and optional referral code"
// @Success 200 {object} model.ProfileResponse "Already exists"
// @Success 201 {object} model.ProfileResponse "Created"
// @Router /profile [post]
func (h *Handler) CreateProfile(c *gin.Context) {
	var req model.CreateProfileRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request body")
			return
		}
	}

	resp, err := h.accountService.CreateProfile(c.Request.Context(), currentSession(c), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	statusCode := http.StatusCreated
	if resp.Notice == nil {
		statusCode = http.StatusOK
	}
	c.JSON(statusCode, resp)
}

// GetProfile
// @Summary Get the caller's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Profile
// @Failure 404 {object} model.ErrorResponse "Profile not found"
// @Router /profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.accountService.GetProfile(c.Request.Context(), currentSession(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile
// @Summary Update username and game id
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body model.UpdateProfileRequest true "Profile details"
// @Success 200 {object} model.ProfileResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 403 {object} model.ErrorResponse "Account banned"
// @Router /profile [patch]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Username cannot be empty")
		return
	}

	resp, err := h.accountService.UpdateProfile(c.Request.Context(), currentSession(c), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
