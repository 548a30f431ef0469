package handlers

import (
	"net/http"

	"github.com/voueil/Herafona-website/i18n"
	"github.com/voueil/Herafona-website/middleware"
	"github.com/voueil/Herafona-website/services/profile"
	"github.com/voueil/Herafona-website/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler serves the profile page endpoints.
type ProfileHandler struct {
	Profiles profile.Service
}

// NewProfileHandler wires the profile endpoints.
func NewProfileHandler(profiles profile.Service) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles}
}

// GetProfileHandler returns the authenticated user's profile.
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfileHandler applies the owner-mutable fields (name, phone, city,
// avatar). Account type and email are immutable and silently absent from the
// accepted payload.
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	t := tr(c)

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input profile.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	updated, err := h.Profiles.Update(user.UID, input)
	if err != nil {
		getLogger(c).Error("failed to update profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": t(i18n.KeyProfileUpdated, "profile updated"),
		"user":    updated,
	})
}
