package handlers

import (
	"net/http"
	"time"

	"github.com/voueil/Herafona-website/i18n"
	"github.com/voueil/Herafona-website/middleware"
	"github.com/voueil/Herafona-website/models"
	"github.com/voueil/Herafona-website/services/auth"
	"github.com/voueil/Herafona-website/services/profile"
	"github.com/voueil/Herafona-website/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// sessionTTL bounds both the signed token and its revocation-cache entry.
const sessionTTL = 24 * time.Hour

// AuthHandler bridges the auth provider and the profile store. Per the
// session contract, every successful sign-in or registration is followed by a
// profile read-and-create-if-absent before a session is issued.
type AuthHandler struct {
	Bridge   auth.Bridge
	Profiles profile.Service
}

// NewAuthHandler wires the auth endpoints.
func NewAuthHandler(bridge auth.Bridge, profiles profile.Service) *AuthHandler {
	return &AuthHandler{Bridge: bridge, Profiles: profiles}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	City        string `json:"city"`
	AccountType string `json:"accountType"`
}

type sessionResponse struct {
	Token   string         `json:"token"`
	User    *models.User   `json:"user"`
	Session models.Session `json:"session"`
}

// issueSession mints the app token and stores its hash for revocation.
func issueSession(user *models.User) (*sessionResponse, error) {
	token, err := utils.GenerateToken(user.UID, user.Email, sessionTTL)
	if err != nil {
		return nil, err
	}
	if err := utils.SaveSessionHash(utils.GetAuthCacheClient(), user.UID, utils.HashToken(token), sessionTTL); err != nil {
		return nil, err
	}
	return &sessionResponse{
		Token: token,
		User:  user,
		Session: models.Session{
			UID:         user.UID,
			Email:       user.Email,
			AccountType: user.AccountType,
			Ready:       true,
		},
	}, nil
}

// LoginHandler verifies the credential, ensures the profile document exists
// and issues a session.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	t := tr(c)

	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	identity, err := h.Bridge.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		getLogger(c).Warn("sign-in rejected", zap.Error(err))
		key := auth.MessageKey(err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": t(key, t(i18n.KeyAuthGeneric, "authentication failed"))})
		return
	}

	user, _, err := h.Profiles.EnsureProfile(identity)
	if err != nil {
		getLogger(c).Error("failed to ensure profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": t(i18n.KeyAuthGeneric, "authentication failed")})
		return
	}

	resp, err := issueSession(user)
	if err != nil {
		getLogger(c).Error("failed to issue session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": t(i18n.KeyAuthGeneric, "authentication failed")})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegisterHandler creates the account, writes the registration profile and
// issues a session.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	t := tr(c)

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if req.AccountType == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"field": "accountType",
			"error": t(i18n.KeyAccountTypeRequired, "account type is required"),
		})
		return
	}

	identity, err := h.Bridge.Register(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		getLogger(c).Warn("registration rejected", zap.Error(err))
		key := auth.MessageKey(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": t(key, t(i18n.KeyAuthGeneric, "registration failed"))})
		return
	}

	user, err := h.Profiles.CreateFromRegistration(identity, profile.RegistrationInput{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		City:        req.City,
		AccountType: models.ParseAccountType(req.AccountType),
	})
	if err != nil {
		getLogger(c).Error("failed to create registration profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": t(i18n.KeyAuthGeneric, "registration failed")})
		return
	}

	resp, err := issueSession(user)
	if err != nil {
		getLogger(c).Error("failed to issue session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": t(i18n.KeyAuthGeneric, "registration failed")})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LogoutHandler revokes the current session.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := utils.DeleteSessionHash(utils.GetAuthCacheClient(), user.UID); err != nil {
		getLogger(c).Error("failed to revoke session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ForgotPasswordHandler dispatches a reset email and reports generic success
// regardless of whether the address is known.
func (h *AuthHandler) ForgotPasswordHandler(c *gin.Context) {
	t := tr(c)

	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if err := h.Bridge.SendPasswordReset(c.Request.Context(), req.Email); err != nil {
		getLogger(c).Warn("password reset dispatch failed", zap.Error(err))
		key := auth.MessageKey(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": t(key, t(i18n.KeyAuthGeneric, "could not send reset email"))})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": t(i18n.KeyResetEmailSent, "reset email sent")})
}
