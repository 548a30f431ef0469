// Package handlers exposes the page-level HTTP surface.
package handlers

import (
	userRepo "github.com/voueil/Herafona-website/database/repository/user"
	"github.com/voueil/Herafona-website/i18n"
	"github.com/voueil/Herafona-website/middleware"
	"github.com/voueil/Herafona-website/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandlerBundle collects the handlers the route registration wires up.
type HandlerBundle struct {
	// UserRepo backs the session middleware's profile lookups.
	UserRepo userRepo.UserRepository

	Auth       *AuthHandler
	Profile    *ProfileHandler
	Experience *ExperienceHandler
	Booking    *BookingHandler
	Assistant  *AssistantHandler
}

// getLogger returns the shared logger annotated with the request route.
func getLogger(c *gin.Context) *zap.Logger {
	return utils.GetLogger().With(
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
	)
}

// tr returns the translator bound to the request's display language.
func tr(c *gin.Context) i18n.Translator {
	return i18n.For(middleware.Lang(c))
}
