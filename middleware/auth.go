// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	userRepo "github.com/voueil/Herafona-website/database/repository/user"
	"github.com/voueil/Herafona-website/models"
	"github.com/voueil/Herafona-website/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the session middleware.
const (
	CtxUserKey    = "currentUser"
	CtxSessionKey = "session"
)

// SessionAuthMiddleware validates the Bearer session token, checks it against
// the revocation cache and loads the caller's profile into the context.
func SessionAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		uid, err := utils.ExtractUIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// A sign-out deletes the stored hash; a mismatch means the token was
		// superseded by a newer sign-in.
		storedHash, err := utils.GetSessionHash(utils.GetAuthCacheClient(), uid)
		if err != nil || storedHash == "" || storedHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session revoked or expired"})
			return
		}

		user, err := users.GetByUID(uid)
		if err != nil || user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Profile not found"})
			return
		}

		c.Set(CtxUserKey, user)
		c.Set(CtxSessionKey, models.Session{
			UID:         user.UID,
			Email:       user.Email,
			AccountType: user.AccountType,
			Ready:       true,
		})
		c.Next()
	}
}

// CurrentUser pulls the authenticated profile out of the context.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
