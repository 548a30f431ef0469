package middleware

import (
	"net/http"

	"github.com/voueil/Herafona-website/models"

	"github.com/gin-gonic/gin"
)

// RequireAccountType gates an endpoint to the given account types. Must run
// after SessionAuthMiddleware.
func RequireAccountType(types ...models.AccountType) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		for _, t := range types {
			if user.AccountType == t {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden for this account type"})
	}
}
