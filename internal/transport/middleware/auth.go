package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vodninamlyn/wedding-rsvp/internal/service"
)

const adminUserKey = "admin_user"

// RequireSession guards the admin routes: requests without a valid bearer
// token are rejected before any handler runs.
func RequireSession(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		subject, err := authService.VerifySession(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set(adminUserKey, subject)
		c.Next()
	}
}

// AdminUser returns the authenticated admin subject set by RequireSession.
func AdminUser(c *gin.Context) string {
	return c.GetString(adminUserKey)
}
