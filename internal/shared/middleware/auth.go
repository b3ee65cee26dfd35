package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"antiquify-backend/internal/shared/response"
	"antiquify-backend/pkg/jwt"
)

// ContextEmailKey is where the authenticated identity lands in the gin
// context.
const ContextEmailKey = "email"

// tokenCookieName must match the cookie set by the auth handler.
const tokenCookieName = "token"

// Auth verifies the catalog token and exposes the authenticated email to
// downstream handlers. The token is read from the cookie first (how the
// frontend sends it) with an Authorization: Bearer fallback.
func Auth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "missing auth token")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(token)
		if err != nil {
			response.Unauthorized(c, "invalid auth token")
			c.Abort()
			return
		}

		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(tokenCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}

	return ""
}
