package middleware

import (
	"github.com/gin-gonic/gin"

	"antiquify-backend/internal/shared/response"
)

// RequireOwner enforces the one authorization rule the catalog has: the
// authenticated identity must equal the email being queried. It runs after
// Auth on every owner-scoped route, so the per-route checks live in exactly
// one place and always refuse with the same Forbidden response.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := c.GetString(ContextEmailKey)
		requested := c.Query("email")

		if identity == "" || requested == "" || identity != requested {
			response.Forbidden(c, "forbidden access")
			c.Abort()
			return
		}

		c.Next()
	}
}
