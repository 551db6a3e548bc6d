package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sridharvel/annapoorna-pos/internal/presentation/http/dto/response"
	"github.com/sridharvel/annapoorna-pos/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware. There is a single
// operator; the token proves the PIN was entered, nothing more.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		if err := jwtManager.ValidateToken(parts[1]); err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Next()
	}
}
