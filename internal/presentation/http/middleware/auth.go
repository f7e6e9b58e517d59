package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Jesus1025/ventas-api/internal/presentation/http/dto/response"
	"github.com/Jesus1025/ventas-api/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware. The validated
// (user_id, name) pair is placed in the request context; downstream handlers
// trust it without re-validating.
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

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_name", claims.Name)

		c.Next()
	}
}
