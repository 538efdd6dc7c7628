package middleware

import (
	"net/http"
	"strings"

	"marketai/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthEmailKey = "authEmail"
	AuthUserKey  = "authUser"
)

// JWTAuthMiddleware creates a middleware for JWT authentication. It stores
// the token identity (email) in the context.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := jwtUtil.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(AuthEmailKey, claims.Email)
		c.Next()
	}
}
