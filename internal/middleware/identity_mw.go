package middleware

import (
	"context"
	"net/http"

	"marketai/internal/logging"
	"marketai/internal/model"

	"github.com/gin-gonic/gin"
)

// UserResolver looks up the current user record for a token identity.
type UserResolver interface {
	ResolveUser(ctx context.Context, email string) (*model.User, error)
}

// CurrentUserMiddleware loads the authenticated user, including its current
// role, from the store. JWTAuthMiddleware must run first.
func CurrentUserMiddleware(resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(AuthEmailKey)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Identity not found in token, ensure JWT middleware runs first"})
			return
		}

		user, err := resolver.ResolveUser(c.Request.Context(), email)
		if err != nil {
			logging.Error().Err(err).Msg("failed to resolve current user")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve user"})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User no longer exists"})
			return
		}

		c.Set(AuthUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by CurrentUserMiddleware, or nil.
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(AuthUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}
