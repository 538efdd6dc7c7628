package handler

import (
	"errors"
	"net/http"

	"marketai/internal/logging"
	"marketai/internal/middleware"
	"marketai/internal/model"
	"marketai/internal/service"

	"github.com/gin-gonic/gin"
)

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrUnknownModule):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrLogNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, service.ErrGenerationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as a JSON error body. Server-side failures are
// logged and reported to the client as fallback.
func respondError(c *gin.Context, err error, fallback string) {
	status := statusFor(err)
	switch {
	case status == http.StatusBadGateway:
		c.JSON(status, gin.H{"error": "Generation failed"})
	case status >= http.StatusInternalServerError:
		logging.Error().Err(err).Str("path", c.FullPath()).Msg(fallback)
		c.JSON(status, gin.H{"error": fallback})
	default:
		c.JSON(status, gin.H{"error": err.Error()})
	}
}

// Helper to get the authenticated user from context
func getAuthUser(c *gin.Context) (*model.User, bool) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return nil, false
	}
	return user, true
}
