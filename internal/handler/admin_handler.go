package handler

import (
	"net/http"

	"marketai/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves admin-only views
type AdminHandler struct {
	analytics service.AnalyticsService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(a service.AnalyticsService) *AdminHandler {
	return &AdminHandler{analytics: a}
}

func (h *AdminHandler) Analytics(c *gin.Context) {
	user, ok := getAuthUser(c)
	if !ok {
		return
	}

	summary, err := h.analytics.Summary(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to retrieve analytics")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// RegisterAdminRoutes registers admin routes
func (h *AdminHandler) RegisterAdminRoutes(rg *gin.RouterGroup, authMW ...gin.HandlerFunc) {
	adminRoutes := rg.Group("/admin")
	adminRoutes.Use(authMW...)
	{
		adminRoutes.GET("/analytics", h.Analytics)
	}
}
