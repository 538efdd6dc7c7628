package router

import (
	"context"
	"net/http"

	"marketai/internal/handler"
	"marketai/internal/middleware"
	"marketai/internal/service"
	"marketai/internal/utils"

	"github.com/gin-gonic/gin"
)

// Pinger reports database health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services bundles everything the HTTP layer depends on.
type Services struct {
	Auth       service.AuthService
	Generation service.GenerationService
	History    service.HistoryService
	Export     service.ExportService
	Analytics  service.AnalyticsService
}

// New wires routes and middleware.
func New(svc Services, jwtUtil *utils.JWTUtil, db Pinger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	authMW := []gin.HandlerFunc{
		middleware.JWTAuthMiddleware(jwtUtil),
		middleware.CurrentUserMiddleware(svc.Auth),
	}

	api := r.Group("/api")
	handler.NewAuthHandler(svc.Auth).RegisterAuthRoutes(api)
	handler.NewGenerationHandler(svc.Generation).RegisterGenerationRoutes(api, authMW...)
	handler.NewHistoryHandler(svc.History, svc.Export).RegisterHistoryRoutes(api, authMW...)
	handler.NewAdminHandler(svc.Analytics).RegisterAdminRoutes(api, authMW...)

	r.GET("/health", func(c *gin.Context) {
		if db != nil {
			if err := db.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	return r
}
