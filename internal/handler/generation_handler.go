package handler

import (
	"io"
	"net/http"

	"marketai/internal/authz"
	"marketai/internal/codec"
	"marketai/internal/model"
	"marketai/internal/service"

	"github.com/gin-gonic/gin"
)

// GenerationHandler serves the three generation endpoints
type GenerationHandler struct {
	service service.GenerationService
}

// NewGenerationHandler creates a new GenerationHandler
func NewGenerationHandler(s service.GenerationService) *GenerationHandler {
	return &GenerationHandler{service: s}
}

// generate returns a handler that runs the pipeline for module with the raw
// JSON body as the form payload.
func (h *GenerationHandler) generate(module model.Module) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := getAuthUser(c)
		if !ok {
			return
		}

		// roles are checked before the body is read
		if !authz.CanUse(user, authz.ForModule(module)) {
			respondError(c, service.ErrForbidden, "Failed to generate")
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		inputs, err := codec.DecodeInputs(body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		res, err := h.service.Generate(c.Request.Context(), user, module, inputs)
		if err != nil {
			respondError(c, err, "Failed to generate")
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// RegisterGenerationRoutes registers generation routes
func (h *GenerationHandler) RegisterGenerationRoutes(rg *gin.RouterGroup, authMW ...gin.HandlerFunc) {
	g := rg.Group("")
	g.Use(authMW...)
	{
		g.POST("/campaign/generate", h.generate(model.ModuleCampaign))
		g.POST("/pitch/generate", h.generate(model.ModulePitch))
		g.POST("/leads/score", h.generate(model.ModuleLead))
	}
}
