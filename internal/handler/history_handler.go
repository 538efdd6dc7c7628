package handler

import (
	"net/http"
	"strconv"

	"marketai/internal/model"
	"marketai/internal/service"

	"github.com/gin-gonic/gin"
)

// HistoryHandler serves history and export requests
type HistoryHandler struct {
	history service.HistoryService
	export  service.ExportService
}

// NewHistoryHandler creates a new HistoryHandler
func NewHistoryHandler(h service.HistoryService, e service.ExportService) *HistoryHandler {
	return &HistoryHandler{history: h, export: e}
}

func (h *HistoryHandler) List(c *gin.Context) {
	user, ok := getAuthUser(c)
	if !ok {
		return
	}

	var filter *model.Module
	if moduleParam := c.Query("module"); moduleParam != "" {
		m := model.Module(moduleParam)
		filter = &m
	}

	items, err := h.history.List(c.Request.Context(), user, filter)
	if err != nil {
		respondError(c, err, "Failed to retrieve history")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *HistoryHandler) Get(c *gin.Context) {
	user, ok := getAuthUser(c)
	if !ok {
		return
	}
	logID, ok := parseLogID(c)
	if !ok {
		return
	}

	item, err := h.history.Get(c.Request.Context(), user, logID)
	if err != nil {
		respondError(c, err, "Failed to retrieve history item")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *HistoryHandler) ExportPDF(c *gin.Context) {
	user, ok := getAuthUser(c)
	if !ok {
		return
	}
	logID, ok := parseLogID(c)
	if !ok {
		return
	}

	doc, err := h.export.ExportPDF(c.Request.Context(), user, logID)
	if err != nil {
		respondError(c, err, "Failed to export pdf")
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename="+doc.Filename)
	c.Data(http.StatusOK, "application/pdf", doc.Content)
}

func parseLogID(c *gin.Context) (int64, bool) {
	logID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || logID <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrLogNotFound.Error()})
		return 0, false
	}
	return logID, true
}

// RegisterHistoryRoutes registers history and export routes
func (h *HistoryHandler) RegisterHistoryRoutes(rg *gin.RouterGroup, authMW ...gin.HandlerFunc) {
	g := rg.Group("")
	g.Use(authMW...)
	{
		g.GET("/history", h.List)
		g.GET("/history/:id", h.Get)
		g.GET("/export/pdf/:id", h.ExportPDF)
	}
}
