package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-builder-backend/internal/models"
	"portfolio-builder-backend/internal/seed"
	"portfolio-builder-backend/internal/service"
)

type WebsiteHandler struct {
	websiteService *service.WebsiteService
}

func NewWebsiteHandler(websiteService *service.WebsiteService) *WebsiteHandler {
	return &WebsiteHandler{websiteService: websiteService}
}

func websiteID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid website id"})
		return 0, false
	}
	return uint(id), true
}

// respondWebsiteError maps service errors onto HTTP statuses. Anything not
// recognised is a 500.
func respondWebsiteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWebsiteNotFound), errors.Is(err, service.ErrComponentMissing):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDomainTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrWebsiteLimit):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnknownComponent), errors.Is(err, service.ErrInvalidIndex),
		errors.Is(err, service.ErrInvalidPalette):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *WebsiteHandler) Create(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req models.CreateWebsiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	site, err := h.websiteService.Create(userID, req)
	if err != nil {
		respondWebsiteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"website": site})
}

func (h *WebsiteHandler) List(c *gin.Context) {
	userID := c.GetUint("user_id")

	sites, err := h.websiteService.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"websites": sites})
}

func (h *WebsiteHandler) Get(c *gin.Context) {
	userID := c.GetUint("user_id")
	id, ok := websiteID(c)
	if !ok {
		return
	}

	site, err := h.websiteService.Get(userID, id)
	if err != nil {
		respondWebsiteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"website": site})
}

func (h *WebsiteHandler) Update(c *gin.Context) {
	userID := c.GetUint("user_id")
	id, ok := websiteID(c)
	if !ok {
		return
	}

	var req models.UpdateWebsiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	site, err := h.websiteService.Update(userID, id, req)
	if err != nil {
		respondWebsiteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"website": site})
}

func (h *WebsiteHandler) Rename(c *gin.Context) {
	userID := c.GetUint("user_id")
	id, ok := websiteID(c)
	if !ok {
		return
	}

	var req struct {
		Domain string `json:"domain" binding:"required,sitedomain"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	site, err := h.websiteService.Rename(userID, id, req.Domain)
	if err != nil {
		respondWebsiteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"website": site})
}

func (h *WebsiteHandler) Delete(c *gin.Context) {
	userID := c.GetUint("user_id")
	id, ok := websiteID(c)
	if !ok {
		return
	}

	if err := h.websiteService.Delete(userID, id); err != nil {
		respondWebsiteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "website deleted successfully"})
}

func (h *WebsiteHandler) Duplicate(c *gin.Context) {
	userID := c.GetUint("user_id")
	id, ok := websiteID(c)
	if !ok {
		return
	}

	site, err := h.websiteService.Duplicate(userID, id)
	if err != nil {
		respondWebsiteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"website": site})
}

func (h *WebsiteHandler) Publish(c *gin.Context) {
	userID := c.GetUint("user_id")
	id, ok := websiteID(c)
	if !ok {
		return
	}

	site, err := h.websiteService.Publish(userID, id)
	if err != nil {
		respondWebsiteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"website": site, "status": site.Status()})
}

func (h *WebsiteHandler) Unpublish(c *gin.Context) {
	userID := c.GetUint("user_id")
	id, ok := websiteID(c)
	if !ok {
		return
	}

	site, err := h.websiteService.Unpublish(userID, id)
	if err != nil {
		respondWebsiteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"website": site, "status": site.Status()})
}

func (h *WebsiteHandler) AddComponent(c *gin.Context) {
	userID := c.GetUint("user_id")
	id, ok := websiteID(c)
	if !ok {
		return
	}

	var req models.AddComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	site, comp, err := h.websiteService.AddComponent(userID, id, req)
	if err != nil {
		respondWebsiteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"website": site, "component": comp})
}

func (h *WebsiteHandler) UpdateComponent(c *gin.Context) {
	userID := c.GetUint("user_id")
	id, ok := websiteID(c)
	if !ok {
		return
	}

	var req models.UpdateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	site, err := h.websiteService.UpdateComponent(userID, id, c.Param("componentId"), req)
	if err != nil {
		respondWebsiteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"website": site})
}

func (h *WebsiteHandler) RemoveComponent(c *gin.Context) {
	userID := c.GetUint("user_id")
	id, ok := websiteID(c)
	if !ok {
		return
	}

	site, err := h.websiteService.RemoveComponent(userID, id, c.Param("componentId"))
	if err != nil {
		respondWebsiteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"website": site})
}

func (h *WebsiteHandler) DuplicateComponent(c *gin.Context) {
	userID := c.GetUint("user_id")
	id, ok := websiteID(c)
	if !ok {
		return
	}

	site, err := h.websiteService.DuplicateComponent(userID, id, c.Param("componentId"))
	if err != nil {
		respondWebsiteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"website": site})
}

func (h *WebsiteHandler) ReorderComponents(c *gin.Context) {
	userID := c.GetUint("user_id")
	id, ok := websiteID(c)
	if !ok {
		return
	}

	var req models.ReorderComponentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	site, err := h.websiteService.ReorderComponents(userID, id, req)
	if err != nil {
		respondWebsiteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"website": site})
}

func (h *WebsiteHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": seed.ListTemplates()})
}
