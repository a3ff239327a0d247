package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-builder-backend/internal/components"
	"portfolio-builder-backend/internal/models"
	"portfolio-builder-backend/internal/render"
	"portfolio-builder-backend/internal/service"
)

// BuilderHandler serves the configuration and previews the builder UI needs:
// the component catalogue, font choices and the edit-mode rendering of a
// website.
type BuilderHandler struct {
	registry       *components.Registry
	renderer       *render.Renderer
	websiteService *service.WebsiteService
}

func NewBuilderHandler(registry *components.Registry, renderer *render.Renderer, websiteService *service.WebsiteService) *BuilderHandler {
	return &BuilderHandler{
		registry:       registry,
		renderer:       renderer,
		websiteService: websiteService,
	}
}

// fontOption describes one selectable font and where to load it from.
type fontOption struct {
	Family string `json:"family"`
	Label  string `json:"label"`
	URL    string `json:"url,omitempty"`
}

var fontOptions = buildFontOptions()

func buildFontOptions() []fontOption {
	families := []fontOption{
		{Family: "Inter", Label: "Inter"},
		{Family: "Outfit", Label: "Outfit"},
		{Family: "Playfair Display", Label: "Playfair Display"},
		{Family: "Space Grotesk", Label: "Space Grotesk"},
		{Family: "Georgia", Label: "Georgia (system)"},
		{Family: "system-ui", Label: "System default"},
	}
	for i := range families {
		if url, ok := render.FontStylesheetURL(families[i].Family); ok {
			families[i].URL = url
		}
	}
	return families
}

// GetConfig returns everything the builder sidebar is built from.
func (h *BuilderHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"components": h.registry.ListMetadata(),
		"fonts":      fontOptions,
	})
}

// GetComponentTypes returns just the registered component catalogue.
func (h *BuilderHandler) GetComponentTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"components": h.registry.ListMetadata()})
}

// RenderEdit returns the edit-mode markup of the owner's website, wrapped
// with the data attributes the builder manipulates.
func (h *BuilderHandler) RenderEdit(c *gin.Context) {
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

	mutator := &componentPatcher{userID: userID, websiteID: id, websiteService: h.websiteService}
	html := h.renderer.Render(site, components.ModeEdit, mutator)
	c.JSON(http.StatusOK, gin.H{"html": html, "website": site})
}

// componentPatcher lets renderers persist best-effort payload upgrades
// (legacy shapes) while the owner edits. Failures are ignored; the next
// edit render retries the upgrade.
type componentPatcher struct {
	userID         uint
	websiteID      uint
	websiteService *service.WebsiteService
}

func (p *componentPatcher) UpdateComponent(componentID string, patch models.JSONMap) {
	_, _ = p.websiteService.UpdateComponent(p.userID, p.websiteID, componentID, models.UpdateComponentRequest{Data: patch})
}
