package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-builder-backend/internal/middleware"
	"portfolio-builder-backend/internal/render"
	"portfolio-builder-backend/internal/service"
	"portfolio-builder-backend/pkg/cache"
)

// PublicHandler serves rendered portfolio pages to visitors. Sites are
// addressed by domain, either from the request Host or an explicit path
// parameter.
type PublicHandler struct {
	websiteService *service.WebsiteService
	renderer       *render.Renderer
	cache          *cache.Cache
}

func NewPublicHandler(websiteService *service.WebsiteService, renderer *render.Renderer, c *cache.Cache) *PublicHandler {
	return &PublicHandler{
		websiteService: websiteService,
		renderer:       renderer,
		cache:          c,
	}
}

// ServeSite renders the site published on the requested domain. The owner
// also sees their draft here; everyone else gets 404 for drafts.
func (h *PublicHandler) ServeSite(c *gin.Context) {
	domain := c.Param("domain")
	if domain == "" {
		domain = requestHost(c)
	}

	// The viewer id is zero for anonymous visitors; optional auth fills it
	// when a valid token is present.
	viewerID := c.GetUint("user_id")

	site, err := h.websiteService.Resolve(domain, viewerID)
	if err != nil {
		if errors.Is(err, service.ErrWebsiteNotFound) {
			c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(notFoundPage))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Cached pages are only served for published sites viewed anonymously;
	// a draft preview must always reflect the latest edits.
	cacheable := site.Published && viewerID == 0
	if cacheable {
		if html, err := h.cache.GetCachedRenderedPage(site.Domain); err == nil {
			middleware.ObservePageRender("hit")
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
			return
		}
	}

	html := h.renderer.RenderPublicPage(site, "https://"+site.Domain)
	if cacheable {
		h.cache.CacheRenderedPage(site.Domain, html)
		middleware.ObservePageRender("miss")
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// Preview renders the owner's website in public mode regardless of publish
// state, for the dashboard preview pane.
func (h *PublicHandler) Preview(c *gin.Context) {
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

	html := h.renderer.RenderPublicPage(site, "https://"+site.Domain)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// Resolve returns the website document for a domain as JSON, for clients
// that render themselves.
func (h *PublicHandler) Resolve(c *gin.Context) {
	viewerID := c.GetUint("user_id")

	site, err := h.websiteService.Resolve(c.Param("domain"), viewerID)
	if err != nil {
		respondWebsiteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"website": site})
}

func requestHost(c *gin.Context) string {
	host := c.Request.Host
	if i := strings.LastIndex(host, ":"); i >= 0 && !strings.Contains(host[i:], "]") {
		host = host[:i]
	}
	return host
}

const notFoundPage = `<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8" /><title>Site not found</title></head>
<body style="font-family:system-ui,sans-serif;text-align:center;padding:96px 20px">
<h1>404</h1><p>There is no site here yet.</p>
</body></html>`
