// internal/handlers/seo.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/himalayanharvest/storefront/internal/services"
	"github.com/himalayanharvest/storefront/internal/utils"
)

type SEOHandler struct {
	sitemapService *services.SitemapService
}

func NewSEOHandler(sitemapService *services.SitemapService) *SEOHandler {
	return &SEOHandler{sitemapService: sitemapService}
}

// GET /sitemap.xml
func (h *SEOHandler) Sitemap(c *gin.Context) {
	body, err := h.sitemapService.Sitemap()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to generate sitemap")
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

// GET /robots.txt
func (h *SEOHandler) Robots(c *gin.Context) {
	c.Data(http.StatusOK, "text/plain; charset=utf-8", h.sitemapService.Robots())
}
