// internal/services/sitemap_service.go
package services

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/himalayanharvest/storefront/internal/config"
	"github.com/himalayanharvest/storefront/internal/store"
)

// SitemapService renders sitemap.xml and robots.txt from the live catalog,
// so newly created products show up without a redeploy.
type SitemapService struct {
	catalog *store.CatalogStore
	config  *config.Config
}

func NewSitemapService(catalog *store.CatalogStore, cfg *config.Config) *SitemapService {
	return &SitemapService{
		catalog: catalog,
		config:  cfg,
	}
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// staticPages are the storefront routes that exist regardless of catalog
// contents.
var staticPages = []string{"", "/products", "/about", "/contact", "/faq", "/blog"}

// Sitemap returns the sitemap XML document.
func (s *SitemapService) Sitemap() ([]byte, error) {
	base := strings.TrimRight(s.config.Site.BaseURL, "/")

	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, page := range staticPages {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        base + page,
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}
	for _, p := range s.catalog.GetAllProducts() {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        fmt.Sprintf("%s/products/%s", base, p.Slug),
			ChangeFreq: "weekly",
			Priority:   "1.0",
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sitemap: %w", err)
	}

	return append([]byte(xml.Header), body...), nil
}

// Robots returns robots.txt pointing crawlers at the sitemap.
func (s *SitemapService) Robots() []byte {
	base := strings.TrimRight(s.config.Site.BaseURL, "/")

	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /admin\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", base)
	return []byte(b.String())
}
