// Package metadata derives per-page SEO metadata: titles with the site
// suffix, canonical URLs, Open Graph and Twitter card fields, and the
// sitemap priority/change-frequency hints. Metadata is a read-only
// projection recomputed on demand, never persisted.
package metadata

import (
	"strings"
	"time"

	"github.com/aadarsh214/seogen/internal/config"
	"github.com/aadarsh214/seogen/internal/seo/page"
)

// OGImage is the Open Graph image descriptor.
type OGImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Alt    string `json:"alt,omitempty"`
}

// Twitter is the Twitter card descriptor.
type Twitter struct {
	Card    string `json:"card"`
	Site    string `json:"site,omitempty"`
	Creator string `json:"creator,omitempty"`
}

// Metadata is the assembled SEO payload for one page.
type Metadata struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	URL          string          `json:"url"`
	Path         string          `json:"path"`
	Canonical    string          `json:"canonical"`
	Type         string          `json:"type"`
	Keywords     []string        `json:"keywords"`
	SiteName     string          `json:"siteName"`
	Locale       string          `json:"locale"`
	NoIndex      bool            `json:"noindex"`
	NoFollow     bool            `json:"nofollow"`
	OGImage      OGImage         `json:"ogImage"`
	Twitter      Twitter         `json:"twitter"`
	LastModified time.Time       `json:"lastModified,omitempty"`
	Priority     float64         `json:"priority"`
	ChangeFreq   page.ChangeFreq `json:"changeFreq"`
}

// Config is the caller-supplied portion of a metadata payload; zero
// values receive factory defaults.
type Config struct {
	Title        string
	Description  string
	Path         string
	Type         string
	Keywords     []string
	Canonical    string
	NoIndex      bool
	NoFollow     bool
	OGImage      *OGImage
	LastModified time.Time
	Priority     float64
	ChangeFreq   page.ChangeFreq
}

// PageConfig describes a programmatically generated page for
// ForProgrammaticPage.
type PageConfig struct {
	Title        string
	Description  string
	Path         string
	Keywords     []string
	Category     string
	Intent       page.Intent
	Template     string
	LastModified time.Time
}

// Factory builds Metadata from the configured site identity.
type Factory struct {
	site config.SiteConfig
}

// NewFactory creates a metadata factory for the given site.
func NewFactory(site config.SiteConfig) *Factory {
	return &Factory{site: site}
}

// Create fills defaults around the supplied config: site-name title
// suffix, default description, canonical from base URL + path, brand
// keywords appended, brand OG image at 1200x630, large-image Twitter
// card, priority 0.5, weekly change frequency.
func (f *Factory) Create(cfg Config) Metadata {
	fullTitle := f.site.Name
	if cfg.Title != "" {
		fullTitle = cfg.Title + " – " + f.site.Name
	}

	description := cfg.Description
	if description == "" {
		description = f.site.DefaultDescription
	}

	path := cfg.Path
	if path == "" {
		path = "/"
	}

	canonical := cfg.Canonical
	if canonical == "" {
		canonical = f.site.BaseURL + path
	}

	pageType := cfg.Type
	if pageType == "" {
		pageType = "website"
	}

	keywords := make([]string, 0, len(cfg.Keywords)+len(f.site.BrandKeywords))
	keywords = append(keywords, cfg.Keywords...)
	keywords = append(keywords, f.site.BrandKeywords...)

	ogImage := OGImage{
		URL:    f.site.BaseURL + f.site.OGImagePath,
		Width:  1200,
		Height: 630,
		Alt:    fullTitle,
	}
	if cfg.OGImage != nil {
		ogImage = *cfg.OGImage
	}

	priority := cfg.Priority
	if priority == 0 {
		priority = 0.5
	}

	freq := cfg.ChangeFreq
	if freq == "" {
		freq = page.FreqWeekly
	}

	return Metadata{
		Title:       fullTitle,
		Description: description,
		URL:         canonical,
		Path:        path,
		Canonical:   canonical,
		Type:        pageType,
		Keywords:    keywords,
		SiteName:    f.site.Name,
		Locale:      "en_US",
		NoIndex:     cfg.NoIndex,
		NoFollow:    cfg.NoFollow,
		OGImage:     ogImage,
		Twitter: Twitter{
			Card:    "summary_large_image",
			Site:    f.site.TwitterHandle,
			Creator: f.site.TwitterHandle,
		},
		LastModified: cfg.LastModified,
		Priority:     priority,
		ChangeFreq:   freq,
	}
}

// ForProgrammaticPage specializes Create for generated pages: category,
// intent and template join the keyword list, and priority and change
// frequency come from a fixed per-intent table (navigational 0.8 and
// monthly, transactional 0.7, informational 0.6, both weekly). Callers
// needing different values pass explicit overrides to Create instead.
func (f *Factory) ForProgrammaticPage(cfg PageConfig) Metadata {
	keywords := make([]string, 0, len(cfg.Keywords)+3)
	keywords = append(keywords, cfg.Keywords...)
	if cfg.Category != "" {
		keywords = append(keywords, cfg.Category)
	}
	if cfg.Intent != "" {
		keywords = append(keywords, string(cfg.Intent))
	}
	if cfg.Template != "" {
		keywords = append(keywords, cfg.Template)
	}

	return f.Create(Config{
		Title:        cfg.Title,
		Description:  cfg.Description,
		Path:         cfg.Path,
		Type:         "website",
		Keywords:     keywords,
		LastModified: cfg.LastModified,
		Priority:     IntentPriority(cfg.Intent),
		ChangeFreq:   IntentChangeFreq(cfg.Intent),
	})
}

// ForPage assembles metadata for a generated page, honoring its
// metadata overrides.
func (f *Factory) ForPage(p *page.Page) Metadata {
	keywords := p.Keywords()
	if p.MetadataOverride != nil && len(p.MetadataOverride.Keywords) > 0 {
		keywords = append(keywords, p.MetadataOverride.Keywords...)
	}
	return f.ForProgrammaticPage(PageConfig{
		Title:        p.Title,
		Description:  p.Description,
		Path:         "/" + p.Slug,
		Keywords:     keywords,
		Category:     p.Category,
		Intent:       p.Intent,
		Template:     p.Template,
		LastModified: p.LastModified,
	})
}

// IntentPriority is the fixed intent-to-priority table used for
// programmatic pages.
func IntentPriority(intent page.Intent) float64 {
	switch intent {
	case page.IntentNavigational:
		return 0.8
	case page.IntentTransactional:
		return 0.7
	default:
		return 0.6
	}
}

// IntentChangeFreq is the fixed intent-to-change-frequency table for
// programmatic pages.
func IntentChangeFreq(intent page.Intent) page.ChangeFreq {
	if intent == page.IntentNavigational {
		return page.FreqMonthly
	}
	return page.FreqWeekly
}

// CanonicalURL joins the base URL and a slug or path.
func CanonicalURL(baseURL, slugOrPath string) string {
	if strings.HasPrefix(slugOrPath, "/") {
		return baseURL + slugOrPath
	}
	return baseURL + "/" + slugOrPath
}
