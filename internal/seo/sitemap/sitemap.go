// Package sitemap emits sitemap XML, sitemap indexes, and robots.txt
// for the generated site, splitting large categories into paginated
// sitemap files under the 50,000-URL protocol ceiling.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aadarsh214/seogen/internal/seo/page"
)

const xmlnsSitemap = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Entry is one URL of a sitemap. Zero-valued optional fields are
// omitted from the XML.
type Entry struct {
	Loc        string
	LastMod    time.Time
	ChangeFreq page.ChangeFreq
	Priority   float64
}

// StaticPage is a hand-maintained site page included in the main
// sitemap.
type StaticPage struct {
	Path     string
	LastMod  time.Time
	Priority float64
}

type xmlURL struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod,omitempty"`
	ChangeFreq string   `xml:"changefreq,omitempty"`
	Priority   string   `xml:"priority,omitempty"`
}

type xmlURLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

type xmlSitemapRef struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type xmlSitemapIndex struct {
	XMLName  xml.Name        `xml:"sitemapindex"`
	Xmlns    string          `xml:"xmlns,attr"`
	Sitemaps []xmlSitemapRef `xml:"sitemap"`
}

// Generator renders sitemap artifacts for one site. A non-positive
// maxURLs falls back to the protocol limit of 50,000.
type Generator struct {
	baseURL string
	maxURLs int
}

// NewGenerator creates a sitemap generator rooted at baseURL.
func NewGenerator(baseURL string, maxURLs int) *Generator {
	if maxURLs <= 0 {
		maxURLs = 50000
	}
	return &Generator{baseURL: strings.TrimRight(baseURL, "/"), maxURLs: maxURLs}
}

// MaxURLs returns the per-sitemap URL ceiling in effect.
func (g *Generator) MaxURLs() int { return g.maxURLs }

// Render serializes entries as a sitemap urlset document.
func (g *Generator) Render(entries []Entry) ([]byte, error) {
	set := xmlURLSet{Xmlns: xmlnsSitemap, URLs: make([]xmlURL, 0, len(entries))}
	for _, e := range entries {
		set.URLs = append(set.URLs, xmlURL{
			Loc:        e.Loc,
			LastMod:    formatLastMod(e.LastMod),
			ChangeFreq: string(e.ChangeFreq),
			Priority:   formatPriority(e.Priority),
		})
	}
	return marshalDoc(set)
}

// CategorySitemap builds the sitemap for one category: the category's
// hubs first at priority 0.8, then its pages with intent-derived
// priority and change frequency.
func (g *Generator) CategorySitemap(category string, pages []*page.Page, hubs []*page.Hub) ([]byte, error) {
	var entries []Entry
	for _, hub := range hubs {
		if hub.Category != category {
			continue
		}
		entries = append(entries, g.HubEntry(hub))
	}
	for _, p := range pages {
		if p.Category != category {
			continue
		}
		entries = append(entries, g.PageEntry(p))
	}
	return g.Render(entries)
}

// MainSitemap builds the root sitemap: the static pages followed by
// references to the per-category sitemap files.
func (g *Generator) MainSitemap(static []StaticPage, categories []string) ([]byte, error) {
	var entries []Entry
	for _, s := range static {
		priority := s.Priority
		if priority == 0 {
			priority = 0.5
		}
		entries = append(entries, Entry{
			Loc:        g.baseURL + s.Path,
			LastMod:    s.LastMod,
			ChangeFreq: page.FreqWeekly,
			Priority:   priority,
		})
	}
	for _, category := range categories {
		entries = append(entries, Entry{
			Loc:        g.baseURL + "/sitemaps/" + category + ".xml",
			ChangeFreq: page.FreqDaily,
			Priority:   0.9,
		})
	}
	return g.Render(entries)
}

// PaginatedSitemap renders the n-th page (1-based) of a large page
// list. The returned flag reports whether more pages follow.
func (g *Generator) PaginatedSitemap(pages []*page.Page, pageNum int) ([]byte, bool, error) {
	if pageNum < 1 {
		pageNum = 1
	}
	start := (pageNum - 1) * g.maxURLs
	end := start + g.maxURLs
	if start > len(pages) {
		start = len(pages)
	}
	if end > len(pages) {
		end = len(pages)
	}

	entries := make([]Entry, 0, end-start)
	for _, p := range pages[start:end] {
		entries = append(entries, g.PageEntry(p))
	}
	data, err := g.Render(entries)
	return data, end < len(pages), err
}

// SitemapPaths lists every sitemap file the site needs, relative to
// the site root: the main sitemap first, then one file per category,
// split into sitemaps/{category}-page-{n}.xml parts when the category
// exceeds the URL ceiling.
func (g *Generator) SitemapPaths(pages []*page.Page, hubs []*page.Hub) []string {
	paths := []string{"sitemap.xml"}
	for _, category := range AllCategories(pages, hubs) {
		pageCount := 0
		for _, p := range pages {
			if p.Category == category {
				pageCount++
			}
		}
		hubCount := 0
		for _, h := range hubs {
			if h.Category == category {
				hubCount++
			}
		}
		if pageCount+hubCount <= g.maxURLs {
			paths = append(paths, "sitemaps/"+category+".xml")
			continue
		}
		parts := (pageCount + hubCount + g.maxURLs - 1) / g.maxURLs
		for i := 1; i <= parts; i++ {
			paths = append(paths, fmt.Sprintf("sitemaps/%s-page-%d.xml", category, i))
		}
	}
	return paths
}

// SitemapIndex builds a sitemap index referencing the given sitemap
// paths, all stamped with lastMod.
func (g *Generator) SitemapIndex(paths []string, lastMod time.Time) ([]byte, error) {
	index := xmlSitemapIndex{Xmlns: xmlnsSitemap, Sitemaps: make([]xmlSitemapRef, 0, len(paths))}
	for _, p := range paths {
		index.Sitemaps = append(index.Sitemaps, xmlSitemapRef{
			Loc:     g.baseURL + "/" + p,
			LastMod: formatLastMod(lastMod),
		})
	}
	return marshalDoc(index)
}

// Categories returns the distinct page categories in first-seen order.
func Categories(pages []*page.Page) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range pages {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// AllCategories returns the distinct categories across pages and hubs
// in first-seen order, pages first. A category whose records all failed
// validation still has a hub, and it still needs a sitemap file.
func AllCategories(pages []*page.Page, hubs []*page.Hub) []string {
	out := Categories(pages)
	seen := make(map[string]struct{}, len(out))
	for _, category := range out {
		seen[category] = struct{}{}
	}
	for _, h := range hubs {
		if _, ok := seen[h.Category]; ok {
			continue
		}
		seen[h.Category] = struct{}{}
		out = append(out, h.Category)
	}
	return out
}

// HubEntry builds the sitemap entry for a hub page.
func (g *Generator) HubEntry(hub *page.Hub) Entry {
	return Entry{
		Loc:        g.baseURL + "/" + hub.Slug,
		LastMod:    hub.LastModified,
		ChangeFreq: page.FreqWeekly,
		Priority:   0.8,
	}
}

// PageEntry builds the sitemap entry for a page: priority and change
// frequency derive from the page's intent.
func (g *Generator) PageEntry(p *page.Page) Entry {
	priority := 0.5
	freq := page.FreqWeekly
	switch p.Intent {
	case page.IntentNavigational:
		priority = 0.7
		freq = page.FreqMonthly
	case page.IntentTransactional:
		priority = 0.6
	}
	return Entry{
		Loc:        g.baseURL + "/" + p.Slug,
		LastMod:    p.LastModified,
		ChangeFreq: freq,
		Priority:   priority,
	}
}

func formatLastMod(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatPriority(p float64) string {
	if p == 0 {
		return ""
	}
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func marshalDoc(v any) ([]byte, error) {
	body, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
