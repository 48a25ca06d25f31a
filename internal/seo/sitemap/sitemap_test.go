package sitemap

import (
	"encoding/xml"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadarsh214/seogen/internal/seo/page"
)

type urlsetDoc struct {
	XMLName xml.Name `xml:"urlset"`
	URLs    []struct {
		Loc        string `xml:"loc"`
		LastMod    string `xml:"lastmod"`
		ChangeFreq string `xml:"changefreq"`
		Priority   string `xml:"priority"`
	} `xml:"url"`
}

type indexDoc struct {
	XMLName  xml.Name `xml:"sitemapindex"`
	Sitemaps []struct {
		Loc     string `xml:"loc"`
		LastMod string `xml:"lastmod"`
	} `xml:"sitemap"`
}

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func sitemapPage(slug, category string, intent page.Intent) *page.Page {
	return &page.Page{
		ID:           category + "-" + slug,
		Slug:         slug,
		Title:        slug,
		Category:     category,
		Intent:       intent,
		LastModified: testTime,
	}
}

func decodeURLSet(t *testing.T, data []byte) urlsetDoc {
	t.Helper()
	var doc urlsetDoc
	require.NoError(t, xml.Unmarshal(data, &doc))
	return doc
}

func TestCategorySitemapHubsFirst(t *testing.T) {
	g := NewGenerator("https://example.com", 0)
	pages := []*page.Page{
		sitemapPage("go-guide", "guides", page.IntentInformational),
		sitemapPage("buy-course", "guides", page.IntentTransactional),
		sitemapPage("other", "tools", page.IntentInformational),
	}
	hubs := []*page.Hub{
		{Slug: "guides", Category: "guides", LastModified: testTime},
		{Slug: "tools", Category: "tools", LastModified: testTime},
	}

	data, err := g.CategorySitemap("guides", pages, hubs)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), xml.Header))

	doc := decodeURLSet(t, data)
	require.Len(t, doc.URLs, 3, "one hub plus two category pages")

	assert.Equal(t, "https://example.com/guides", doc.URLs[0].Loc)
	assert.Equal(t, "0.8", doc.URLs[0].Priority)
	assert.Equal(t, "weekly", doc.URLs[0].ChangeFreq)

	assert.Equal(t, "https://example.com/go-guide", doc.URLs[1].Loc)
	assert.Equal(t, "0.5", doc.URLs[1].Priority)
	assert.Equal(t, "2026-03-01T12:00:00Z", doc.URLs[1].LastMod)

	assert.Equal(t, "0.6", doc.URLs[2].Priority)
}

func TestPageEntryIntentMapping(t *testing.T) {
	g := NewGenerator("https://example.com", 0)
	tests := []struct {
		intent   page.Intent
		priority string
		freq     string
	}{
		{page.IntentNavigational, "0.7", "monthly"},
		{page.IntentTransactional, "0.6", "weekly"},
		{page.IntentInformational, "0.5", "weekly"},
	}
	for _, tt := range tests {
		entry := g.PageEntry(sitemapPage("p", "c", tt.intent))
		assert.Equal(t, tt.priority, formatPriority(entry.Priority), "intent %s", tt.intent)
		assert.Equal(t, tt.freq, string(entry.ChangeFreq), "intent %s", tt.intent)
	}
}

func TestMainSitemap(t *testing.T) {
	g := NewGenerator("https://example.com", 0)
	static := []StaticPage{
		{Path: "/", LastMod: testTime, Priority: 1.0},
		{Path: "/resume"},
	}

	data, err := g.MainSitemap(static, []string{"guides", "tools"})
	require.NoError(t, err)
	doc := decodeURLSet(t, data)
	require.Len(t, doc.URLs, 4)

	assert.Equal(t, "https://example.com/", doc.URLs[0].Loc)
	assert.Equal(t, "1", doc.URLs[0].Priority)

	// Static pages without explicit priority default to 0.5 and carry
	// no lastmod.
	assert.Equal(t, "https://example.com/resume", doc.URLs[1].Loc)
	assert.Equal(t, "0.5", doc.URLs[1].Priority)
	assert.Empty(t, doc.URLs[1].LastMod)

	assert.Equal(t, "https://example.com/sitemaps/guides.xml", doc.URLs[2].Loc)
	assert.Equal(t, "0.9", doc.URLs[2].Priority)
	assert.Equal(t, "daily", doc.URLs[2].ChangeFreq)
}

func TestPaginatedSitemap(t *testing.T) {
	g := NewGenerator("https://example.com", 3)
	var pages []*page.Page
	for i := 0; i < 7; i++ {
		pages = append(pages, sitemapPage(fmt.Sprintf("p-%d", i), "guides", page.IntentInformational))
	}

	data, more, err := g.PaginatedSitemap(pages, 1)
	require.NoError(t, err)
	assert.True(t, more)
	assert.Len(t, decodeURLSet(t, data).URLs, 3)

	data, more, err = g.PaginatedSitemap(pages, 3)
	require.NoError(t, err)
	assert.False(t, more)
	doc := decodeURLSet(t, data)
	require.Len(t, doc.URLs, 1)
	assert.Equal(t, "https://example.com/p-6", doc.URLs[0].Loc)

	data, more, err = g.PaginatedSitemap(pages, 9)
	require.NoError(t, err)
	assert.False(t, more)
	assert.Empty(t, decodeURLSet(t, data).URLs)
}

func TestSitemapPaths(t *testing.T) {
	g := NewGenerator("https://example.com", 3)
	var pages []*page.Page
	for i := 0; i < 7; i++ {
		pages = append(pages, sitemapPage(fmt.Sprintf("big-%d", i), "big", page.IntentInformational))
	}
	pages = append(pages, sitemapPage("small-1", "small", page.IntentInformational))
	hubs := []*page.Hub{{ID: "hub-big", Slug: "big", Category: "big"}}

	paths := g.SitemapPaths(pages, hubs)
	assert.Equal(t, []string{
		"sitemap.xml",
		"sitemaps/big-page-1.xml",
		"sitemaps/big-page-2.xml",
		"sitemaps/big-page-3.xml",
		"sitemaps/small.xml",
	}, paths)
}

func TestSitemapPathsHubsCountTowardCeiling(t *testing.T) {
	// Three pages fit the limit of three on their own, but the hub
	// pushes the category over and forces pagination.
	g := NewGenerator("https://example.com", 3)
	var pages []*page.Page
	for i := 0; i < 3; i++ {
		pages = append(pages, sitemapPage(fmt.Sprintf("p-%d", i), "guides", page.IntentInformational))
	}
	hubs := []*page.Hub{{Slug: "guides", Category: "guides"}}

	paths := g.SitemapPaths(pages, hubs)
	assert.Equal(t, []string{
		"sitemap.xml",
		"sitemaps/guides-page-1.xml",
		"sitemaps/guides-page-2.xml",
	}, paths)
}

func TestSitemapPathsIncludeHubOnlyCategories(t *testing.T) {
	g := NewGenerator("https://example.com", 0)
	pages := []*page.Page{sitemapPage("go-guide", "guides", page.IntentInformational)}
	hubs := []*page.Hub{
		{Slug: "guides", Category: "guides"},
		{Slug: "cloud", Category: "cloud"},
		{Slug: "devops", Category: "devops"},
	}

	paths := g.SitemapPaths(pages, hubs)
	assert.Equal(t, []string{
		"sitemap.xml",
		"sitemaps/guides.xml",
		"sitemaps/cloud.xml",
		"sitemaps/devops.xml",
	}, paths)
}

func TestAllCategories(t *testing.T) {
	pages := []*page.Page{
		sitemapPage("a", "guides", page.IntentInformational),
		sitemapPage("b", "tools", page.IntentInformational),
		sitemapPage("c", "guides", page.IntentInformational),
	}
	hubs := []*page.Hub{
		{Slug: "tools", Category: "tools"},
		{Slug: "cloud", Category: "cloud"},
	}

	assert.Equal(t, []string{"guides", "tools", "cloud"}, AllCategories(pages, hubs))
	assert.Equal(t, []string{"cloud"}, AllCategories(nil, hubs[1:]))
	assert.Empty(t, AllCategories(nil, nil))
}

func TestSitemapIndex(t *testing.T) {
	g := NewGenerator("https://example.com", 0)
	data, err := g.SitemapIndex([]string{"sitemap.xml", "sitemaps/guides.xml"}, testTime)
	require.NoError(t, err)

	var doc indexDoc
	require.NoError(t, xml.Unmarshal(data, &doc))
	require.Len(t, doc.Sitemaps, 2)
	assert.Equal(t, "https://example.com/sitemap.xml", doc.Sitemaps[0].Loc)
	assert.Equal(t, "https://example.com/sitemaps/guides.xml", doc.Sitemaps[1].Loc)
	assert.Equal(t, "2026-03-01T12:00:00Z", doc.Sitemaps[0].LastMod)
}

func TestRobotsTxt(t *testing.T) {
	g := NewGenerator("https://example.com", 0)
	robots := g.RobotsTxt([]string{"sitemap.xml", "sitemaps/guides.xml"})

	assert.True(t, strings.HasPrefix(robots, "User-agent: *\nAllow: /\n"))
	assert.Contains(t, robots, "Content-signal: search=yes,ai-input=yes,ai-train=no")
	for _, bot := range []string{"GPTBot", "CCBot", "ClaudeBot", "PerplexityBot"} {
		assert.Contains(t, robots, "User-agent: "+bot+"\nAllow: /")
	}
	assert.Contains(t, robots, "Sitemap: https://example.com/sitemap.xml\n")
	assert.Contains(t, robots, "Sitemap: https://example.com/sitemaps/guides.xml\n")

	// Signals must precede the bot stanzas, sitemap lines come last.
	signalIdx := strings.Index(robots, "Content-signal:")
	botIdx := strings.Index(robots, "User-agent: GPTBot")
	sitemapIdx := strings.Index(robots, "Sitemap:")
	assert.Less(t, signalIdx, botIdx)
	assert.Less(t, botIdx, sitemapIdx)
}

func TestStats(t *testing.T) {
	g := NewGenerator("https://example.com", 3)
	var pages []*page.Page
	for i := 0; i < 7; i++ {
		pages = append(pages, sitemapPage(fmt.Sprintf("big-%d", i), "big", page.IntentInformational))
	}
	pages = append(pages, sitemapPage("small-1", "small", page.IntentInformational))
	hubs := []*page.Hub{{Slug: "big", Category: "big"}}

	stats := g.Stats(pages, hubs)
	assert.Equal(t, 8, stats.TotalPages)
	assert.Equal(t, 1, stats.TotalHubs)
	assert.Equal(t, 2, stats.TotalCategories)
	assert.Equal(t, "big", stats.LargestCategory)
	assert.Equal(t, 4, stats.AveragePagesPerCategory)
	// Main sitemap, three paginated files for "big", one for "small".
	assert.Equal(t, 5, stats.SitemapFiles)
}

func TestStatsCountsHubOnlyCategories(t *testing.T) {
	g := NewGenerator("https://example.com", 0)
	pages := []*page.Page{sitemapPage("go-guide", "guides", page.IntentInformational)}
	hubs := []*page.Hub{
		{Slug: "guides", Category: "guides"},
		{Slug: "cloud", Category: "cloud"},
	}

	stats := g.Stats(pages, hubs)
	assert.Equal(t, 2, stats.TotalCategories)
	// Main sitemap plus one file per category, hub-only included.
	assert.Equal(t, 3, stats.SitemapFiles)
}

func TestStatsEmpty(t *testing.T) {
	g := NewGenerator("https://example.com", 0)
	stats := g.Stats(nil, nil)
	assert.Zero(t, stats.TotalPages)
	assert.Zero(t, stats.AveragePagesPerCategory)
	assert.Equal(t, 1, stats.SitemapFiles, "the main sitemap always exists")
}
