package sitemap

import (
	"math"

	"github.com/aadarsh214/seogen/internal/seo/page"
)

// Stats summarizes the sitemap footprint of a generated site.
type Stats struct {
	TotalPages              int    `json:"totalPages"`
	TotalHubs               int    `json:"totalHubs"`
	TotalCategories         int    `json:"totalCategories"`
	SitemapFiles            int    `json:"sitemapFiles"`
	LargestCategory         string `json:"largestCategory"`
	AveragePagesPerCategory int    `json:"averagePagesPerCategory"`
}

// Stats computes sitemap statistics. The file count is the exact
// number of sitemap files SitemapPaths would emit, pagination
// included, not a whole-site estimate.
func (g *Generator) Stats(pages []*page.Page, hubs []*page.Hub) Stats {
	categories := AllCategories(pages, hubs)

	counts := make(map[string]int, len(categories))
	for _, p := range pages {
		counts[p.Category]++
	}
	largest := ""
	for _, category := range categories {
		if largest == "" || counts[category] > counts[largest] {
			largest = category
		}
	}

	average := 0
	if len(categories) > 0 {
		average = int(math.Round(float64(len(pages)) / float64(len(categories))))
	}

	return Stats{
		TotalPages:              len(pages),
		TotalHubs:               len(hubs),
		TotalCategories:         len(categories),
		SitemapFiles:            len(g.SitemapPaths(pages, hubs)),
		LargestCategory:         largest,
		AveragePagesPerCategory: average,
	}
}
