// Package linking builds the internal link structure between generated
// pages: breadcrumb trails, relatedness scoring, hub-and-spoke edges,
// contextual in-content links, and a PageRank-style authority score over
// the resulting graph.
package linking

import (
	"sort"
	"strings"

	"github.com/aadarsh214/seogen/internal/seo/page"
	"github.com/aadarsh214/seogen/internal/util/sets"
)

// Relatedness score components. Category is the strongest signal,
// followed by shared hub membership.
const (
	scoreSameCategory  = 10
	scoreSameHub       = 8
	scoreSameIntent    = 5
	scoreSameTemplate  = 3
	scorePerKeyword    = 2
	crossSpokeLinks    = 3
	weightHubToSpoke   = 10.0
	weightSpokeToHub   = 8.0
	weightRelatedSpoke = 3.0
)

// Engine builds link structures for one site. Limits of zero or below
// fall back to the package defaults.
type Engine struct {
	baseURL         string
	relatedLimit    int
	contextualLimit int
}

// NewEngine creates a linking engine rooted at baseURL.
func NewEngine(baseURL string, relatedLimit, contextualLimit int) *Engine {
	if relatedLimit <= 0 {
		relatedLimit = 5
	}
	if contextualLimit <= 0 {
		contextualLimit = 2
	}
	return &Engine{
		baseURL:         strings.TrimRight(baseURL, "/"),
		relatedLimit:    relatedLimit,
		contextualLimit: contextualLimit,
	}
}

// Breadcrumbs builds the trail for a page: Home, then the hub when the
// page belongs to one, then the page itself.
func (e *Engine) Breadcrumbs(p *page.Page, hub *page.Hub) []page.Breadcrumb {
	trail := []page.Breadcrumb{{Name: "Home", URL: e.baseURL}}
	if hub != nil {
		trail = append(trail, page.Breadcrumb{Name: hub.Title, URL: e.baseURL + "/" + hub.Slug})
	}
	return append(trail, page.Breadcrumb{Name: p.Title, URL: e.baseURL + "/" + p.Slug})
}

// RelatednessScore measures topical closeness of two pages. Keyword
// comparison is case-sensitive exact match over the union of primary
// and supporting keywords.
func RelatednessScore(a, b *page.Page) int {
	score := 0
	if a.Category == b.Category {
		score += scoreSameCategory
	}
	if a.Intent == b.Intent {
		score += scoreSameIntent
	}
	if a.Template == b.Template {
		score += scoreSameTemplate
	}
	ka := sets.New(a.Keywords()...)
	kb := sets.New(b.Keywords()...)
	score += ka.IntersectCount(kb) * scorePerKeyword
	if a.ParentHub != "" && a.ParentHub == b.ParentHub {
		score += scoreSameHub
	}
	return score
}

// RelatedPages returns up to max pages from candidates ranked by
// relatedness to current, best first. The current page is excluded by
// ID. Ties keep the candidates' input order.
func RelatedPages(current *page.Page, candidates []*page.Page, max int) []*page.Page {
	type scored struct {
		p     *page.Page
		score int
	}
	ranked := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == current.ID {
			continue
		}
		ranked = append(ranked, scored{p: c, score: RelatednessScore(current, c)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > max {
		ranked = ranked[:max]
	}
	out := make([]*page.Page, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.p)
	}
	return out
}

// AssignRelated fills every page's RelatedPages field with the slugs of
// its top-ranked peers.
func (e *Engine) AssignRelated(pages []*page.Page) {
	for _, p := range pages {
		related := RelatedPages(p, pages, e.relatedLimit)
		slugs := make([]string, 0, len(related))
		for _, r := range related {
			slugs = append(slugs, r.Slug)
		}
		p.RelatedPages = slugs
	}
}

// HubAndSpokeLinks produces the edges connecting a hub and its spokes:
// hub to every spoke (navigation), every spoke back to the hub
// (breadcrumb), and up to three cross-spoke related edges per spoke.
func HubAndSpokeLinks(hub *page.Hub, spokes []*page.Page) []page.InternalLink {
	links := make([]page.InternalLink, 0, len(spokes)*2)
	for _, spoke := range spokes {
		links = append(links, page.InternalLink{
			From:       hub.Slug,
			To:         spoke.Slug,
			AnchorText: spoke.Title,
			Type:       page.LinkNavigation,
			Weight:     weightHubToSpoke,
		})
	}
	for _, spoke := range spokes {
		links = append(links, page.InternalLink{
			From:       spoke.Slug,
			To:         hub.Slug,
			AnchorText: hub.Title,
			Type:       page.LinkBreadcrumb,
			Weight:     weightSpokeToHub,
		})
	}
	for _, spoke := range spokes {
		for _, related := range RelatedPages(spoke, spokes, crossSpokeLinks) {
			links = append(links, page.InternalLink{
				From:       spoke.Slug,
				To:         related.Slug,
				AnchorText: related.Title,
				Type:       page.LinkRelated,
				Weight:     weightRelatedSpoke,
			})
		}
	}
	return links
}

// ContextualLinks finds in-content link opportunities from source to the
// candidate pages. Matching is a bidirectional substring test between
// the lowercased whitespace tokens of the source content and each
// candidate keyword; the edge weight is the number of matching tokens.
// At most max edges are returned, heaviest first, ties keeping candidate
// order.
func ContextualLinks(source *page.Page, candidates []*page.Page, max int) []page.InternalLink {
	words := strings.Fields(strings.ToLower(source.Content))

	var links []page.InternalLink
	for _, cand := range candidates {
		if cand.ID == source.ID {
			continue
		}
		for _, keyword := range cand.Keywords() {
			kw := strings.ToLower(keyword)
			if kw == "" {
				continue
			}
			occurrences := 0
			for _, w := range words {
				if strings.Contains(w, kw) || strings.Contains(kw, w) {
					occurrences++
				}
			}
			if occurrences > 0 {
				links = append(links, page.InternalLink{
					From:       source.Slug,
					To:         cand.Slug,
					AnchorText: cand.Title,
					Type:       page.LinkContextual,
					Weight:     float64(occurrences),
				})
			}
		}
	}
	sort.SliceStable(links, func(i, j int) bool { return links[i].Weight > links[j].Weight })
	if len(links) > max {
		links = links[:max]
	}
	return links
}
