package linking

import "github.com/aadarsh214/seogen/internal/seo/page"

// Graph is the directed internal link graph. Every page and hub slug is
// a node, even when it has no edges. Node order is insertion order, so
// traversal is deterministic.
type Graph struct {
	edges map[string][]page.InternalLink
	order []string
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{edges: make(map[string][]page.InternalLink)}
}

// AddNode registers a slug with no outgoing edges. Adding an existing
// node is a no-op.
func (g *Graph) AddNode(slug string) {
	if _, ok := g.edges[slug]; ok {
		return
	}
	g.edges[slug] = nil
	g.order = append(g.order, slug)
}

// AddEdge appends a link to its source node's edge list, registering
// the source as a node if needed. Parallel edges are retained.
func (g *Graph) AddEdge(link page.InternalLink) {
	g.AddNode(link.From)
	g.edges[link.From] = append(g.edges[link.From], link)
}

// Nodes returns every node slug in insertion order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Outgoing returns the outgoing edges of a slug, nil for unknown or
// edge-less nodes.
func (g *Graph) Outgoing(slug string) []page.InternalLink {
	return g.edges[slug]
}

// Outdegree returns the number of outgoing edges of a slug.
func (g *Graph) Outdegree(slug string) int {
	return len(g.edges[slug])
}

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, links := range g.edges {
		n += len(links)
	}
	return n
}

// BuildLinkGraph assembles the site-wide link graph: hub-and-spoke
// edges for every hub, then up to the configured number of contextual
// edges per page against all other pages. Spoke membership is matched
// on the page's ParentHub against the hub ID.
func (e *Engine) BuildLinkGraph(pages []*page.Page, hubs []*page.Hub) *Graph {
	g := NewGraph()
	for _, p := range pages {
		g.AddNode(p.Slug)
	}
	for _, h := range hubs {
		g.AddNode(h.Slug)
	}

	for _, hub := range hubs {
		var spokes []*page.Page
		for _, p := range pages {
			if p.ParentHub == hub.ID {
				spokes = append(spokes, p)
			}
		}
		for _, link := range HubAndSpokeLinks(hub, spokes) {
			g.AddEdge(link)
		}
	}

	for _, p := range pages {
		for _, link := range ContextualLinks(p, pages, e.contextualLimit) {
			g.AddEdge(link)
		}
	}
	return g
}
