package linking

// PageRank-style constants. Each node keeps a 0.15 base and receives
// 0.85 of the weighted authority flowing in over incoming edges.
const (
	authorityBase    = 0.15
	authorityDamping = 0.85

	// DefaultAuthorityIterations is the fixed-point iteration count used
	// when callers pass a non-positive value.
	DefaultAuthorityIterations = 10
)

type incomingEdge struct {
	from   string
	weight float64
}

// Authority computes an authority score for every node of the graph.
// Scores start at 1.0 and are refined over the given number of
// synchronous iterations: each round reads only the previous round's
// values. A source contributes weight-proportional authority split
// across its outgoing edge count; sources with no outgoing edges
// contribute nothing.
func Authority(g *Graph, iterations int) map[string]float64 {
	if iterations <= 0 {
		iterations = DefaultAuthorityIterations
	}
	nodes := g.Nodes()

	// Incoming-edge index, built once. Iterating per-node over every
	// edge in the graph would be quadratic on large sites.
	incoming := make(map[string][]incomingEdge, len(nodes))
	outdegree := make(map[string]int, len(nodes))
	for _, slug := range nodes {
		links := g.Outgoing(slug)
		outdegree[slug] = len(links)
		for _, link := range links {
			incoming[link.To] = append(incoming[link.To], incomingEdge{from: link.From, weight: link.Weight})
		}
	}

	current := make(map[string]float64, len(nodes))
	for _, slug := range nodes {
		current[slug] = 1.0
	}

	for i := 0; i < iterations; i++ {
		next := make(map[string]float64, len(nodes))
		for _, slug := range nodes {
			authority := authorityBase
			for _, edge := range incoming[slug] {
				out := outdegree[edge.from]
				if out == 0 {
					continue
				}
				from, ok := current[edge.from]
				if !ok {
					from = 1.0
				}
				authority += authorityDamping * from * edge.weight / float64(out)
			}
			next[slug] = authority
		}
		current = next
	}
	return current
}

// AuthorityOf computes the authority of a single slug. Slugs absent
// from the graph score 1.0.
func AuthorityOf(g *Graph, slug string, iterations int) float64 {
	scores := Authority(g, iterations)
	if score, ok := scores[slug]; ok {
		return score
	}
	return 1.0
}
