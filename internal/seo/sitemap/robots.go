package sitemap

import "strings"

// RobotsTxt renders the site's robots.txt: crawl-all for everyone, a
// Content-signal line opting content into search and real-time AI
// answers but out of model training, explicit allow stanzas for the
// common AI answer bots, and one Sitemap line per sitemap path.
func (g *Generator) RobotsTxt(sitemapPaths []string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\nAllow: /\n\n")
	b.WriteString("# Content signals for search engines and AI systems\n")
	b.WriteString("# search    : building a search index and returning links/snippets\n")
	b.WriteString("# ai-input  : using content as input for real-time answers (AEO)\n")
	b.WriteString("# ai-train  : using content to train or fine-tune models\n")
	b.WriteString("Content-signal: search=yes,ai-input=yes,ai-train=no\n\n")
	b.WriteString("# Explicitly allow common AI answer bots to crawl for retrieval\n")
	for _, bot := range []string{"GPTBot", "CCBot", "ClaudeBot", "PerplexityBot"} {
		b.WriteString("User-agent: " + bot + "\nAllow: /\n\n")
	}
	for _, path := range sitemapPaths {
		b.WriteString("Sitemap: " + g.baseURL + "/" + path + "\n")
	}
	return b.String()
}
