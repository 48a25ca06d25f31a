package config

import "time"

// Default limits match the original production deployment: the sitemap
// protocol ceiling, ten authority-propagation iterations, and the link
// fan-out used when graphs were built for the 100k-page corpus.
const (
	DefaultMaxURLsPerSitemap   = 50000
	DefaultAuthorityIterations = 10
	DefaultRelatedLinkLimit    = 5
	DefaultContextualLinkLimit = 2
)

func (c *Config) applyDefaults() {
	if c.Site.Name == "" {
		c.Site.Name = "Aadarsh Gupta"
	}
	if c.Site.BaseURL == "" {
		c.Site.BaseURL = "https://aadarsh.pro"
	}
	if c.Site.DefaultDescription == "" {
		c.Site.DefaultDescription = "Full-stack software engineer and AI builder. View resume, projects, skills and ways to work together."
	}
	if len(c.Site.BrandKeywords) == 0 {
		c.Site.BrandKeywords = []string{"software engineer", "full stack developer", "AI builder"}
	}
	if c.Site.OGImagePath == "" {
		c.Site.OGImagePath = "/brand-icon.svg"
	}
	if c.Generation.MaxURLsPerSitemap == 0 {
		c.Generation.MaxURLsPerSitemap = DefaultMaxURLsPerSitemap
	}
	if c.Generation.AuthorityIterations == 0 {
		c.Generation.AuthorityIterations = DefaultAuthorityIterations
	}
	if c.Generation.RelatedLinkLimit == 0 {
		c.Generation.RelatedLinkLimit = DefaultRelatedLinkLimit
	}
	if c.Generation.ContextualLinkLimit == 0 {
		c.Generation.ContextualLinkLimit = DefaultContextualLinkLimit
	}
	if c.Generation.SyntheticScale == 0 {
		c.Generation.SyntheticScale = 1.0
	}
	if c.Data.Directory == "" {
		c.Data.Directory = "./data"
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "./public"
	}
	if c.Events.Subject == "" {
		c.Events.Subject = "seogen.runs"
	}
	if c.Events.Stream == "" {
		c.Events.Stream = "SEOGEN"
	}
	if c.Daemon.Interval == 0 {
		c.Daemon.Interval = Duration(6 * time.Hour)
	}
	if c.Daemon.Debounce == 0 {
		c.Daemon.Debounce = Duration(2 * time.Second)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}
