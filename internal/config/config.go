// Package config loads and validates the seogen configuration file.
// Configuration is YAML with environment variable expansion; a .env file
// next to the working directory is honored without overwriting the
// process environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aadarsh214/seogen/internal/foundation/errors"
)

// Config is the application configuration.
type Config struct {
	Site       SiteConfig       `yaml:"site"`
	Generation GenerationConfig `yaml:"generation"`
	Data       DataConfig       `yaml:"data"`
	Output     OutputConfig     `yaml:"output"`
	Store      StoreConfig      `yaml:"store"`
	Events     EventsConfig     `yaml:"events"`
	Daemon     DaemonConfig     `yaml:"daemon"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SiteConfig carries the site identity folded into metadata, schema and
// sitemap output.
type SiteConfig struct {
	BaseURL            string   `yaml:"base_url"`
	Name               string   `yaml:"name"`
	DefaultDescription string   `yaml:"default_description,omitempty"`
	BrandKeywords      []string `yaml:"brand_keywords,omitempty"`
	OGImagePath        string   `yaml:"og_image_path,omitempty"`
	TwitterHandle      string   `yaml:"twitter_handle,omitempty"`
	PersonName         string   `yaml:"person_name,omitempty"`
	JobTitle           string   `yaml:"job_title,omitempty"`
	SameAs             []string `yaml:"same_as,omitempty"`
	KnowsAbout         []string `yaml:"knows_about,omitempty"`
	StaticPages        []Static `yaml:"static_pages,omitempty"`
}

// Static is one hand-maintained page included in the main sitemap.
type Static struct {
	Path     string  `yaml:"path"`
	Priority float64 `yaml:"priority,omitempty"`
}

// GenerationConfig tunes the page synthesis and linking engine.
type GenerationConfig struct {
	MaxURLsPerSitemap   int     `yaml:"max_urls_per_sitemap,omitempty"`
	AuthorityIterations int     `yaml:"authority_iterations,omitempty"`
	RelatedLinkLimit    int     `yaml:"related_link_limit,omitempty"`
	ContextualLinkLimit int     `yaml:"contextual_link_limit,omitempty"`
	SyntheticScale      float64 `yaml:"synthetic_scale,omitempty"`
}

// DataConfig locates input record files.
type DataConfig struct {
	Directory string `yaml:"directory,omitempty"`
}

// OutputConfig controls artifact emission.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean,omitempty"`
}

// StoreConfig configures the SQLite generation-run store.
type StoreConfig struct {
	Path string `yaml:"path,omitempty"` // empty disables the store
}

// EventsConfig configures optional NATS run-event publishing.
type EventsConfig struct {
	Enabled bool   `yaml:"enabled,omitempty"`
	NATSURL string `yaml:"nats_url,omitempty"`
	Subject string `yaml:"subject,omitempty"`
	Stream  string `yaml:"stream,omitempty"`
}

// DaemonConfig configures the periodic regeneration mode.
type DaemonConfig struct {
	Interval      Duration `yaml:"interval,omitempty"`
	Debounce      Duration `yaml:"debounce,omitempty"`
	MetricsListen string   `yaml:"metrics_listen,omitempty"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`  // debug|info|warn|error
	Format string `yaml:"format,omitempty"` // text|json
}

// Load reads, expands and validates the configuration at path.
func Load(path string) (*Config, error) {
	// .env is optional; existing process env always wins.
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "Loaded environment variables from .env")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.ConfigError("configuration file not found").
			WithContext("path", path).
			Build()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryConfig, "read config file").
			WithContext("path", path).
			Build()
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, errors.Wrap(err, errors.CategoryConfig, "unmarshal config").
			WithContext("path", path).
			Build()
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks invariants the defaults cannot repair.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Site.BaseURL, "http://") && !strings.HasPrefix(c.Site.BaseURL, "https://") {
		return errors.ConfigError("site.base_url must be an absolute http(s) URL").
			WithContext("base_url", c.Site.BaseURL).
			Build()
	}
	if c.Generation.MaxURLsPerSitemap > 50000 {
		return errors.ConfigError("generation.max_urls_per_sitemap exceeds the sitemap protocol ceiling of 50000").
			WithContext("max_urls_per_sitemap", c.Generation.MaxURLsPerSitemap).
			Build()
	}
	if c.Events.Enabled && c.Events.NATSURL == "" {
		return errors.ConfigError("events.nats_url is required when events.enabled is true").Build()
	}
	return nil
}
