// Package commands implements the seogen subcommands.
package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/aadarsh214/seogen/internal/config"
)

// Global carries state shared by subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI is the root command definition and global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"seogen.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" help:"Generate pages, sitemaps and robots.txt from the configured data"`
	Sitemap  SitemapCmd  `cmd:"" help:"Write sitemap artifacts without recording a run"`
	Stats    StatsCmd    `cmd:"" help:"Print sitemap statistics for the configured corpus"`
	Render   RenderCmd   `cmd:"" help:"Generate and render every page to HTML"`
	Verify   VerifyCmd   `cmd:"" help:"Verify internal links across a rendered output directory"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
	Daemon   DaemonCmd   `cmd:"" help:"Run continuously: scheduled and file-triggered regeneration"`
}

// AfterApply runs after flag parsing; sets up a provisional logger so
// config loading itself is logged. loadConfig re-applies the configured
// handler afterwards.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig loads the configuration and reconfigures the default
// logger from its logging section. The -v flag wins over config level.
func loadConfig(root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}

	level := parseLevel(cfg.Logging.Level)
	if root.Verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))

	return cfg, nil
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
