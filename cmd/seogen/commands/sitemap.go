package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/aadarsh214/seogen/internal/run"
)

// SitemapCmd implements the 'sitemap' command: the generation pipeline
// without run recording or event publishing, for ad-hoc regeneration of
// the sitemap artifacts.
type SitemapCmd struct {
	Synthetic bool   `help:"Generate the synthetic benchmark corpus instead of reading the data directory"`
	Output    string `short:"o" help:"Override the configured output directory"`
}

func (s *SitemapCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if s.Output != "" {
		cfg.Output.Directory = s.Output
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runner := run.NewRunner(cfg, nil, nil, nil, nil)
	_, err = runner.Run(ctx, run.Options{Synthetic: s.Synthetic})
	return err
}
