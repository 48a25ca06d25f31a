package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/aadarsh214/seogen/internal/metrics"
	"github.com/aadarsh214/seogen/internal/run"
)

// RenderCmd implements the 'render' command: a full generation run that
// also renders every page to HTML.
type RenderCmd struct {
	Synthetic bool   `help:"Generate the synthetic benchmark corpus instead of reading the data directory"`
	Output    string `short:"o" help:"Override the configured output directory"`
}

func (r *RenderCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if r.Output != "" {
		cfg.Output.Directory = r.Output
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runner, cleanup, err := buildRunner(cfg, metrics.NoopRecorder{})
	if err != nil {
		return err
	}
	defer cleanup()

	_, err = runner.Run(ctx, run.Options{Synthetic: r.Synthetic, RenderHTML: true})
	return err
}
