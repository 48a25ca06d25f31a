package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/aadarsh214/seogen/internal/config"
	"github.com/aadarsh214/seogen/internal/events"
	"github.com/aadarsh214/seogen/internal/metrics"
	"github.com/aadarsh214/seogen/internal/run"
	"github.com/aadarsh214/seogen/internal/runstore"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Synthetic bool   `help:"Generate the synthetic benchmark corpus instead of reading the data directory"`
	Output    string `short:"o" help:"Override the configured output directory"`
}

func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if g.Output != "" {
		cfg.Output.Directory = g.Output
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runner, cleanup, err := buildRunner(cfg, metrics.NoopRecorder{})
	if err != nil {
		return err
	}
	defer cleanup()

	_, err = runner.Run(ctx, run.Options{Synthetic: g.Synthetic})
	return err
}

// buildRunner wires a runner with the run store and event publisher the
// config enables. The returned cleanup closes both.
func buildRunner(cfg *config.Config, rec metrics.Recorder) (*run.Runner, func(), error) {
	var store *runstore.Store
	if cfg.Store.Path != "" {
		var err error
		store, err = runstore.Open(cfg.Store.Path)
		if err != nil {
			return nil, nil, err
		}
	}

	var pub *events.Publisher
	if cfg.Events.Enabled {
		var err error
		pub, err = events.NewPublisher(&cfg.Events, slog.Default())
		if err != nil {
			if store != nil {
				_ = store.Close()
			}
			return nil, nil, err
		}
	}

	cleanup := func() {
		if pub != nil {
			pub.Close()
		}
		if store != nil {
			_ = store.Close()
		}
	}

	return run.NewRunner(cfg, slog.Default(), rec, store, pub), cleanup, nil
}
