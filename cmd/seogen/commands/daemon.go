package commands

import (
	"context"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/aadarsh214/seogen/internal/daemon"
	"github.com/aadarsh214/seogen/internal/metrics"
	"github.com/aadarsh214/seogen/internal/run"
)

// DaemonCmd implements the 'daemon' command.
type DaemonCmd struct {
	Synthetic bool `help:"Regenerate the synthetic benchmark corpus instead of reading the data directory"`
	Render    bool `help:"Also render pages to HTML on every regeneration"`
}

func (d *DaemonCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	registry := prom.NewRegistry()
	recorder := metrics.NewPrometheusRecorder(registry)

	runner, cleanup, err := buildRunner(cfg, recorder)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := run.Options{Synthetic: d.Synthetic, RenderHTML: d.Render}
	return daemon.New(cfg, nil, runner, registry, opts).Run(ctx)
}
