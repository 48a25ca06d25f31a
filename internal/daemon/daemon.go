// Package daemon runs seogen as a long-lived process: periodic
// regeneration on a schedule, debounced regeneration when the data
// directory changes, and an optional Prometheus metrics listener.
package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-co-op/gocron/v2"
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/aadarsh214/seogen/internal/config"
	"github.com/aadarsh214/seogen/internal/logfields"
	"github.com/aadarsh214/seogen/internal/metrics"
	"github.com/aadarsh214/seogen/internal/run"
)

// Generator executes one generation run. Satisfied by *run.Runner.
type Generator interface {
	Run(ctx context.Context, opts run.Options) (*run.Outcome, error)
}

// Daemon coordinates scheduled and file-triggered regeneration.
type Daemon struct {
	cfg      *config.Config
	log      *slog.Logger
	runner   Generator
	registry *prom.Registry
	opts     run.Options

	triggerCh chan string
}

// New creates a daemon. The registry may be nil to disable the metrics
// listener regardless of config.
func New(cfg *config.Config, log *slog.Logger, runner Generator, registry *prom.Registry, opts run.Options) *Daemon {
	if log == nil {
		log = slog.Default()
	}
	return &Daemon{
		cfg:       cfg,
		log:       log,
		runner:    runner,
		registry:  registry,
		opts:      opts,
		triggerCh: make(chan string, 1),
	}
}

// Run blocks until ctx is canceled. An initial generation runs at
// startup; afterwards runs happen on the configured interval and on
// debounced data-directory changes.
func (d *Daemon) Run(ctx context.Context) error {
	scheduler, err := d.startScheduler()
	if err != nil {
		return err
	}
	defer func() {
		if shutdownErr := scheduler.Shutdown(); shutdownErr != nil {
			d.log.Error("scheduler shutdown failed", "error", shutdownErr)
		}
	}()

	if d.cfg.Data.Directory != "" {
		watcher, watchErr := newDataWatcher(d.cfg.Data.Directory, d.log, d.trigger)
		if watchErr != nil {
			return watchErr
		}
		go watcher.watch(ctx)
		defer watcher.close()
	}

	if addr := d.cfg.Daemon.MetricsListen; addr != "" && d.registry != nil {
		go d.serveMetrics(ctx, addr)
	}

	d.log.Info("daemon started",
		"interval", d.cfg.Daemon.Interval.Std(),
		"debounce", d.cfg.Daemon.Debounce.Std(),
		"data_dir", d.cfg.Data.Directory)

	d.runOnce(ctx, "startup")

	return d.loop(ctx)
}

func (d *Daemon) startScheduler() (gocron.Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(d.cfg.Daemon.Interval.Std()),
		gocron.NewTask(func() { d.trigger("schedule") }),
		gocron.WithName("regenerate"),
	)
	if err != nil {
		return nil, fmt.Errorf("create periodic job: %w", err)
	}

	scheduler.Start()
	return scheduler, nil
}

// trigger requests a regeneration. Coalesces when one is already
// pending.
func (d *Daemon) trigger(reason string) {
	select {
	case d.triggerCh <- reason:
	default:
	}
}

// loop debounces triggers so a burst of file events produces a single
// regeneration.
func (d *Daemon) loop(ctx context.Context) error {
	debounce := d.cfg.Daemon.Debounce.Std()

	var (
		timer  *time.Timer
		timerC <-chan time.Time
		reason string
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			d.log.Info("daemon stopping")
			return nil
		case reason = <-d.triggerCh:
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			timerC = timer.C
		case <-timerC:
			timerC = nil
			d.runOnce(ctx, reason)
		}
	}
}

func (d *Daemon) runOnce(ctx context.Context, reason string) {
	d.log.Info("regeneration triggered", logfields.Reason(reason))
	outcome, err := d.runner.Run(ctx, d.opts)
	if err != nil {
		d.log.Error("generation run failed", logfields.Reason(reason), logfields.Error(err))
		return
	}
	d.log.Info("regeneration complete",
		logfields.Reason(reason),
		logfields.RunID(outcome.RunID),
		logfields.Pages(outcome.Pages),
		logfields.DurationMS(float64(outcome.Duration.Milliseconds())))
}

func (d *Daemon) serveMetrics(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler(d.registry))

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	d.log.Info("metrics listener started", "addr", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		d.log.Error("metrics listener failed", "error", err)
	}
}
