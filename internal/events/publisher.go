// Package events publishes run-completed events to NATS JetStream so
// downstream systems (deploy hooks, dashboards) can react to fresh builds.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/aadarsh214/seogen/internal/config"
)

// RunCompletedEvent is published after every generation run.
type RunCompletedEvent struct {
	RunID        string    `json:"run_id"`
	Status       string    `json:"status"`
	Pages        int       `json:"pages"`
	Hubs         int       `json:"hubs"`
	Categories   int       `json:"categories"`
	SitemapFiles int       `json:"sitemap_files"`
	Duration     string    `json:"duration"`
	OutputDir    string    `json:"output_dir,omitempty"`
	Error        string    `json:"error,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Publisher sends run events to a JetStream stream.
type Publisher struct {
	conn    *nats.Conn
	js      jetstream.JetStream
	subject string
	log     *slog.Logger
}

// NewPublisher connects to NATS and ensures the configured stream
// exists. Returns an error when events are disabled in config; callers
// should check cfg.Enabled first.
func NewPublisher(cfg *config.EventsConfig, log *slog.Logger) (*Publisher, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, fmt.Errorf("event publishing is disabled")
	}
	if log == nil {
		log = slog.Default()
	}

	conn, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("create JetStream context: %w", err)
	}

	p := &Publisher{
		conn:    conn,
		js:      js,
		subject: cfg.Subject,
		log:     log,
	}

	if err := p.ensureStream(cfg.Stream, cfg.Subject); err != nil {
		conn.Close()
		return nil, err
	}

	log.Info("event publisher initialized",
		"url", cfg.NATSURL,
		"stream", cfg.Stream,
		"subject", cfg.Subject)
	return p, nil
}

func (p *Publisher) ensureStream(name, subject string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := p.js.Stream(ctx, name)
	if err == nil {
		return nil
	}

	_, err = p.js.CreateStream(ctx, jetstream.StreamConfig{
		Name:      name,
		Subjects:  []string{subject},
		Retention: jetstream.LimitsPolicy,
		MaxAge:    30 * 24 * time.Hour,
	})
	if err != nil {
		return fmt.Errorf("create stream %q: %w", name, err)
	}
	return nil
}

// PublishRunCompleted publishes the event on the configured subject.
func (p *Publisher) PublishRunCompleted(ctx context.Context, event *RunCompletedEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := p.js.Publish(pubCtx, p.subject, data); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	p.log.Debug("published run event",
		"run_id", event.RunID,
		"status", event.Status,
		"pages", event.Pages)
	return nil
}

// Close closes the NATS connection.
func (p *Publisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}
