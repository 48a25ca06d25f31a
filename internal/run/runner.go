// Package run orchestrates a full generation run: load records, build
// pages and hubs, assign internal links, emit sitemaps and optionally
// render HTML, then record the run and publish its event.
package run

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aadarsh214/seogen/internal/config"
	"github.com/aadarsh214/seogen/internal/events"
	"github.com/aadarsh214/seogen/internal/gitinfo"
	"github.com/aadarsh214/seogen/internal/logfields"
	"github.com/aadarsh214/seogen/internal/metrics"
	"github.com/aadarsh214/seogen/internal/runstore"
	"github.com/aadarsh214/seogen/internal/seo/dataset"
	"github.com/aadarsh214/seogen/internal/seo/emit"
	"github.com/aadarsh214/seogen/internal/seo/generator"
	"github.com/aadarsh214/seogen/internal/seo/linking"
	"github.com/aadarsh214/seogen/internal/seo/metadata"
	"github.com/aadarsh214/seogen/internal/seo/page"
	"github.com/aadarsh214/seogen/internal/seo/render"
	"github.com/aadarsh214/seogen/internal/seo/schema"
	"github.com/aadarsh214/seogen/internal/seo/seocache"
	"github.com/aadarsh214/seogen/internal/seo/sitemap"
	"github.com/aadarsh214/seogen/internal/seo/templates"
)

// Options tune a single run beyond what config carries.
type Options struct {
	// RenderHTML also renders every page and hub to HTML under the
	// output directory.
	RenderHTML bool
	// Synthetic generates the synthetic benchmark corpus instead of
	// reading the data directory.
	Synthetic bool
}

// Outcome summarizes a completed run.
type Outcome struct {
	RunID        string
	Pages        int
	Hubs         int
	Categories   int
	SitemapFiles int
	Skipped      int // records that failed validation
	Rendered     int
	Duration     time.Duration
}

// Runner executes generation runs. Store, publisher and recorder are
// optional; nil disables the concern.
type Runner struct {
	cfg   *config.Config
	log   *slog.Logger
	rec   metrics.Recorder
	store *runstore.Store
	pub   *events.Publisher

	// Memoizes the git HEAD lookup so daemon regenerations don't
	// reopen the repository on every run.
	lastMod *seocache.Cache[time.Time]
}

// NewRunner wires a runner over its collaborators. A nil recorder
// falls back to the noop recorder, a nil logger to slog.Default().
func NewRunner(cfg *config.Config, log *slog.Logger, rec metrics.Recorder, store *runstore.Store, pub *events.Publisher) *Runner {
	if log == nil {
		log = slog.Default()
	}
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &Runner{
		cfg:     cfg,
		log:     log,
		rec:     rec,
		store:   store,
		pub:     pub,
		lastMod: seocache.New[time.Time](seocache.DefaultTTL),
	}
}

// Run executes one generation run end to end. The returned outcome is
// valid even when err is non-nil for partial diagnostics; the run is
// recorded and published either way.
func (r *Runner) Run(ctx context.Context, opts Options) (*Outcome, error) {
	start := time.Now()
	outcome := &Outcome{RunID: uuid.New().String()}

	err := r.generate(ctx, opts, outcome)
	outcome.Duration = time.Since(start)

	status := runstore.StatusSucceeded
	result := metrics.ResultSuccess
	errText := ""
	if err != nil {
		status = runstore.StatusFailed
		result = metrics.ResultFailed
		errText = err.Error()
	}

	r.rec.ObserveRunDuration(outcome.Duration)
	r.rec.IncRunOutcome(result)
	r.rec.SetLastRunPages(outcome.Pages)

	r.record(ctx, outcome, status, errText)
	r.publish(ctx, outcome, status, errText)

	if err != nil {
		return outcome, err
	}

	r.log.Info("generation run complete",
		logfields.RunID(outcome.RunID),
		logfields.Pages(outcome.Pages),
		"hubs", outcome.Hubs,
		"categories", outcome.Categories,
		"sitemap_files", outcome.SitemapFiles,
		logfields.DurationMS(float64(outcome.Duration.Milliseconds())))
	return outcome, nil
}

func (r *Runner) generate(ctx context.Context, opts Options, outcome *Outcome) error {
	if r.cfg.Output.Clean {
		if err := os.RemoveAll(r.cfg.Output.Directory); err != nil {
			return err
		}
	}

	pages, hubs, skipped, err := r.Corpus(opts)
	if err != nil {
		return err
	}
	outcome.Skipped = skipped

	outcome.Pages = len(pages)
	outcome.Hubs = len(hubs)
	for category, n := range countByCategory(pages) {
		r.rec.AddPagesGenerated(category, n)
	}

	engine := linking.NewEngine(r.cfg.Site.BaseURL,
		r.cfg.Generation.RelatedLinkLimit, r.cfg.Generation.ContextualLinkLimit)
	engine.AssignRelated(pages)

	gen := sitemap.NewGenerator(r.cfg.Site.BaseURL, r.cfg.Generation.MaxURLsPerSitemap)
	outcome.Categories = len(sitemap.AllCategories(pages, hubs))

	writer := emit.NewWriter(r.cfg.Output.Directory, gen, r.log)
	summary, err := writer.WriteSite(pages, hubs, r.staticPages())
	if err != nil {
		return err
	}
	outcome.SitemapFiles = len(gen.SitemapPaths(pages, hubs))
	r.rec.AddSitemapFilesWritten(outcome.SitemapFiles)

	r.log.Debug("artifacts written",
		"files", len(summary.Files),
		"total_urls", summary.TotalURLs)

	if opts.RenderHTML {
		rendered, err := r.renderPages(ctx, engine, pages, hubs)
		if err != nil {
			return err
		}
		outcome.Rendered = rendered
	}
	return nil
}

// Corpus builds the page and hub set a run would emit, without writing
// anything. Returns the count of records skipped by validation.
func (r *Runner) Corpus(opts Options) ([]*page.Page, []*page.Hub, int, error) {
	if opts.Synthetic {
		pages, hubs := dataset.SyntheticCorpus(dataset.SyntheticOptions{
			Scale: r.cfg.Generation.SyntheticScale,
		})
		return pages, hubs, 0, nil
	}
	return r.buildFromData()
}

// buildFromData loads every record file from the data directory and
// synthesizes pages leniently, skipping invalid records. One hub per
// category aggregates that category's pages.
func (r *Runner) buildFromData() ([]*page.Page, []*page.Hub, int, error) {
	sources, err := dataset.LoadDir(r.cfg.Data.Directory)
	if err != nil {
		return nil, nil, 0, err
	}

	session := generator.NewSession()
	templates.RegisterBuiltin(session)

	skipped := 0
	for _, src := range sources {
		results, err := session.GeneratePagesLenient(src.Template, src.Records, src.Category, src.Category+"-hub")
		if err != nil {
			return nil, nil, skipped, err
		}
		for _, res := range results {
			if res.OK() {
				continue
			}
			skipped++
			r.rec.IncValidationFailure(src.Template)
			r.log.Warn("record failed validation, skipped",
				logfields.Category(src.Category),
				logfields.Template(src.Template),
				"page", res.Page.Title,
				"violations", res.Violations)
		}
	}

	// Every source category gets a hub, populated or not, matching the
	// synthetic corpus layout.
	seen := make(map[string]bool)
	var categories []string
	for _, src := range sources {
		if !seen[src.Category] {
			seen[src.Category] = true
			categories = append(categories, src.Category)
		}
	}
	for _, category := range categories {
		spokes := session.PagesByCategory(category)
		slugs := make([]string, 0, len(spokes))
		for _, p := range spokes {
			slugs = append(slugs, p.Slug)
		}
		session.GenerateHub(generator.HubConfig{
			ID:          category + "-hub",
			Title:       titleCase(category) + " Hub",
			Description: "Complete guide to " + category,
			Category:    category,
			Spokes:      slugs,
		})
	}

	return session.Pages(), session.Hubs(), skipped, nil
}

// renderPages writes an HTML document per page under the output
// directory, mirroring the slug hierarchy.
func (r *Runner) renderPages(ctx context.Context, engine *linking.Engine, pages []*page.Page, hubs []*page.Hub) (int, error) {
	factory := metadata.NewFactory(r.cfg.Site)
	builder := schema.NewBuilder(r.cfg.Site)
	renderer := render.NewRenderer()

	hubsByID := make(map[string]*page.Hub, len(hubs))
	for _, h := range hubs {
		hubsByID[h.ID] = h
	}

	rendered := 0
	for _, p := range pages {
		if err := ctx.Err(); err != nil {
			return rendered, err
		}
		meta := factory.ForPage(p)
		crumbs := engine.Breadcrumbs(p, hubsByID[p.ParentHub])
		records := builder.Compose(p, crumbs)
		if _, err := renderer.WritePage(r.cfg.Output.Directory, p, &meta, records, crumbs); err != nil {
			return rendered, err
		}
		rendered++
	}
	return rendered, nil
}

func (r *Runner) staticPages() []sitemap.StaticPage {
	if len(r.cfg.Site.StaticPages) == 0 {
		return nil
	}
	lastMod := r.lastMod.GetOrCompute("head", func() time.Time {
		return gitinfo.LastModified(".")
	})
	static := make([]sitemap.StaticPage, 0, len(r.cfg.Site.StaticPages))
	for _, s := range r.cfg.Site.StaticPages {
		static = append(static, sitemap.StaticPage{
			Path:     s.Path,
			Priority: s.Priority,
			LastMod:  lastMod,
		})
	}
	return static
}

func (r *Runner) record(ctx context.Context, outcome *Outcome, status, errText string) {
	if r.store == nil {
		return
	}
	err := r.store.Append(ctx, runstore.Run{
		ID:           outcome.RunID,
		StartedAt:    time.Now().Add(-outcome.Duration).UTC(),
		Duration:     outcome.Duration,
		Status:       status,
		Pages:        outcome.Pages,
		Hubs:         outcome.Hubs,
		Categories:   outcome.Categories,
		SitemapFiles: outcome.SitemapFiles,
		Error:        errText,
	})
	if err != nil {
		r.log.Error("failed to record run", logfields.RunID(outcome.RunID), logfields.Error(err))
	}
}

func (r *Runner) publish(ctx context.Context, outcome *Outcome, status, errText string) {
	if r.pub == nil {
		return
	}
	err := r.pub.PublishRunCompleted(ctx, &events.RunCompletedEvent{
		RunID:        outcome.RunID,
		Status:       status,
		Pages:        outcome.Pages,
		Hubs:         outcome.Hubs,
		Categories:   outcome.Categories,
		SitemapFiles: outcome.SitemapFiles,
		Duration:     outcome.Duration.String(),
		OutputDir:    r.cfg.Output.Directory,
		Error:        errText,
	})
	if err != nil {
		r.log.Error("failed to publish run event", logfields.RunID(outcome.RunID), logfields.Error(err))
	}
}

func titleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func countByCategory(pages []*page.Page) map[string]int {
	counts := make(map[string]int)
	for _, p := range pages {
		counts[p.Category]++
	}
	return counts
}
