package commands

import (
	"fmt"
	"log/slog"

	"github.com/aadarsh214/seogen/internal/foundation/errors"
	"github.com/aadarsh214/seogen/internal/run"
	"github.com/aadarsh214/seogen/internal/seo/render"
)

// VerifyCmd implements the 'verify' command: checks that every internal
// link in the rendered output resolves to a generated page or a
// configured static page.
type VerifyCmd struct {
	Synthetic bool   `help:"Resolve link targets against the synthetic benchmark corpus"`
	Dir       string `short:"d" help:"Rendered output directory to verify (defaults to the configured output directory)"`
}

func (v *VerifyCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	dir := v.Dir
	if dir == "" {
		dir = cfg.Output.Directory
	}

	runner := run.NewRunner(cfg, nil, nil, nil, nil)
	pages, hubs, _, err := runner.Corpus(run.Options{Synthetic: v.Synthetic})
	if err != nil {
		return err
	}

	slugs := make(map[string]struct{}, len(pages)+len(hubs))
	for _, p := range pages {
		slugs[p.Slug] = struct{}{}
	}
	for _, h := range hubs {
		slugs[h.Slug] = struct{}{}
	}

	static := make(map[string]struct{}, len(cfg.Site.StaticPages))
	for _, s := range cfg.Site.StaticPages {
		static[s.Path] = struct{}{}
	}

	report, err := render.VerifyDir(dir, cfg.Site.BaseURL, slugs, static)
	if err != nil {
		return err
	}

	slog.Info("link verification complete",
		"dir", dir,
		"files", report.FilesScanned,
		"links", report.LinksChecked,
		"broken", len(report.Broken))

	if !report.OK() {
		violations := make([]string, 0, len(report.Broken))
		for _, b := range report.Broken {
			violations = append(violations, fmt.Sprintf("%s -> %s", b.File, b.Target))
		}
		return errors.ValidationError("broken internal links found").
			WithContext("dir", dir).
			WithViolations(violations).
			Build()
	}
	return nil
}
