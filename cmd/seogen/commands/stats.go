package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/aadarsh214/seogen/internal/run"
	"github.com/aadarsh214/seogen/internal/runstore"
	"github.com/aadarsh214/seogen/internal/seo/linking"
	"github.com/aadarsh214/seogen/internal/seo/sitemap"
)

// StatsCmd implements the 'stats' command.
type StatsCmd struct {
	Synthetic bool `help:"Use the synthetic benchmark corpus instead of the data directory"`
	Top       int  `help:"Also print the top N pages by link authority" default:"0"`
	Runs      int  `help:"Also print the N most recent recorded runs" default:"0"`
}

type statsOutput struct {
	Sitemap   *sitemap.Stats   `json:"sitemap"`
	Skipped   int              `json:"skippedRecords,omitempty"`
	Authority []authorityEntry `json:"topAuthority,omitempty"`
	Runs      []runstore.Run   `json:"recentRuns,omitempty"`
}

type authorityEntry struct {
	Slug      string  `json:"slug"`
	Authority float64 `json:"authority"`
}

func (s *StatsCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	runner := run.NewRunner(cfg, nil, nil, nil, nil)
	pages, hubs, skipped, err := runner.Corpus(run.Options{Synthetic: s.Synthetic})
	if err != nil {
		return err
	}

	gen := sitemap.NewGenerator(cfg.Site.BaseURL, cfg.Generation.MaxURLsPerSitemap)
	stats := gen.Stats(pages, hubs)
	out := statsOutput{Sitemap: &stats, Skipped: skipped}

	if s.Top > 0 {
		engine := linking.NewEngine(cfg.Site.BaseURL,
			cfg.Generation.RelatedLinkLimit, cfg.Generation.ContextualLinkLimit)
		graph := engine.BuildLinkGraph(pages, hubs)
		authority := linking.Authority(graph, cfg.Generation.AuthorityIterations)

		entries := make([]authorityEntry, 0, len(authority))
		for slug, score := range authority {
			entries = append(entries, authorityEntry{Slug: slug, Authority: score})
		}
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Authority != entries[j].Authority {
				return entries[i].Authority > entries[j].Authority
			}
			return entries[i].Slug < entries[j].Slug
		})
		if len(entries) > s.Top {
			entries = entries[:s.Top]
		}
		out.Authority = entries
	}

	if s.Runs > 0 && cfg.Store.Path != "" {
		store, storeErr := runstore.Open(cfg.Store.Path)
		if storeErr != nil {
			return storeErr
		}
		defer store.Close()

		runs, listErr := store.List(context.Background(), s.Runs)
		if listErr != nil {
			return listErr
		}
		out.Runs = runs
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
