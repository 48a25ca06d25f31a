package run

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadarsh214/seogen/internal/config"
	"github.com/aadarsh214/seogen/internal/runstore"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Site: config.SiteConfig{
			BaseURL: "https://example.com",
			Name:    "Example",
			StaticPages: []config.Static{
				{Path: "/", Priority: 1.0},
				{Path: "/contact", Priority: 0.6},
			},
		},
		Generation: config.GenerationConfig{
			SyntheticScale: 0.02,
		},
		Output: config.OutputConfig{
			Directory: filepath.Join(t.TempDir(), "dist"),
		},
	}
}

func TestRunSynthetic(t *testing.T) {
	cfg := testConfig(t)
	runner := NewRunner(cfg, nil, nil, nil, nil)

	outcome, err := runner.Run(context.Background(), Options{Synthetic: true})
	require.NoError(t, err)

	assert.NotEmpty(t, outcome.RunID)
	assert.Greater(t, outcome.Pages, 0)
	assert.Equal(t, 10, outcome.Hubs)
	assert.Equal(t, 10, outcome.Categories)
	assert.Greater(t, outcome.SitemapFiles, 0)
	assert.Zero(t, outcome.Rendered)

	for _, name := range []string{"sitemap.xml", "sitemap-index.xml", "robots.txt", "pages-sample.json"} {
		_, statErr := os.Stat(filepath.Join(cfg.Output.Directory, name))
		assert.NoError(t, statErr, name)
	}
}

func TestRunFromDataDirectory(t *testing.T) {
	cfg := testConfig(t)
	dataDir := t.TempDir()
	cfg.Data.Directory = dataDir

	records := `{
		"category": "guides",
		"template": "how-to-guide",
		"records": [
			{
				"name": "Deploy Go Services",
				"description": "A complete walkthrough of deploying Go services to production with zero downtime.",
				"primaryKeywords": ["go deployment", "production"],
				"steps": "Plan the rollout: map every service dependency before touching production. Build the artifact: produce a static binary with version metadata embedded. Ship gradually: roll out to a small slice of traffic and watch error rates before continuing."
			}
		]
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "guides.json"), []byte(records), 0o600))

	runner := NewRunner(cfg, nil, nil, nil, nil)
	outcome, err := runner.Run(context.Background(), Options{})
	require.NoError(t, err)

	// The single record is either generated or skipped by validation;
	// its category still gets a hub.
	assert.Equal(t, 1, outcome.Pages+outcome.Skipped)
	assert.Equal(t, 1, outcome.Hubs)
	_, statErr := os.Stat(filepath.Join(cfg.Output.Directory, "robots.txt"))
	assert.NoError(t, statErr)
}

func TestRunRecordsToStore(t *testing.T) {
	cfg := testConfig(t)
	store, err := runstore.Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	runner := NewRunner(cfg, nil, nil, store, nil)
	outcome, err := runner.Run(context.Background(), Options{Synthetic: true})
	require.NoError(t, err)

	latest, err := store.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, outcome.RunID, latest.ID)
	assert.Equal(t, runstore.StatusSucceeded, latest.Status)
	assert.Equal(t, outcome.Pages, latest.Pages)
}

func TestRunRendersHTML(t *testing.T) {
	cfg := testConfig(t)
	cfg.Generation.SyntheticScale = 0.01
	runner := NewRunner(cfg, nil, nil, nil, nil)

	outcome, err := runner.Run(context.Background(), Options{Synthetic: true, RenderHTML: true})
	require.NoError(t, err)
	assert.Equal(t, outcome.Pages, outcome.Rendered)

	// A synthetic tutorial page renders under its category directory.
	entries, err := os.ReadDir(filepath.Join(cfg.Output.Directory, "tutorials"))
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}

func TestRunFailsOnMissingDataDir(t *testing.T) {
	cfg := testConfig(t)
	cfg.Data.Directory = filepath.Join(t.TempDir(), "absent")

	store, err := runstore.Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	runner := NewRunner(cfg, nil, nil, store, nil)
	_, err = runner.Run(context.Background(), Options{})
	require.Error(t, err)

	latest, storeErr := store.Latest(context.Background())
	require.NoError(t, storeErr)
	assert.Equal(t, runstore.StatusFailed, latest.Status)
	assert.NotEmpty(t, latest.Error)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "State Management", titleCase("state-management"))
	assert.Equal(t, "Guides", titleCase("guides"))
}
