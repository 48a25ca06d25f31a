package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/aadarsh214/seogen/internal/foundation/errors"
	"github.com/aadarsh214/seogen/internal/seo/page"
)

func TestRecordAccessors(t *testing.T) {
	rec := Record{
		"title":    "A Page",
		"count":    3,
		"list":     []any{"one", "two"},
		"typed":    []string{"a", "b"},
		"overview": "Summary here.",
	}

	assert.Equal(t, "A Page", rec.String("title"))
	assert.Empty(t, rec.String("count"), "non-string values read as empty")
	assert.Empty(t, rec.String("missing"))

	assert.Equal(t, "Summary here.", rec.FirstString("description", "summary", "overview"))
	assert.Equal(t, []string{"one", "two"}, rec.StringSlice("list"))
	assert.Equal(t, []string{"a", "b"}, rec.StringSlice("typed"))
	assert.Nil(t, rec.StringSlice("missing"))
}

func TestRecordTitlePrefersTitleOverName(t *testing.T) {
	assert.Equal(t, "T", Record{"title": "T", "name": "N"}.Title())
	assert.Equal(t, "N", Record{"name": "N"}.Title())
	assert.Empty(t, Record{}.Title())
}

func TestRecordFAQs(t *testing.T) {
	rec := Record{"faqs": []any{
		map[string]any{"question": "Q1", "answer": "A1"},
		map[string]any{"answer": "orphan answer"},
		"not a map",
	}}
	faqs := rec.FAQs()
	require.Len(t, faqs, 1)
	assert.Equal(t, page.FAQ{Question: "Q1", Answer: "A1"}, faqs[0])

	typed := Record{"faqs": []page.FAQ{{Question: "Q", Answer: "A"}}}
	assert.Len(t, typed.FAQs(), 1)
	assert.Nil(t, Record{}.FAQs())
}

func TestKey(t *testing.T) {
	assert.Equal(t, "postgres", Key("Postgres"))
	assert.Equal(t, "visual_studio_code", Key("Visual  Studio Code"))
}

func TestLoadFileJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guides.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"template": "how-to-guide",
		"records": [{"title": "First"}, {"title": "Second"}]
	}`), 0o644))

	src, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "guides", src.Category, "category defaults to the file name")
	assert.Equal(t, "how-to-guide", src.Template)
	require.Len(t, src.Records, 2)
	assert.Equal(t, "First", src.Records[0].Title())
}

func TestLoadFileYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
category: dev-tools
template: resource-hub
records:
  - title: Linters
    keywords: [lint, quality]
`), 0o644))

	src, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "dev-tools", src.Category)
	require.Len(t, src.Records, 1)
	assert.Equal(t, []string{"lint", "quality"}, src.Records[0].StringSlice("keywords"))
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Equal(t, ferrors.CategoryFileSystem, ferrors.CategoryOf(err))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{nope"), 0o644))
	_, err = LoadFile(bad)
	require.Error(t, err)
	assert.Equal(t, ferrors.CategoryValidation, ferrors.CategoryOf(err))

	noTemplate := filepath.Join(dir, "untemplated.json")
	require.NoError(t, os.WriteFile(noTemplate, []byte(`{"records": []}`), 0o644))
	_, err = LoadFile(noTemplate)
	require.Error(t, err)
	assert.Equal(t, ferrors.CategoryValidation, ferrors.CategoryOf(err))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte(`{"template": "t", "records": []}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("template: t\nrecords: []\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	sources, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "a", sources[0].Category)
	assert.Equal(t, "b", sources[1].Category)
}

func TestSyntheticCorpusSmallScale(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	pages, hubs := SyntheticCorpus(SyntheticOptions{Scale: 0.02, Now: now})

	// One variation per combination at this scale.
	want := 36*19 + 20*18 + 36*4 + 15*6 + 10*6
	assert.Len(t, pages, want)
	assert.Len(t, hubs, 10)

	counts := make(map[string]int)
	for _, p := range pages {
		counts[p.Category]++
		assert.NotEmpty(t, p.Content)
		assert.NotEmpty(t, p.Title)
		assert.Equal(t, now, p.LastModified)
	}
	assert.Equal(t, 36*19, counts["tutorials"])
	assert.Equal(t, 20*18, counts["projects"])
}

func TestSyntheticCorpusHubsAndSpokes(t *testing.T) {
	pages, hubs := SyntheticCorpus(SyntheticOptions{Scale: 0.02})

	byID := make(map[string]*page.Hub)
	for _, h := range hubs {
		byID[h.ID] = h
		assert.Equal(t, page.SchemaCollectionPage, h.SchemaType)
		assert.LessOrEqual(t, len(h.Spokes), spokeCap)
	}

	tutorials := byID["tutorials-hub"]
	require.NotNil(t, tutorials)
	assert.Len(t, tutorials.Spokes, spokeCap)
	assert.Equal(t, "tutorials", tutorials.Slug)

	// Unpopulated categories still get a hub, just without spokes.
	assert.Empty(t, byID["languages-hub"].Spokes)

	spokeIDs := make(map[string]struct{})
	for _, id := range tutorials.Spokes {
		spokeIDs[id] = struct{}{}
	}
	for _, p := range pages {
		if _, ok := spokeIDs[p.ID]; ok {
			assert.Equal(t, "tutorials-hub", p.ParentHub)
		}
	}
}

func TestSyntheticCorpusDeterministic(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	a, _ := SyntheticCorpus(SyntheticOptions{Scale: 0.02, Now: now})
	b, _ := SyntheticCorpus(SyntheticOptions{Scale: 0.02, Now: now})
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
	}
}
