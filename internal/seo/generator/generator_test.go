package generator

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadarsh214/seogen/internal/foundation/errors"
	"github.com/aadarsh214/seogen/internal/seo/dataset"
	"github.com/aadarsh214/seogen/internal/seo/page"
)

// testTemplate matches the worked example from the engine's original
// design notes: 10 words minimum, one FAQ, "intro" required.
func testTemplate() *Template {
	return &Template{
		ID:               "test-template",
		Name:             "Test Template",
		Intent:           page.IntentInformational,
		SchemaType:       page.SchemaArticle,
		MinWordCount:     10,
		MinFAQCount:      1,
		RequiredSections: []string{"intro"},
		Content: func(rec dataset.Record) string {
			return fmt.Sprintf("Intro section for %s with plenty of additional words to pass validation thresholds.", rec.Title())
		},
	}
}

func TestGeneratePagesHappyPath(t *testing.T) {
	s := NewSession()
	s.Register(testTemplate())

	pages, err := s.GeneratePages("test-template",
		[]dataset.Record{{"title": "Test Page", "description": "intro text"}},
		"tutorials", "")
	require.NoError(t, err)
	require.Len(t, pages, 1)

	p := pages[0]
	assert.Equal(t, "test-page", p.Slug)
	assert.Equal(t, "tutorials-test-page", p.ID)
	assert.Equal(t, "intro text", p.Description)
	assert.Equal(t, page.IntentInformational, p.Intent)
	assert.Equal(t, page.SchemaArticle, p.SchemaType)
	assert.Equal(t, "tutorials", p.Category)
	require.Len(t, p.FAQs, 1)
	assert.Equal(t, "What is Test Page?", p.FAQs[0].Question)

	// The returned batch is also accumulated.
	assert.Len(t, s.Pages(), 1)
}

func TestGeneratePagesValidationPostconditions(t *testing.T) {
	s := NewSession()
	tpl := testTemplate()
	s.Register(tpl)

	pages, err := s.GeneratePages("test-template",
		[]dataset.Record{
			{"title": "First Topic Overview"},
			{"title": "Second Topic Overview"},
		}, "guides", "")
	require.NoError(t, err)

	for _, p := range pages {
		assert.GreaterOrEqual(t, len(strings.Fields(p.Content)), tpl.MinWordCount)
		assert.GreaterOrEqual(t, len(p.FAQs), tpl.MinFAQCount)
		for _, section := range tpl.RequiredSections {
			assert.Contains(t, strings.ToLower(p.Content), strings.ToLower(section))
		}
	}
}

func TestGeneratePagesUnknownTemplate(t *testing.T) {
	s := NewSession()
	_, err := s.GeneratePages("missing", []dataset.Record{{"title": "X"}}, "c", "")
	require.Error(t, err)
	assert.Equal(t, errors.CategoryTemplate, errors.CategoryOf(err))
	assert.Empty(t, s.Pages())
}

func TestGeneratePagesFailFastAggregatesViolations(t *testing.T) {
	s := NewSession()
	s.Register(&Template{
		ID:               "strict",
		Intent:           page.IntentInformational,
		SchemaType:       page.SchemaArticle,
		MinWordCount:     50,
		MinFAQCount:      4,
		RequiredSections: []string{"conclusion"},
		Content:          func(dataset.Record) string { return "far too short" },
	})

	_, err := s.GeneratePages("strict",
		[]dataset.Record{{"title": "Bad Page"}}, "c", "")
	require.Error(t, err)

	violations := errors.ViolationsOf(err)
	require.Len(t, violations, 3)
	assert.Contains(t, violations[0], "content too short")
	assert.Contains(t, violations[1], "too few FAQs")
	assert.Contains(t, violations[2], "missing required section: conclusion")
	assert.Contains(t, err.Error(), "Bad Page")

	// Fail-fast: nothing from the batch is committed.
	assert.Empty(t, s.Pages())
}

func TestGeneratePagesFailFastAbortsWholeBatch(t *testing.T) {
	s := NewSession()
	s.Register(&Template{
		ID:           "needs-description",
		Intent:       page.IntentInformational,
		SchemaType:   page.SchemaArticle,
		MinWordCount: 5,
		Content: func(rec dataset.Record) string {
			return rec.String("description")
		},
	})

	_, err := s.GeneratePages("needs-description", []dataset.Record{
		{"title": "Good One", "description": "five words of real content here"},
		{"title": "Bad One", "description": "no"},
	}, "c", "")
	require.Error(t, err)
	assert.Empty(t, s.Pages(), "valid records must not commit when a later record fails")
}

func TestGeneratePagesLenientSkipsAndReports(t *testing.T) {
	s := NewSession()
	s.Register(&Template{
		ID:           "lenient",
		Intent:       page.IntentInformational,
		SchemaType:   page.SchemaArticle,
		MinWordCount: 5,
		Content: func(rec dataset.Record) string {
			return rec.String("description")
		},
	})

	results, err := s.GeneratePagesLenient("lenient", []dataset.Record{
		{"title": "Good One", "description": "five words of real content here"},
		{"title": "Bad One", "description": "no"},
	}, "c", "")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.True(t, results[0].OK())
	assert.False(t, results[1].OK())
	assert.NotEmpty(t, results[1].Violations)

	// Only the valid page is accumulated.
	require.Len(t, s.Pages(), 1)
	assert.Equal(t, "good-one", s.Pages()[0].Slug)
}

func TestDescriptionFallbackChain(t *testing.T) {
	s := NewSession()
	s.Register(testTemplate())

	cases := []struct {
		rec  dataset.Record
		want string
	}{
		{dataset.Record{"title": "Alpha Beta Gamma", "description": "intro from description"}, "intro from description"},
		{dataset.Record{"title": "Alpha Beta Gamma", "summary": "intro from summary"}, "intro from summary"},
		{dataset.Record{"title": "Alpha Beta Gamma", "overview": "intro from overview"}, "intro from overview"},
		{dataset.Record{"title": "Alpha Beta Gamma", "intro": "intro field itself"}, "intro field itself"},
		{dataset.Record{"title": "Alpha Beta Gamma"}, "Learn about Alpha Beta Gamma and related topics."},
	}
	for _, tc := range cases {
		pages, err := s.GeneratePages("test-template", []dataset.Record{tc.rec}, "c", "")
		require.NoError(t, err)
		assert.Equal(t, tc.want, pages[0].Description)
	}
}

func TestDescriptionTruncatedTo160(t *testing.T) {
	s := NewSession()
	s.Register(testTemplate())

	long := strings.Repeat("x", 500)
	pages, err := s.GeneratePages("test-template",
		[]dataset.Record{{"title": "Long Desc", "description": long}}, "c", "")
	require.NoError(t, err)
	assert.Len(t, pages[0].Description, 160)
}

func TestKeywordExtraction(t *testing.T) {
	s := NewSession()
	s.Register(testTemplate())

	pages, err := s.GeneratePages("test-template",
		[]dataset.Record{{"title": "The Best Guide to Go Testing", "description": "intro"}}, "c", "")
	require.NoError(t, err)

	// "the"/"to" are stop words, "go" is too short.
	assert.Equal(t, []string{"best", "guide", "testing"}, pages[0].PrimaryKeywords)
}

func TestRecordKeywordsWinOverExtraction(t *testing.T) {
	s := NewSession()
	s.Register(testTemplate())

	pages, err := s.GeneratePages("test-template", []dataset.Record{{
		"title":           "Any Title Here",
		"description":     "intro",
		"primaryKeywords": []string{"alpha", "beta"},
	}}, "c", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, pages[0].PrimaryKeywords)
}

func TestRecordFAQsUsedVerbatim(t *testing.T) {
	s := NewSession()
	s.Register(testTemplate())

	pages, err := s.GeneratePages("test-template", []dataset.Record{{
		"title":       "FAQ Carrier",
		"description": "intro",
		"faqs": []any{
			map[string]any{"question": "Q1?", "answer": "A1"},
			map[string]any{"question": "Q2?", "answer": "A2"},
		},
	}}, "c", "")
	require.NoError(t, err)
	require.Len(t, pages[0].FAQs, 2)
	assert.Equal(t, "Q1?", pages[0].FAQs[0].Question)
}

func TestGenerateHub(t *testing.T) {
	s := NewSession()
	hub := s.GenerateHub(HubConfig{
		ID:              "tutorials-hub",
		Title:           "Tutorials Hub",
		Description:     "All tutorials",
		Category:        "tutorials",
		PrimaryKeywords: []string{"tutorials", "guides"},
		Spokes:          []string{"p1", "p2"},
	})

	assert.Equal(t, "tutorials-hub", hub.Slug)
	assert.Equal(t, page.SchemaCollectionPage, hub.SchemaType)
	require.Len(t, s.Hubs(), 1)

	got, ok := s.HubBySlug("tutorials-hub")
	require.True(t, ok)
	assert.Equal(t, hub.ID, got.ID)
}

func TestRegistryOverwriteAndOrder(t *testing.T) {
	s := NewSession()
	s.Register(&Template{ID: "a", Name: "first"})
	s.Register(&Template{ID: "b", Name: "second"})
	s.Register(&Template{ID: "a", Name: "replacement"})

	tpls := s.Templates()
	require.Len(t, tpls, 2)
	assert.Equal(t, "replacement", tpls[0].Name, "last registration wins, order preserved")
	assert.Equal(t, "second", tpls[1].Name)
}

func TestAccessorsAndReset(t *testing.T) {
	s := NewSession()
	s.Register(testTemplate())

	_, err := s.GeneratePages("test-template",
		[]dataset.Record{{"title": "Page One", "description": "intro"}}, "cat-a", "")
	require.NoError(t, err)
	_, err = s.GeneratePages("test-template",
		[]dataset.Record{{"title": "Page Two", "description": "intro"}}, "cat-b", "")
	require.NoError(t, err)

	assert.Len(t, s.PagesByCategory("cat-a"), 1)
	assert.Len(t, s.PagesByTemplate("test-template"), 2)
	assert.Equal(t, []string{"cat-a", "cat-b"}, s.Categories())

	p, ok := s.PageBySlug("page-one")
	require.True(t, ok)
	assert.Equal(t, "Page One", p.Title)

	s.Reset()
	assert.Empty(t, s.Pages())
	assert.Empty(t, s.Hubs())
	assert.Empty(t, s.Templates())
}

func TestSlugCollisionDiagnostic(t *testing.T) {
	s := NewSession()
	s.Register(testTemplate())

	_, err := s.GeneratePages("test-template", []dataset.Record{
		{"title": "Same Title", "description": "intro"},
		{"title": "Same Title!", "description": "intro"},
	}, "c", "")
	require.NoError(t, err)

	collisions := s.SlugCollisions()
	require.Len(t, collisions, 1)
	assert.Equal(t, 2, collisions["same-title"])
}
