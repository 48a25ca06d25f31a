package linking

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadarsh214/seogen/internal/seo/page"
)

func TestGraphBasics(t *testing.T) {
	g := NewGraph()
	g.AddNode("a")
	g.AddNode("b")
	g.AddNode("a") // duplicate is a no-op
	g.AddEdge(page.InternalLink{From: "a", To: "b", Weight: 1})
	g.AddEdge(page.InternalLink{From: "a", To: "b", Weight: 2}) // parallel edge retained

	assert.Equal(t, []string{"a", "b"}, g.Nodes())
	assert.Equal(t, 2, g.Outdegree("a"))
	assert.Equal(t, 0, g.Outdegree("b"))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Nil(t, g.Outgoing("b"))
}

func TestBuildLinkGraphNodesAndSpokes(t *testing.T) {
	e := NewEngine("https://example.com", 5, 2)
	hub := &page.Hub{ID: "hub-guides", Slug: "guides", Title: "All Guides"}
	spoke := makePage("s1", "s1", "guides", page.IntentInformational, "t")
	spoke.ParentHub = "hub-guides"
	loner := makePage("l1", "l1", "tools", page.IntentTransactional, "u")

	g := e.BuildLinkGraph([]*page.Page{spoke, loner}, []*page.Hub{hub})

	assert.ElementsMatch(t, []string{"s1", "l1", "guides"}, g.Nodes())

	hubOut := g.Outgoing("guides")
	require.Len(t, hubOut, 1)
	assert.Equal(t, "s1", hubOut[0].To)
	assert.Equal(t, page.LinkNavigation, hubOut[0].Type)

	spokeOut := g.Outgoing("s1")
	require.Len(t, spokeOut, 1)
	assert.Equal(t, "guides", spokeOut[0].To)
	assert.Equal(t, page.LinkBreadcrumb, spokeOut[0].Type)

	// The loner belongs to no hub and shares no vocabulary.
	assert.Empty(t, g.Outgoing("l1"))
}

func TestBuildLinkGraphContextualLimitPerPage(t *testing.T) {
	e := NewEngine("https://example.com", 5, 2)
	src := makePage("src", "src", "guides", page.IntentInformational, "t")
	src.Content = "alpha beta gamma"

	var pages []*page.Page
	pages = append(pages, src)
	for i, kw := range []string{"alpha", "beta", "gamma"} {
		p := makePage(string(rune('a'+i)), "tgt-"+kw, "x", page.IntentInformational, "t", kw)
		pages = append(pages, p)
	}

	g := e.BuildLinkGraph(pages, nil)
	assert.Len(t, g.Outgoing("src"), 2)
}

func TestAuthorityTwoNodeChain(t *testing.T) {
	g := NewGraph()
	g.AddNode("a")
	g.AddNode("b")
	g.AddEdge(page.InternalLink{From: "a", To: "b", Weight: 1})

	scores := Authority(g, 10)
	// "a" has no incoming edges so it settles at the base score. "b"
	// then receives 0.15 + 0.85*0.15*1/1.
	assert.InDelta(t, 0.15, scores["a"], 1e-9)
	assert.InDelta(t, 0.15+0.85*0.15, scores["b"], 1e-9)
}

func TestAuthorityWeightSplitsOverOutdegree(t *testing.T) {
	g := NewGraph()
	for _, slug := range []string{"src", "x", "y"} {
		g.AddNode(slug)
	}
	g.AddEdge(page.InternalLink{From: "src", To: "x", Weight: 10})
	g.AddEdge(page.InternalLink{From: "src", To: "y", Weight: 3})

	scores := Authority(g, 10)
	// src settles at 0.15; its contribution divides by its edge count.
	wantX := 0.15 + 0.85*0.15*10/2
	wantY := 0.15 + 0.85*0.15*3/2
	assert.InDelta(t, wantX, scores["x"], 1e-9)
	assert.InDelta(t, wantY, scores["y"], 1e-9)
	assert.Greater(t, scores["x"], scores["y"])
}

func TestAuthorityDefaultIterations(t *testing.T) {
	g := NewGraph()
	g.AddNode("a")
	assert.InDelta(t, 0.15, AuthorityOf(g, "a", 0), 1e-9)
}

func TestAuthorityOfUnknownSlug(t *testing.T) {
	g := NewGraph()
	g.AddNode("a")
	assert.Equal(t, 1.0, AuthorityOf(g, "missing", 10))
}

func TestAuthorityFiniteOnRealGraph(t *testing.T) {
	e := NewEngine("https://example.com", 5, 2)

	hub := &page.Hub{ID: "hub-guides", Slug: "guides", Title: "All Guides", SchemaType: page.SchemaCollectionPage}
	var pages []*page.Page
	for _, kw := range []string{"testing", "docker", "kubernetes", "linux"} {
		p := &page.Page{
			ID:              "guides-" + kw,
			Slug:            kw + "-guide",
			Title:           "Guide to " + kw,
			Content:         "Learn " + kw + " with testing and docker examples.",
			Category:        "guides",
			Intent:          page.IntentInformational,
			Template:        "how-to",
			ParentHub:       "hub-guides",
			PrimaryKeywords: []string{kw},
			LastModified:    time.Now(),
		}
		pages = append(pages, p)
	}

	g := e.BuildLinkGraph(pages, []*page.Hub{hub})
	scores := Authority(g, 10)
	require.Len(t, scores, 5)
	for slug, score := range scores {
		assert.False(t, math.IsNaN(score), "NaN authority for %s", slug)
		assert.False(t, math.IsInf(score, 0), "infinite authority for %s", slug)
		assert.Greater(t, score, 0.0, "non-positive authority for %s", slug)
	}
	// The hub receives a weight-8 edge from every spoke, so it should
	// outrank any single spoke.
	for _, p := range pages {
		assert.Greater(t, scores["guides"], scores[p.Slug])
	}
}
