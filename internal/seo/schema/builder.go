// Package schema builds schema.org structured-data records for pages
// and hubs. All functions are pure; the records marshal to JSON-LD
// payloads embedded by the rendering layer.
package schema

import (
	"time"

	"github.com/aadarsh214/seogen/internal/config"
	"github.com/aadarsh214/seogen/internal/seo/page"
)

const schemaContext = "https://schema.org"

// Ref is a JSON-LD reference to another record by @id.
type Ref struct {
	ID string `json:"@id"`
}

// Thing is a minimal named entity, used for "about" lists.
type Thing struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// Organization is the site-wide organization singleton.
type Organization struct {
	Context string   `json:"@context"`
	Type    string   `json:"@type"`
	ID      string   `json:"@id"`
	Name    string   `json:"name"`
	URL     string   `json:"url"`
	Logo    string   `json:"logo"`
	SameAs  []string `json:"sameAs,omitempty"`
}

// Person is the site-owner singleton.
type Person struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	ID          string   `json:"@id"`
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	JobTitle    string   `json:"jobTitle,omitempty"`
	Affiliation *Ref     `json:"affiliation,omitempty"`
	SameAs      []string `json:"sameAs,omitempty"`
	KnowsAbout  []string `json:"knowsAbout,omitempty"`
}

// SearchAction advertises the site search endpoint.
type SearchAction struct {
	Type       string `json:"@type"`
	Target     string `json:"target"`
	QueryInput string `json:"query-input"`
}

// WebSite is the site singleton.
type WebSite struct {
	Context         string        `json:"@context"`
	Type            string        `json:"@type"`
	ID              string        `json:"@id"`
	URL             string        `json:"url"`
	Name            string        `json:"name"`
	Publisher       *Ref          `json:"publisher,omitempty"`
	PotentialAction *SearchAction `json:"potentialAction,omitempty"`
}

// Question is one FAQ entity.
type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

// Answer is the accepted answer of a Question.
type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// Article is the schema.org Article record for a page.
type Article struct {
	Context          string     `json:"@context"`
	Type             string     `json:"@type"`
	ID               string     `json:"@id"`
	Headline         string     `json:"headline"`
	Description      string     `json:"description"`
	URL              string     `json:"url"`
	DatePublished    string     `json:"datePublished"`
	DateModified     string     `json:"dateModified"`
	Author           *Ref       `json:"author,omitempty"`
	Publisher        *Ref       `json:"publisher,omitempty"`
	MainEntityOfPage *Ref       `json:"mainEntityOfPage,omitempty"`
	MainEntity       []Question `json:"mainEntity,omitempty"`
}

// FAQPage is the schema.org FAQPage record.
type FAQPage struct {
	Context     string     `json:"@context"`
	Type        string     `json:"@type"`
	ID          string     `json:"@id"`
	URL         string     `json:"url"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	MainEntity  []Question `json:"mainEntity"`
}

// WebPage is the generic page record; Type carries the page's declared
// schema type (WebPage, HowTo, Product, ...).
type WebPage struct {
	Context      string  `json:"@context"`
	Type         string  `json:"@type"`
	ID           string  `json:"@id"`
	URL          string  `json:"url"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	DateModified string  `json:"dateModified"`
	IsPartOf     *Ref    `json:"isPartOf,omitempty"`
	About        []Thing `json:"about,omitempty"`
}

// SpokeEntry is one curated page reference inside a hub record.
type SpokeEntry struct {
	Type        string `json:"@type"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// HubPage is the collection record for a hub and its spokes.
type HubPage struct {
	Context      string       `json:"@context"`
	Type         string       `json:"@type"`
	ID           string       `json:"@id"`
	URL          string       `json:"url"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	DateModified string       `json:"dateModified"`
	IsPartOf     *Ref         `json:"isPartOf,omitempty"`
	MainEntity   []SpokeEntry `json:"mainEntity"`
	About        []Thing      `json:"about,omitempty"`
}

// ListItem is one entry of a BreadcrumbList.
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

// BreadcrumbList is the breadcrumb trail record.
type BreadcrumbList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// Builder produces structured-data records bound to the site identity.
type Builder struct {
	site config.SiteConfig
}

// NewBuilder creates a schema builder for the given site.
func NewBuilder(site config.SiteConfig) *Builder {
	return &Builder{site: site}
}

// Organization returns the organization singleton.
func (b *Builder) Organization() Organization {
	return Organization{
		Context: schemaContext,
		Type:    "Organization",
		ID:      b.site.BaseURL + "/#org",
		Name:    b.site.Name,
		URL:     b.site.BaseURL,
		Logo:    b.site.BaseURL + b.site.OGImagePath,
		SameAs:  b.site.SameAs,
	}
}

// Person returns the site-owner singleton.
func (b *Builder) Person() Person {
	return Person{
		Context:     schemaContext,
		Type:        "Person",
		ID:          b.site.BaseURL + "/#person",
		Name:        b.personName(),
		URL:         b.site.BaseURL,
		JobTitle:    b.site.JobTitle,
		Affiliation: &Ref{ID: b.site.BaseURL + "/#org"},
		SameAs:      b.site.SameAs,
		KnowsAbout:  b.site.KnowsAbout,
	}
}

func (b *Builder) personName() string {
	if b.site.PersonName != "" {
		return b.site.PersonName
	}
	return b.site.Name
}

// WebSite returns the site singleton.
func (b *Builder) WebSite() WebSite {
	return WebSite{
		Context:   schemaContext,
		Type:      "WebSite",
		ID:        b.site.BaseURL + "/#website",
		URL:       b.site.BaseURL,
		Name:      b.site.Name,
		Publisher: &Ref{ID: b.site.BaseURL + "/#org"},
		PotentialAction: &SearchAction{
			Type:       "SearchAction",
			Target:     b.site.BaseURL + "/?q={search_term_string}",
			QueryInput: "required name=search_term_string",
		},
	}
}

// Article returns the Article record for a page. FAQ entities, when
// present, fold in as the article's mainEntity.
func (b *Builder) Article(p *page.Page) Article {
	url := b.site.BaseURL + "/" + p.Slug
	return Article{
		Context:          schemaContext,
		Type:             "Article",
		ID:               url + "#article",
		Headline:         p.Title,
		Description:      p.Description,
		URL:              url,
		DatePublished:    p.LastModified.Format(time.RFC3339),
		DateModified:     p.LastModified.Format(time.RFC3339),
		Author:           &Ref{ID: b.site.BaseURL + "/#person"},
		Publisher:        &Ref{ID: b.site.BaseURL + "/#org"},
		MainEntityOfPage: &Ref{ID: url},
		MainEntity:       questions(p.FAQs),
	}
}

// FAQPage returns the FAQPage record for a page, or a generic WebPage
// record when the page carries no FAQs.
func (b *Builder) FAQPage(p *page.Page) any {
	if len(p.FAQs) == 0 {
		return b.WebPage(p)
	}
	url := b.site.BaseURL + "/" + p.Slug
	return FAQPage{
		Context:     schemaContext,
		Type:        "FAQPage",
		ID:          url + "#faq",
		URL:         url,
		Name:        p.Title,
		Description: p.Description,
		MainEntity:  questions(p.FAQs),
	}
}

// WebPage returns the generic page record using the page's declared
// schema type.
func (b *Builder) WebPage(p *page.Page) WebPage {
	url := b.site.BaseURL + "/" + p.Slug
	return WebPage{
		Context:      schemaContext,
		Type:         string(p.SchemaType),
		ID:           url + "#webpage",
		URL:          url,
		Name:         p.Title,
		Description:  p.Description,
		DateModified: p.LastModified.Format(time.RFC3339),
		IsPartOf:     &Ref{ID: b.site.BaseURL + "/#website"},
		About:        aboutKeywords(p.PrimaryKeywords),
	}
}

// HubPage returns the collection record for a hub with its spokes.
func (b *Builder) HubPage(hub *page.Hub, spokes []*page.Page) HubPage {
	url := b.site.BaseURL + "/" + hub.Slug
	entries := make([]SpokeEntry, 0, len(spokes))
	for _, spoke := range spokes {
		entries = append(entries, SpokeEntry{
			Type:        "WebPage",
			Name:        spoke.Title,
			URL:         b.site.BaseURL + "/" + spoke.Slug,
			Description: spoke.Description,
		})
	}
	return HubPage{
		Context:      schemaContext,
		Type:         string(hub.SchemaType),
		ID:           url + "#hub",
		URL:          url,
		Name:         hub.Title,
		Description:  hub.Description,
		DateModified: hub.LastModified.Format(time.RFC3339),
		IsPartOf:     &Ref{ID: b.site.BaseURL + "/#website"},
		MainEntity:   entries,
		About:        aboutKeywords(hub.PrimaryKeywords),
	}
}

// BreadcrumbList converts a breadcrumb trail into its schema record.
func (b *Builder) BreadcrumbList(trail []page.Breadcrumb) BreadcrumbList {
	items := make([]ListItem, 0, len(trail))
	for i, crumb := range trail {
		items = append(items, ListItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     crumb.Name,
			Item:     crumb.URL,
		})
	}
	return BreadcrumbList{
		Context:         schemaContext,
		Type:            "BreadcrumbList",
		ItemListElement: items,
	}
}

// Compose assembles the full structured-data sequence for a page: the
// three site singletons, then the page-specific record dispatched on
// schema type, then the breadcrumb record when a trail is supplied.
// The result is never empty.
func (b *Builder) Compose(p *page.Page, breadcrumbs []page.Breadcrumb) []any {
	records := []any{b.Organization(), b.Person(), b.WebSite()}

	switch p.SchemaType {
	case page.SchemaArticle:
		records = append(records, b.Article(p))
	case page.SchemaFAQPage:
		records = append(records, b.FAQPage(p))
	default:
		records = append(records, b.WebPage(p))
	}

	if len(breadcrumbs) > 0 {
		records = append(records, b.BreadcrumbList(breadcrumbs))
	}
	return records
}

// ComposeHub assembles the structured-data sequence for a hub page.
func (b *Builder) ComposeHub(hub *page.Hub, spokes []*page.Page, breadcrumbs []page.Breadcrumb) []any {
	records := []any{b.Organization(), b.Person(), b.WebSite(), b.HubPage(hub, spokes)}
	if len(breadcrumbs) > 0 {
		records = append(records, b.BreadcrumbList(breadcrumbs))
	}
	return records
}

func questions(faqs []page.FAQ) []Question {
	if len(faqs) == 0 {
		return nil
	}
	out := make([]Question, 0, len(faqs))
	for _, faq := range faqs {
		out = append(out, Question{
			Type:           "Question",
			Name:           faq.Question,
			AcceptedAnswer: Answer{Type: "Answer", Text: faq.Answer},
		})
	}
	return out
}

func aboutKeywords(keywords []string) []Thing {
	if len(keywords) == 0 {
		return nil
	}
	out := make([]Thing, 0, len(keywords))
	for _, k := range keywords {
		out = append(out, Thing{Type: "Thing", Name: k})
	}
	return out
}
