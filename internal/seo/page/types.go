// Package page defines the content entities produced by the programmatic
// SEO engine: generated pages, hub (aggregator) pages, and the internal
// links connecting them. These types are leaf-level; every other seo
// package depends on them and they depend on nothing.
package page

import "time"

// Intent classifies the user purpose a page serves. It drives default
// sitemap priority and change frequency.
type Intent string

const (
	IntentInformational Intent = "informational"
	IntentTransactional Intent = "transactional"
	IntentNavigational  Intent = "navigational"
)

// SchemaType names the schema.org record emitted for a page.
type SchemaType string

const (
	SchemaArticle        SchemaType = "Article"
	SchemaFAQPage        SchemaType = "FAQPage"
	SchemaProduct        SchemaType = "Product"
	SchemaWebPage        SchemaType = "WebPage"
	SchemaHowTo          SchemaType = "HowTo"
	SchemaCollectionPage SchemaType = "CollectionPage"
)

// ChangeFreq is the sitemap change-frequency hint.
type ChangeFreq string

const (
	FreqAlways  ChangeFreq = "always"
	FreqHourly  ChangeFreq = "hourly"
	FreqDaily   ChangeFreq = "daily"
	FreqWeekly  ChangeFreq = "weekly"
	FreqMonthly ChangeFreq = "monthly"
	FreqYearly  ChangeFreq = "yearly"
	FreqNever   ChangeFreq = "never"
)

// LinkType classifies an internal link edge.
type LinkType string

const (
	LinkNavigation LinkType = "navigation"
	LinkContextual LinkType = "contextual"
	LinkBreadcrumb LinkType = "breadcrumb"
	LinkRelated    LinkType = "related"
)

// FAQ is a question/answer pair attached to a page.
type FAQ struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Breadcrumb is one entry of a breadcrumb trail: display name plus
// absolute URL.
type Breadcrumb struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Page is a single generated content unit. Pages are created once by the
// synthesizer and treated as immutable afterwards, except for the
// RelatedPages field which is populated post-hoc by the linking engine.
type Page struct {
	ID                 string     `json:"id"`
	Slug               string     `json:"slug"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Content            string     `json:"content"`
	Intent             Intent     `json:"intent"`
	PrimaryKeywords    []string   `json:"primaryKeywords"`
	SupportingKeywords []string   `json:"supportingKeywords"`
	Category           string     `json:"category"`
	Template           string     `json:"template"`
	ParentHub          string     `json:"parentHub,omitempty"`
	RelatedPages       []string   `json:"relatedPages"`
	SchemaType         SchemaType `json:"schemaType"`
	LastModified       time.Time  `json:"lastModified"`
	FAQs               []FAQ      `json:"faqs,omitempty"`
	MetadataOverride   *Overrides `json:"metadata,omitempty"`
}

// Keywords returns the page's primary and supporting keywords as one
// slice, primary first. The result is a fresh slice.
func (p *Page) Keywords() []string {
	out := make([]string, 0, len(p.PrimaryKeywords)+len(p.SupportingKeywords))
	out = append(out, p.PrimaryKeywords...)
	out = append(out, p.SupportingKeywords...)
	return out
}

// Overrides carries caller-supplied metadata values that take precedence
// over factory defaults when the page's SEO payload is assembled.
type Overrides struct {
	Keywords       []string `json:"keywords,omitempty"`
	ArticleSection string   `json:"articleSection,omitempty"`
	ArticleTags    []string `json:"articleTags,omitempty"`
}

// Hub is an aggregator page curating a set of topically related spoke
// pages. The spoke relationship is caller-maintained: a spoke Page should
// carry the hub's ID in its ParentHub field.
type Hub struct {
	ID              string     `json:"id"`
	Slug            string     `json:"slug"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	PrimaryKeywords []string   `json:"primaryKeywords"`
	Spokes          []string   `json:"spokes"`
	SchemaType      SchemaType `json:"schemaType"`
	LastModified    time.Time  `json:"lastModified"`
}

// InternalLink is one directed edge of the internal link graph. Parallel
// edges between the same pair of slugs with different types or weights
// are expected and must all be retained.
type InternalLink struct {
	From       string   `json:"from"`
	To         string   `json:"to"`
	AnchorText string   `json:"anchorText"`
	Type       LinkType `json:"type"`
	Weight     float64  `json:"weight"`
}
