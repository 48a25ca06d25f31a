package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/aadarsh214/seogen/internal/foundation/errors"
	"github.com/aadarsh214/seogen/internal/seo/dataset"
	"github.com/aadarsh214/seogen/internal/seo/page"
	"github.com/aadarsh214/seogen/internal/util/sets"
)

// descriptionLimit caps derived descriptions at the meta-description
// length search engines display.
const descriptionLimit = 160

// stopWords are dropped during keyword extraction from titles.
var stopWords = sets.New(
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to",
	"for", "of", "with", "by",
)

// Result is the per-record outcome of a lenient generation pass: either
// a validated page or the list of violated quality rules.
type Result struct {
	Page       *page.Page
	Violations []string
}

// OK reports whether the record produced a valid page.
func (r Result) OK() bool { return len(r.Violations) == 0 }

// GeneratePages synthesizes one page per record, in record order, using
// the registered template. The batch is all-or-nothing: the first record
// failing validation aborts the call with an aggregated error naming the
// page title and every violated rule, and no pages from the batch are
// accumulated.
func (s *Session) GeneratePages(templateID string, records []dataset.Record, category, parentHub string) ([]*page.Page, error) {
	results, err := s.synthesize(templateID, records, category, parentHub)
	if err != nil {
		return nil, err
	}

	pages := make([]*page.Page, 0, len(results))
	for _, res := range results {
		if !res.OK() {
			return nil, errors.ValidationError(fmt.Sprintf("page validation failed for %s", res.Page.Title)).
				WithContext("template_id", templateID).
				WithContext("category", category).
				WithViolations(res.Violations).
				Build()
		}
		pages = append(pages, res.Page)
	}

	s.pages = append(s.pages, pages...)
	return pages, nil
}

// GeneratePagesLenient synthesizes pages like GeneratePages but returns
// a per-record result instead of failing the batch. Valid pages are
// accumulated; invalid records are reported through their Result and
// skipped.
func (s *Session) GeneratePagesLenient(templateID string, records []dataset.Record, category, parentHub string) ([]Result, error) {
	results, err := s.synthesize(templateID, records, category, parentHub)
	if err != nil {
		return nil, err
	}
	for _, res := range results {
		if res.OK() {
			s.pages = append(s.pages, res.Page)
		}
	}
	return results, nil
}

// synthesize builds and validates pages without touching the
// accumulator. Unknown template IDs fail before any record work.
func (s *Session) synthesize(templateID string, records []dataset.Record, category, parentHub string) ([]Result, error) {
	tpl, ok := s.Template(templateID)
	if !ok {
		return nil, errors.TemplateNotFound(templateID)
	}

	results := make([]Result, 0, len(records))
	for _, rec := range records {
		p := s.buildPage(tpl, rec, category, parentHub)
		results = append(results, Result{Page: p, Violations: validate(p, tpl)})
	}
	return results, nil
}

func (s *Session) buildPage(tpl *Template, rec dataset.Record, category, parentHub string) *page.Page {
	title := rec.Title()
	slug := page.Slugify(title)

	primary := rec.StringSlice("primaryKeywords")
	if len(primary) == 0 {
		primary = extractKeywords(title)
	}

	p := &page.Page{
		ID:                 category + "-" + slug,
		Slug:               slug,
		Title:              title,
		Description:        deriveDescription(rec),
		Content:            tpl.Content(rec),
		Intent:             tpl.Intent,
		PrimaryKeywords:    primary,
		SupportingKeywords: rec.StringSlice("supportingKeywords"),
		Category:           category,
		Template:           tpl.ID,
		ParentHub:          parentHub,
		RelatedPages:       []string{},
		SchemaType:         tpl.SchemaType,
		LastModified:       time.Now(),
		FAQs:               deriveFAQs(rec, tpl.MinFAQCount),
	}
	if tpl.Metadata != nil {
		p.MetadataOverride = tpl.Metadata(rec)
	}
	return p
}

// HubConfig describes an aggregator page to construct.
type HubConfig struct {
	ID              string
	Title           string
	Description     string
	Category        string
	PrimaryKeywords []string
	Spokes          []string
}

// GenerateHub constructs a hub page and appends it to the accumulator.
// Hubs are not validated.
func (s *Session) GenerateHub(cfg HubConfig) *page.Hub {
	hub := &page.Hub{
		ID:              cfg.ID,
		Slug:            page.Slugify(cfg.Title),
		Title:           cfg.Title,
		Description:     cfg.Description,
		Category:        cfg.Category,
		PrimaryKeywords: cfg.PrimaryKeywords,
		Spokes:          cfg.Spokes,
		SchemaType:      page.SchemaCollectionPage,
		LastModified:    time.Now(),
	}
	s.hubs = append(s.hubs, hub)
	return hub
}

// deriveDescription takes the first present field of the preference
// chain, truncated to the meta-description limit, or synthesizes a
// generic sentence referencing the title.
func deriveDescription(rec dataset.Record) string {
	if desc := rec.FirstString("description", "summary", "overview", "intro"); desc != "" {
		if len(desc) > descriptionLimit {
			return desc[:descriptionLimit]
		}
		return desc
	}
	return fmt.Sprintf("Learn about %s and related topics.", rec.Title())
}

// extractKeywords tokenizes a title into lowercase keywords, dropping
// stop words and tokens of length two or shorter.
func extractKeywords(title string) []string {
	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(title)) {
		if len(word) <= 2 || stopWords.Has(word) {
			continue
		}
		keywords = append(keywords, word)
	}
	return keywords
}

// deriveFAQs uses record-provided FAQs verbatim when present, otherwise
// synthesizes up to minCount generic question/answer pairs from fixed
// phrasings parameterized by title and description.
func deriveFAQs(rec dataset.Record, minCount int) []page.FAQ {
	if provided := rec.FAQs(); provided != nil {
		return provided
	}

	title := rec.Title()
	description := rec.String("description")

	var faqs []page.FAQ
	if minCount > 0 {
		answer := description
		if answer == "" {
			answer = fmt.Sprintf("%s is a comprehensive solution designed to meet specific needs.", title)
		}
		faqs = append(faqs, page.FAQ{
			Question: fmt.Sprintf("What is %s?", title),
			Answer:   answer,
		})
	}
	if minCount > 1 {
		faqs = append(faqs, page.FAQ{
			Question: fmt.Sprintf("How does %s work?", title),
			Answer:   fmt.Sprintf("%s operates through a streamlined process that ensures optimal performance and user experience.", title),
		})
	}
	if minCount > 2 {
		faqs = append(faqs, page.FAQ{
			Question: fmt.Sprintf("What are the benefits of %s?", title),
			Answer:   fmt.Sprintf("%s offers numerous advantages including improved efficiency, cost-effectiveness, and enhanced user satisfaction.", title),
		})
	}
	return faqs
}
