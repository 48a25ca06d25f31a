// Package templates ships the builtin page templates: how-to guides,
// comparison pages, resource hubs, location pages, and project
// showcases. Content functions render markdown from a dataset record,
// falling back to generic copy for fields the record omits.
package templates

import (
	"fmt"
	"strings"

	"github.com/aadarsh214/seogen/internal/seo/dataset"
	"github.com/aadarsh214/seogen/internal/seo/generator"
	"github.com/aadarsh214/seogen/internal/seo/page"
)

// Builtin returns the builtin templates in registration order.
func Builtin() []*generator.Template {
	return []*generator.Template{
		howToGuide(),
		comparisonPage(),
		resourceHub(),
		locationPage(),
		projectShowcase(),
	}
}

// RegisterBuiltin registers every builtin template on the session.
func RegisterBuiltin(s *generator.Session) {
	for _, tpl := range Builtin() {
		s.Register(tpl)
	}
}

func howToGuide() *generator.Template {
	return &generator.Template{
		ID:               "how-to-guide",
		Name:             "How-To Guide",
		Intent:           page.IntentInformational,
		SchemaType:       page.SchemaHowTo,
		MinWordCount:     800,
		MinFAQCount:      3,
		RequiredSections: []string{"introduction", "steps", "conclusion"},
		Content: func(rec dataset.Record) string {
			title := rec.Title()
			var b strings.Builder
			heading(&b, title)

			section(&b, "Introduction", orElse(rec.String("introduction"),
				fmt.Sprintf("Learn how to %s with this comprehensive step-by-step guide.", strings.ToLower(title))))

			section(&b, "What You'll Need", bullets(rec.StringSlice("prerequisites"),
				"Basic understanding of the topic",
				"Required tools and resources"))

			section(&b, "Step-by-Step Instructions", steps(rec.StringSlice("steps")))

			section(&b, "Tips and Best Practices", bullets(rec.StringSlice("tips"),
				"Take your time and follow each step carefully",
				"Don't hesitate to seek help if needed",
				"Practice makes perfect"))

			section(&b, "Common Mistakes to Avoid", bullets(rec.StringSlice("mistakes"),
				"Skipping steps without understanding them",
				"Not preparing adequately",
				"Ignoring safety precautions"))

			section(&b, "Conclusion", orElse(rec.String("conclusion"),
				fmt.Sprintf("Congratulations! You've successfully learned how to %s. Keep practicing and refining your skills.", strings.ToLower(title))))

			section(&b, "Additional Resources", bullets(rec.StringSlice("resources"),
				"Official documentation",
				"Community forums",
				"Video tutorials"))
			return b.String()
		},
		Metadata: func(rec dataset.Record) *page.Overrides {
			return &page.Overrides{
				Keywords:       append(rec.StringSlice("keywords"), "tutorial", "guide", "how to", "step by step"),
				ArticleSection: "Tutorials",
				ArticleTags:    append([]string{"how-to", "tutorial"}, rec.StringSlice("tags")...),
			}
		},
	}
}

func comparisonPage() *generator.Template {
	return &generator.Template{
		ID:               "comparison-page",
		Name:             "Comparison Page",
		Intent:           page.IntentTransactional,
		SchemaType:       page.SchemaArticle,
		MinWordCount:     1200,
		MinFAQCount:      4,
		RequiredSections: []string{"introduction", "comparison", "recommendation"},
		Content: func(rec dataset.Record) string {
			items := rec.StringSlice("items")
			var b strings.Builder
			heading(&b, rec.Title())

			intro := rec.String("introduction")
			if intro == "" {
				joined := "options"
				if len(items) > 0 {
					joined = strings.Join(items, " and ")
				}
				intro = fmt.Sprintf("Choosing between %s can be challenging. This comprehensive comparison will help you make an informed decision.", joined)
			}
			section(&b, "Introduction", intro)

			section(&b, "Quick Overview", itemOverviews(items))
			section(&b, "Detailed Comparison", comparisonTable(items))
			section(&b, "Pros and Cons", prosAndCons(rec, items))

			section(&b, "Use Cases", orElse(rec.String("use_cases"),
				"### For Beginners\nRecommended option with gentle learning curve and good support.\n\n"+
					"### For Advanced Users\nMore powerful option with advanced features and customization."))

			recommendation := rec.String("recommendation")
			if recommendation == "" {
				first := "Option A"
				if len(items) > 0 {
					first = items[0]
				}
				recommendation = fmt.Sprintf("Based on our analysis, we recommend %s for most users due to its balance of features, price, and ease of use. However, your specific needs may vary.", first)
			}
			section(&b, "Our Recommendation", recommendation)

			section(&b, "Final Verdict", orElse(rec.String("verdict"),
				"Both options have their strengths. Consider your specific requirements, budget, and technical expertise when making your final decision. We suggest trying free trials or demos when available."))
			return b.String()
		},
		Metadata: func(rec dataset.Record) *page.Overrides {
			items := rec.StringSlice("items")
			keywords := append(rec.StringSlice("keywords"), "comparison", "vs", "review", "best")
			return &page.Overrides{
				Keywords:       append(keywords, items...),
				ArticleSection: "Reviews",
				ArticleTags:    append([]string{"comparison", "review"}, items...),
			}
		},
	}
}

func resourceHub() *generator.Template {
	return &generator.Template{
		ID:               "resource-hub",
		Name:             "Resource Hub",
		Intent:           page.IntentNavigational,
		SchemaType:       page.SchemaWebPage,
		MinWordCount:     600,
		MinFAQCount:      2,
		RequiredSections: []string{"introduction", "resources", "categories"},
		Content: func(rec dataset.Record) string {
			var b strings.Builder
			heading(&b, rec.Title())

			topic := orElse(rec.String("category"), "this topic")
			section(&b, "Introduction", orElse(rec.String("introduction"),
				fmt.Sprintf("Welcome to the comprehensive resource hub for %s. Find everything you need in one organized location.", topic)))

			section(&b, "Featured Resources", subsections(rec.StringSlice("featured"),
				"### Getting Started Guide\nPerfect for beginners looking to understand the basics.",
				"### Advanced Tutorial\nDeep dive into complex topics and techniques.",
				"### Video Course\nVisual learning with step-by-step instructions."))

			section(&b, "Resource Categories", subsections(rec.StringSlice("resource_categories"),
				"### Documentation\nOfficial guides and API references.",
				"### Tutorials\nStep-by-step learning materials.",
				"### Tools & Software\nRecommended software and online tools.",
				"### Community\nForums, discussion boards, and support groups."))

			section(&b, "Learning Paths", subsections(rec.StringSlice("learning_paths"),
				"### Beginner Path\nStart with basics and gradually build your knowledge.",
				"### Advanced Path\nFor experienced users looking to deepen their expertise."))

			section(&b, "Get Help", orElse(rec.String("help"),
				"If you need assistance, check out our community forum or contact our support team. We're here to help you succeed."))
			return b.String()
		},
		Metadata: func(rec dataset.Record) *page.Overrides {
			return &page.Overrides{
				Keywords:       append(rec.StringSlice("keywords"), "resources", "hub", "collection", "guides", "tutorials"),
				ArticleSection: "Resources",
				ArticleTags:    []string{"resources", "hub", "collection"},
			}
		},
	}
}

func locationPage() *generator.Template {
	return &generator.Template{
		ID:               "location-page",
		Name:             "Location Page",
		Intent:           page.IntentTransactional,
		SchemaType:       page.SchemaWebPage,
		MinWordCount:     700,
		MinFAQCount:      3,
		RequiredSections: []string{"introduction", "services", "contact"},
		Content: func(rec dataset.Record) string {
			location := orElse(rec.String("location"), "Your Area")
			var b strings.Builder
			heading(&b, rec.Title())

			section(&b, "Introduction", orElse(rec.String("introduction"),
				fmt.Sprintf("Discover our comprehensive services available in %s. We're committed to serving the local community with excellence.", location)))

			section(&b, "Our Services in "+location, subsections(rec.StringSlice("services"),
				"### Service 1\nProfessional service tailored to your needs.",
				"### Service 2\nExpert solutions with guaranteed results.",
				"### Service 3\nComprehensive packages for all requirements."))

			section(&b, "Why Choose Us in "+location+"?", bullets(rec.StringSlice("benefits"),
				"Local expertise and knowledge",
				"Personalized service",
				"Competitive pricing",
				"Fast response times",
				"Proven track record"))

			section(&b, "Service Areas", bullets(rec.StringSlice("areas"),
				location,
				"Surrounding neighborhoods",
				"Metropolitan area"))

			section(&b, "Pricing Information", orElse(rec.String("pricing"),
				"Our pricing is competitive and transparent. Contact us for a personalized quote based on your specific needs."))

			section(&b, "Contact Us", contactBlock(rec))

			section(&b, "Get Started", orElse(rec.String("cta"),
				fmt.Sprintf("Ready to get started? Contact us today for a free consultation and quote. We look forward to serving you in %s!", location)))
			return b.String()
		},
		Metadata: func(rec dataset.Record) *page.Overrides {
			location := orElse(rec.String("location"), "local")
			return &page.Overrides{
				Keywords:       append(rec.StringSlice("keywords"), location, "services", "near me", "in area"),
				ArticleSection: "Locations",
				ArticleTags:    []string{"location", "local", "services"},
			}
		},
	}
}

func projectShowcase() *generator.Template {
	return &generator.Template{
		ID:               "project-showcase",
		Name:             "Project Showcase",
		Intent:           page.IntentInformational,
		SchemaType:       page.SchemaArticle,
		MinWordCount:     500,
		MinFAQCount:      2,
		RequiredSections: []string{"overview", "features", "outcome"},
		Content: func(rec dataset.Record) string {
			title := rec.Title()
			var b strings.Builder
			heading(&b, title)

			section(&b, "Overview", orElse(rec.String("overview"),
				fmt.Sprintf("An in-depth look at %s: what it does, how it was built, and what it achieved.", title)))

			section(&b, "Key Features", bullets(rec.StringSlice("features"),
				"Clean, maintainable architecture",
				"Responsive user experience",
				"Automated test coverage"))

			section(&b, "Tech Stack", bullets(rec.StringSlice("stack"),
				"Modern web frameworks",
				"Cloud-native infrastructure"))

			section(&b, "Challenges", orElse(rec.String("challenges"),
				"Every project brings trade-offs. The hardest part here was balancing scope against delivery time while keeping the codebase approachable."))

			section(&b, "Outcome", orElse(rec.String("outcome"),
				fmt.Sprintf("%s shipped on schedule and continues to serve its users reliably.", title)))

			section(&b, "Links", bullets(rec.StringSlice("links"),
				"Source repository",
				"Live demo"))
			return b.String()
		},
		Metadata: func(rec dataset.Record) *page.Overrides {
			return &page.Overrides{
				Keywords:       append(rec.StringSlice("keywords"), "project", "portfolio", "case study"),
				ArticleSection: "Projects",
				ArticleTags:    append([]string{"project", "showcase"}, rec.StringSlice("tags")...),
			}
		},
	}
}

func heading(b *strings.Builder, title string) {
	b.WriteString("# " + title + "\n")
}

func section(b *strings.Builder, name, body string) {
	b.WriteString("\n## " + name + "\n" + body + "\n")
}

func orElse(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func bullets(items []string, fallback ...string) string {
	if len(items) == 0 {
		items = fallback
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}

// steps renders "Name: detail" strings as numbered step subsections.
func steps(items []string) string {
	if len(items) == 0 {
		return "### Step 1: Preparation\nBegin by preparing all necessary materials and understanding the requirements.\n\n" +
			"### Step 2: Implementation\nFollow the main process carefully, ensuring each step is completed before moving to the next.\n\n" +
			"### Step 3: Verification\nReview your work to ensure everything is working as expected."
	}
	parts := make([]string, 0, len(items))
	for i, item := range items {
		name, detail, found := strings.Cut(item, ":")
		if !found {
			detail = item
		}
		parts = append(parts, fmt.Sprintf("### Step %d: %s\n%s", i+1, strings.TrimSpace(name), strings.TrimSpace(detail)))
	}
	return strings.Join(parts, "\n\n")
}

// subsections renders each item as its own "### heading" block; items
// use "Name: description" form, a bare name gets a generic line.
func subsections(items []string, fallback ...string) string {
	if len(items) == 0 {
		return strings.Join(fallback, "\n\n")
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		name, detail, found := strings.Cut(item, ":")
		if !found {
			detail = "Key information about " + item + "."
		}
		parts = append(parts, "### "+strings.TrimSpace(name)+"\n"+strings.TrimSpace(detail))
	}
	return strings.Join(parts, "\n\n")
}

func itemOverviews(items []string) string {
	if len(items) == 0 {
		return "### Option A\nDescription of the first option with key features.\n\n" +
			"### Option B\nDescription of the second option with key features."
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, "### "+item+"\nKey features and benefits of "+item+".")
	}
	return strings.Join(parts, "\n\n")
}

func comparisonTable(items []string) string {
	if len(items) == 0 {
		items = []string{"Option A", "Option B"}
	}
	var b strings.Builder
	b.WriteString("| Feature | " + strings.Join(items, " | ") + " |\n")
	b.WriteString("|---------|" + strings.Repeat("----------|", len(items)) + "\n")
	rows := []struct{ feature, low, high string }{
		{"Price", "$$", "$$$"},
		{"Ease of Use", "High", "Medium"},
		{"Features", "Basic", "Advanced"},
		{"Support", "Email", "24/7"},
		{"Performance", "Good", "Excellent"},
	}
	for _, row := range rows {
		cells := make([]string, 0, len(items))
		for i := range items {
			if i == 0 {
				cells = append(cells, row.low)
			} else {
				cells = append(cells, row.high)
			}
		}
		b.WriteString("| " + row.feature + " | " + strings.Join(cells, " | ") + " |\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func contactBlock(rec dataset.Record) string {
	return "**Address:** " + orElse(rec.String("contact_address"), "123 Main St, City, State 12345") + "\n" +
		"**Phone:** " + orElse(rec.String("contact_phone"), "(555) 123-4567") + "\n" +
		"**Email:** " + orElse(rec.String("contact_email"), "info@example.com") + "\n" +
		"**Hours:** " + orElse(rec.String("contact_hours"), "Mon-Fri: 9AM-6PM, Sat: 10AM-4PM")
}

func prosAndCons(rec dataset.Record, items []string) string {
	if len(items) == 0 {
		items = []string{"Option A", "Option B"}
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		pros := bullets(rec.StringSlice("pros_"+dataset.Key(item)),
			"Advantage 1", "Advantage 2", "Advantage 3")
		cons := bullets(rec.StringSlice("cons_"+dataset.Key(item)),
			"Disadvantage 1", "Disadvantage 2")
		parts = append(parts, "### "+item+"\n\n**Pros:**\n"+pros+"\n\n**Cons:**\n"+cons)
	}
	return strings.Join(parts, "\n\n")
}
