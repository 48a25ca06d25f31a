package dataset

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/aadarsh214/seogen/internal/seo/page"
)

// Synthetic corpus dimensions. At scale 1.0 the corpus reaches six
// figures of pages across the populated categories; tests run with a
// small fraction.
var (
	syntheticCategories = []string{
		"tutorials", "projects", "skills", "tools", "frameworks",
		"languages", "databases", "cloud", "devops", "ai",
	}

	techStacks = []string{
		"react", "vue", "angular", "svelte", "nextjs", "nuxt", "gatsby", "remix",
		"nodejs", "express", "fastify", "koa", "deno", "bun",
		"typescript", "javascript", "python", "go", "rust", "java",
		"postgresql", "mysql", "mongodb", "redis", "elasticsearch",
		"docker", "kubernetes", "aws", "azure", "gcp", "vercel",
		"tailwindcss", "bootstrap", "material-ui", "chakra-ui", "antd",
	}

	tutorialTopics = []string{
		"getting-started", "advanced-patterns", "best-practices", "performance-optimization",
		"security", "testing", "deployment", "debugging", "architecture", "scalability",
		"integration", "migration", "troubleshooting", "tips-tricks", "common-mistakes",
		"beginner-guide", "intermediate-tutorial", "advanced-course", "expert-level",
	}

	projectTypes = []string{
		"ecommerce", "social-media", "blog-platform", "dashboard", "analytics", "monitoring",
		"crm", "project-management", "chat-app", "video-streaming", "file-sharing", "api-gateway",
		"microservices", "serverless", "real-time", "mobile-app", "web-app", "desktop-app",
	}

	skillLevels     = []string{"beginner", "intermediate", "advanced", "expert"}
	toolTypes       = []string{"development", "testing", "deployment", "monitoring", "debugging", "optimization"}
	frameworkTopics = []string{"installation", "configuration", "components", "routing", "state-management", "styling"}
)

// spokeCap limits the spokes attached to each category hub.
const spokeCap = 100

// SyntheticOptions tunes corpus generation.
type SyntheticOptions struct {
	// Scale multiplies the per-combination variation counts. 1.0 yields
	// the full corpus; values down to ~0.02 keep one variation per
	// combination for fast tests.
	Scale float64
	// Now stamps every generated page and hub.
	Now time.Time
}

// SyntheticCorpus builds a large deterministic page set for scale
// testing, plus one hub per category. Pages within a hub's spoke cap
// carry the hub's ID as their parent.
func SyntheticCorpus(opts SyntheticOptions) ([]*page.Page, []*page.Hub) {
	if opts.Scale <= 0 {
		opts.Scale = 1.0
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	var pages []*page.Page
	pages = append(pages, tutorialPages(opts)...)
	pages = append(pages, projectPages(opts)...)
	pages = append(pages, skillPages(opts)...)
	pages = append(pages, toolPages(opts)...)
	pages = append(pages, frameworkPages(opts)...)

	hubs := make([]*page.Hub, 0, len(syntheticCategories))
	for _, category := range syntheticCategories {
		hub := &page.Hub{
			ID:              category + "-hub",
			Slug:            category,
			Title:           capitalize(category) + " Hub",
			Description:     fmt.Sprintf("Comprehensive collection of %s resources, tutorials, and guides", category),
			Category:        category,
			PrimaryKeywords: []string{category, "resources", "guides"},
			SchemaType:      page.SchemaCollectionPage,
			LastModified:    opts.Now,
		}
		for _, p := range pages {
			if p.Category != category {
				continue
			}
			hub.Spokes = append(hub.Spokes, p.ID)
			p.ParentHub = hub.ID
			if len(hub.Spokes) == spokeCap {
				break
			}
		}
		hubs = append(hubs, hub)
	}
	return pages, hubs
}

func variations(base int, scale float64) int {
	n := int(math.Round(float64(base) * scale))
	if n < 1 {
		n = 1
	}
	return n
}

func tutorialPages(opts SyntheticOptions) []*page.Page {
	n := variations(50, opts.Scale)
	var pages []*page.Page
	for _, tech := range techStacks {
		for _, topic := range tutorialTopics {
			for i := 1; i <= n; i++ {
				topicWords := titleWords(topic)
				pages = append(pages, &page.Page{
					ID:                 fmt.Sprintf("tutorial-%s-%s-%d", tech, topic, i),
					Slug:               fmt.Sprintf("tutorials/%s-%s-%d", tech, topic, i),
					Title:              fmt.Sprintf("%s %s - Part %d", capitalize(tech), topicWords, i),
					Description:        fmt.Sprintf("Complete guide to %s with %s. Part %d of comprehensive tutorial series.", strings.ToLower(topicWords), tech, i),
					Content:            tutorialContent(tech, topic, i),
					Intent:             page.IntentInformational,
					PrimaryKeywords:    []string{tech, strings.ToLower(topicWords), "tutorial"},
					SupportingKeywords: []string{tech + " guide", topic + " tutorial", "learn programming"},
					Category:           "tutorials",
					Template:           "how-to-guide",
					SchemaType:         page.SchemaHowTo,
					LastModified:       opts.Now,
				})
			}
		}
	}
	return pages
}

func projectPages(opts SyntheticOptions) []*page.Page {
	n := variations(30, opts.Scale)
	var pages []*page.Page
	for _, tech := range techStacks[:20] {
		for _, ptype := range projectTypes {
			for i := 1; i <= n; i++ {
				typeWords := titleWords(ptype)
				pages = append(pages, &page.Page{
					ID:                 fmt.Sprintf("project-%s-%s-%d", tech, ptype, i),
					Slug:               fmt.Sprintf("projects/%s-%s-%d", tech, ptype, i),
					Title:              fmt.Sprintf("%s %s - Example %d", capitalize(tech), typeWords, i),
					Description:        fmt.Sprintf("Complete %s implementation using %s. Example %d with full source code and deployment guide.", strings.ToLower(typeWords), tech, i),
					Content:            projectContent(tech, ptype, i),
					Intent:             page.IntentTransactional,
					PrimaryKeywords:    []string{tech, strings.ToLower(typeWords), "project"},
					SupportingKeywords: []string{tech + " " + ptype, "example project", "source code"},
					Category:           "projects",
					Template:           "project-showcase",
					SchemaType:         page.SchemaWebPage,
					LastModified:       opts.Now,
				})
			}
		}
	}
	return pages
}

func skillPages(opts SyntheticOptions) []*page.Page {
	n := variations(25, opts.Scale)
	var pages []*page.Page
	for _, tech := range techStacks {
		for _, level := range skillLevels {
			for i := 1; i <= n; i++ {
				pages = append(pages, &page.Page{
					ID:                 fmt.Sprintf("skill-%s-%s-%d", tech, level, i),
					Slug:               fmt.Sprintf("skills/%s-%s-%d", tech, level, i),
					Title:              fmt.Sprintf("%s %s Skills - Guide %d", capitalize(tech), capitalize(level), i),
					Description:        fmt.Sprintf("Master %s at %s level. Comprehensive guide %d covering best practices and advanced techniques.", tech, level, i),
					Content:            skillContent(tech, level, i),
					Intent:             page.IntentNavigational,
					PrimaryKeywords:    []string{tech, level, "skills"},
					SupportingKeywords: []string{tech + " " + level, "learn programming", "tech skills"},
					Category:           "skills",
					Template:           "resource-hub",
					SchemaType:         page.SchemaWebPage,
					LastModified:       opts.Now,
				})
			}
		}
	}
	return pages
}

func toolPages(opts SyntheticOptions) []*page.Page {
	n := variations(20, opts.Scale)
	var pages []*page.Page
	for _, tech := range techStacks[:15] {
		for _, ttype := range toolTypes {
			for i := 1; i <= n; i++ {
				pages = append(pages, &page.Page{
					ID:                 fmt.Sprintf("tool-%s-%s-%d", tech, ttype, i),
					Slug:               fmt.Sprintf("tools/%s-%s-%d", tech, ttype, i),
					Title:              fmt.Sprintf("%s %s Tools - Resource %d", capitalize(tech), capitalize(ttype), i),
					Description:        fmt.Sprintf("Essential %s tools for %s development. Resource %d with recommendations and setup guides.", ttype, tech, i),
					Content:            toolContent(tech, ttype, i),
					Intent:             page.IntentNavigational,
					PrimaryKeywords:    []string{tech, ttype, "tools"},
					SupportingKeywords: []string{tech + " tools", ttype + " software", "development tools"},
					Category:           "tools",
					Template:           "resource-hub",
					SchemaType:         page.SchemaWebPage,
					LastModified:       opts.Now,
				})
			}
		}
	}
	return pages
}

func frameworkPages(opts SyntheticOptions) []*page.Page {
	n := variations(25, opts.Scale)
	var pages []*page.Page
	for _, tech := range techStacks[:10] {
		for _, topic := range frameworkTopics {
			for i := 1; i <= n; i++ {
				topicWords := titleWords(topic)
				pages = append(pages, &page.Page{
					ID:                 fmt.Sprintf("framework-%s-%s-%d", tech, topic, i),
					Slug:               fmt.Sprintf("frameworks/%s-%s-%d", tech, topic, i),
					Title:              fmt.Sprintf("%s %s - Guide %d", capitalize(tech), topicWords, i),
					Description:        fmt.Sprintf("Complete %s guide for %s framework. Guide %d with examples and best practices.", strings.ToLower(topicWords), tech, i),
					Content:            frameworkContent(tech, topic, i),
					Intent:             page.IntentInformational,
					PrimaryKeywords:    []string{tech, strings.ToLower(topicWords), "framework"},
					SupportingKeywords: []string{tech + " framework", topic + " guide", "web development"},
					Category:           "frameworks",
					Template:           "how-to-guide",
					SchemaType:         page.SchemaWebPage,
					LastModified:       opts.Now,
				})
			}
		}
	}
	return pages
}

func tutorialContent(tech, topic string, part int) string {
	t := strings.ToLower(titleWords(topic))
	return fmt.Sprintf(`# %s %s - Part %d

## Introduction
This is part %d of our comprehensive %s %s tutorial series.

## What You'll Learn
- Core concepts of %s %s
- Practical implementation techniques
- Best practices and common pitfalls

## Step-by-Step Guide
### Getting Started
Begin by setting up your %s environment with proper configuration.

### Implementation
1. Setup the basic structure
2. Configure essential components
3. Implement core functionality
4. Test and optimize

## Best Practices
- Follow %s conventions
- Optimize for performance
- Test thoroughly

## Conclusion
You've completed part %d of the %s %s tutorial. Continue with the next part to build your expertise.`,
		capitalize(tech), titleWords(topic), part, part, tech, t, tech, t, tech, tech, part, tech, t)
}

func projectContent(tech, ptype string, example int) string {
	t := strings.ToLower(titleWords(ptype))
	return fmt.Sprintf(`# %s %s - Example %d

## Project Overview
This is example %d of a %s built with %s. It demonstrates best practices and modern development patterns.

## Features
- Modern %s architecture
- Scalable design patterns
- Security best practices
- Comprehensive testing

## Technology Stack
- **Frontend**: %s
- **Database**: PostgreSQL
- **Deployment**: Docker + Kubernetes

## Getting Started
1. Clone the repository
2. Install dependencies
3. Configure environment variables
4. Run the development server

## Conclusion
This example demonstrates how to build production-ready %s applications with %s.`,
		capitalize(tech), titleWords(ptype), example, example, t, tech, tech, tech, t, tech)
}

func skillContent(tech, level string, guide int) string {
	return fmt.Sprintf(`# %s %s Skills - Guide %d

## Overview
Master %s at the %s level with this comprehensive guide %d.

## Learning Path
- Core %s fundamentals
- Advanced patterns and techniques
- Performance optimization strategies

## Practice Exercises
Complete these exercises to solidify your %s skills:
- Build a %s application
- Implement advanced patterns
- Add comprehensive tests

## Resources
- Official documentation
- Community forums
- Video tutorials

## Next Steps
Continue learning with advanced %s topics and real-world projects.`,
		capitalize(tech), capitalize(level), guide, tech, level, guide, tech, tech, tech, tech)
}

func toolContent(tech, ttype string, resource int) string {
	return fmt.Sprintf(`# %s %s Tools - Resource %d

## Essential Tools
Discover the best %s tools for %s development in this resource %d.

## Development Tools
- Editor extensions for %s
- Build tooling and bundlers
- Local development servers

## Testing Tools
- Unit test runners
- End-to-end testing suites
- Component testing libraries

## Monitoring Tools
- Performance profiling
- Error tracking services
- Log aggregation

## Conclusion
These tools will help you build better %s applications with improved productivity and quality.`,
		capitalize(tech), capitalize(ttype), resource, ttype, tech, resource, tech, tech)
}

func frameworkContent(tech, topic string, guide int) string {
	t := strings.ToLower(titleWords(topic))
	return fmt.Sprintf(`# %s %s - Guide %d

## Framework Guide
Complete guide %d for %s framework %s.

## Implementation
### Step 1: Basic Setup
Initialize your %s project with essential dependencies.

### Step 2: Configuration
Configure %s for optimal performance and development experience.

### Step 3: Implementation
Implement %s following %s best practices.

### Step 4: Testing
Add comprehensive tests to ensure reliability.

## Best Practices
- Follow %s conventions
- Optimize for performance
- Maintain code quality

## Conclusion
You've successfully implemented %s with the %s framework.`,
		capitalize(tech), titleWords(topic), guide, guide, tech, t, tech, tech, t, tech, tech, t, tech)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// titleWords turns "state-management" into "State Management".
func titleWords(s string) string {
	words := strings.Split(s, "-")
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}
