package generator

import (
	"github.com/aadarsh214/seogen/internal/seo/page"
	"github.com/aadarsh214/seogen/internal/util/sets"
)

// Session owns the template registry and the page/hub accumulators for
// one generation run. Sessions are not safe for concurrent use; create
// one per run and discard or Reset it afterwards.
type Session struct {
	templates     map[string]*Template
	templateOrder []string
	pages         []*page.Page
	hubs          []*page.Hub
}

// NewSession creates an empty generation session.
func NewSession() *Session {
	return &Session{templates: make(map[string]*Template)}
}

// Register stores a template by ID. Registering an existing ID silently
// overwrites the previous template but keeps its original position in
// registration order.
func (s *Session) Register(tpl *Template) {
	if _, exists := s.templates[tpl.ID]; !exists {
		s.templateOrder = append(s.templateOrder, tpl.ID)
	}
	s.templates[tpl.ID] = tpl
}

// Template returns the registered template for id.
func (s *Session) Template(id string) (*Template, bool) {
	tpl, ok := s.templates[id]
	return tpl, ok
}

// Templates returns all registered templates in registration order.
func (s *Session) Templates() []*Template {
	out := make([]*Template, 0, len(s.templateOrder))
	for _, id := range s.templateOrder {
		out = append(out, s.templates[id])
	}
	return out
}

// Pages returns a copy of the accumulated pages in generation order.
func (s *Session) Pages() []*page.Page {
	out := make([]*page.Page, len(s.pages))
	copy(out, s.pages)
	return out
}

// Hubs returns a copy of the accumulated hubs in generation order.
func (s *Session) Hubs() []*page.Hub {
	out := make([]*page.Hub, len(s.hubs))
	copy(out, s.hubs)
	return out
}

// PagesByCategory returns accumulated pages with the given category.
func (s *Session) PagesByCategory(category string) []*page.Page {
	var out []*page.Page
	for _, p := range s.pages {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// PagesByTemplate returns accumulated pages generated from template id.
func (s *Session) PagesByTemplate(templateID string) []*page.Page {
	var out []*page.Page
	for _, p := range s.pages {
		if p.Template == templateID {
			out = append(out, p)
		}
	}
	return out
}

// PageBySlug returns the first accumulated page with the given slug.
func (s *Session) PageBySlug(slug string) (*page.Page, bool) {
	for _, p := range s.pages {
		if p.Slug == slug {
			return p, true
		}
	}
	return nil, false
}

// HubBySlug returns the first accumulated hub with the given slug.
func (s *Session) HubBySlug(slug string) (*page.Hub, bool) {
	for _, h := range s.hubs {
		if h.Slug == slug {
			return h, true
		}
	}
	return nil, false
}

// Categories returns the distinct page categories in first-seen order.
func (s *Session) Categories() []string {
	seen := sets.New[string]()
	var out []string
	for _, p := range s.pages {
		if !seen.Has(p.Category) {
			seen.Add(p.Category)
			out = append(out, p.Category)
		}
	}
	return out
}

// SlugCollisions reports slugs shared by more than one page or hub.
// The engine does not prevent collisions (callers own title uniqueness)
// but surfaces them so a run can be failed or reported upstream.
func (s *Session) SlugCollisions() map[string]int {
	counts := make(map[string]int, len(s.pages)+len(s.hubs))
	for _, p := range s.pages {
		counts[p.Slug]++
	}
	for _, h := range s.hubs {
		counts[h.Slug]++
	}
	for slug, n := range counts {
		if n < 2 {
			delete(counts, slug)
		}
	}
	if len(counts) == 0 {
		return nil
	}
	return counts
}

// Reset clears templates, pages and hubs, returning the session to its
// initial state.
func (s *Session) Reset() {
	s.templates = make(map[string]*Template)
	s.templateOrder = nil
	s.pages = nil
	s.hubs = nil
}
