// Package render turns generated pages into HTML documents and
// verifies the internal links of rendered output. Rendering here is a
// development aid; the production site renders pages with its own
// frontend layer.
package render

import (
	"bytes"
	"encoding/json"
	"html/template"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"

	ferrors "github.com/aadarsh214/seogen/internal/foundation/errors"
	"github.com/aadarsh214/seogen/internal/seo/metadata"
	"github.com/aadarsh214/seogen/internal/seo/page"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Meta.Title}}</title>
<meta name="description" content="{{.Meta.Description}}">
<link rel="canonical" href="{{.Meta.Canonical}}">
{{- if .SchemaJSON}}
<script type="application/ld+json">{{.SchemaJSON}}</script>
{{- end}}
</head>
<body>
{{- if .Breadcrumbs}}
<nav class="breadcrumbs">
{{- range .Breadcrumbs}}
<a href="{{.URL}}">{{.Name}}</a>
{{- end}}
</nav>
{{- end}}
<article>
{{.Body}}
</article>
{{- if .Related}}
<section class="related">
<h2>Related</h2>
<ul>
{{- range .Related}}
<li><a href="/{{.}}">{{.}}</a></li>
{{- end}}
</ul>
</section>
{{- end}}
</body>
</html>
`))

type pageData struct {
	Meta        *metadata.Metadata
	Breadcrumbs []page.Breadcrumb
	Body        template.HTML
	Related     []string
	SchemaJSON  template.JS
}

// Renderer converts page markdown into standalone HTML documents.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a renderer with the default goldmark parser.
func NewRenderer() *Renderer {
	return &Renderer{md: goldmark.New()}
}

// RenderPage renders one page: the markdown body, the metadata head
// fields, the JSON-LD structured data, breadcrumbs, and links to the
// page's related peers.
func (r *Renderer) RenderPage(p *page.Page, meta *metadata.Metadata, schemaRecords []any, breadcrumbs []page.Breadcrumb) ([]byte, error) {
	var body bytes.Buffer
	if err := r.md.Convert([]byte(p.Content), &body); err != nil {
		return nil, ferrors.Wrap(err, ferrors.CategoryInternal, "rendering markdown").
			WithContext("slug", p.Slug).
			Build()
	}

	data := pageData{
		Meta:        meta,
		Breadcrumbs: breadcrumbs,
		Body:        template.HTML(body.String()),
		Related:     p.RelatedPages,
	}
	if len(schemaRecords) > 0 {
		raw, err := json.Marshal(schemaRecords)
		if err != nil {
			return nil, ferrors.Wrap(err, ferrors.CategoryInternal, "encoding structured data").
				WithContext("slug", p.Slug).
				Build()
		}
		data.SchemaJSON = template.JS(raw)
	}

	var out bytes.Buffer
	if err := pageTemplate.Execute(&out, data); err != nil {
		return nil, ferrors.Wrap(err, ferrors.CategoryInternal, "executing page template").
			WithContext("slug", p.Slug).
			Build()
	}
	return out.Bytes(), nil
}

// WritePage renders the page and writes it under dir as
// <slug>.html, creating intermediate directories for slugs with
// path separators.
func (r *Renderer) WritePage(dir string, p *page.Page, meta *metadata.Metadata, schemaRecords []any, breadcrumbs []page.Breadcrumb) (string, error) {
	doc, err := r.RenderPage(p, meta, schemaRecords, breadcrumbs)
	if err != nil {
		return "", err
	}

	rel := filepath.FromSlash(path.Clean("/" + p.Slug))[1:] + ".html"
	full := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", ferrors.Wrap(err, ferrors.CategoryFileSystem, "creating page directory").
			WithContext("dir", filepath.Dir(full)).
			Build()
	}
	if err := os.WriteFile(full, doc, 0o644); err != nil {
		return "", ferrors.Wrap(err, ferrors.CategoryFileSystem, "writing rendered page").
			WithContext("file", full).
			Build()
	}
	return rel, nil
}

// SlugFromPath converts a rendered file path back to its page slug.
func SlugFromPath(rel string) string {
	return strings.TrimSuffix(filepath.ToSlash(rel), ".html")
}
