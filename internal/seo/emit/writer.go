// Package emit writes the generated site artifacts to disk: the main
// sitemap, per-category sitemaps (paginated when a category exceeds the
// URL ceiling), the sitemap index, robots.txt, and a JSON sample of the
// generated pages for inspection.
package emit

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	ferrors "github.com/aadarsh214/seogen/internal/foundation/errors"
	"github.com/aadarsh214/seogen/internal/seo/page"
	"github.com/aadarsh214/seogen/internal/seo/sitemap"
)

// sampleSize is the number of pages included in pages-sample.json.
const sampleSize = 10

// Summary reports what a write produced.
type Summary struct {
	Files     []string `json:"files"`
	TotalURLs int      `json:"totalUrls"`
}

// Writer persists site artifacts under one output directory.
type Writer struct {
	outDir string
	gen    *sitemap.Generator
	log    *slog.Logger
}

// NewWriter creates a writer rooted at outDir. A nil logger falls back
// to the default.
func NewWriter(outDir string, gen *sitemap.Generator, log *slog.Logger) *Writer {
	if log == nil {
		log = slog.Default()
	}
	return &Writer{outDir: outDir, gen: gen, log: log}
}

// WriteSite emits every artifact for the generated site and returns a
// summary of the files written.
func (w *Writer) WriteSite(pages []*page.Page, hubs []*page.Hub, static []sitemap.StaticPage) (*Summary, error) {
	if err := os.MkdirAll(filepath.Join(w.outDir, "sitemaps"), 0o755); err != nil {
		return nil, ferrors.Wrap(err, ferrors.CategoryFileSystem, "creating output directory").
			WithContext("dir", w.outDir).
			Build()
	}

	categories := sitemap.AllCategories(pages, hubs)
	summary := &Summary{TotalURLs: len(pages) + len(hubs) + len(static)}

	data, err := w.gen.MainSitemap(static, categories)
	if err != nil {
		return nil, err
	}
	if err := w.writeFile("sitemap.xml", data, summary); err != nil {
		return nil, err
	}

	for _, category := range categories {
		if err := w.writeCategory(category, pages, hubs, summary); err != nil {
			return nil, err
		}
	}

	paths := w.gen.SitemapPaths(pages, hubs)
	index, err := w.gen.SitemapIndex(paths, time.Now())
	if err != nil {
		return nil, err
	}
	if err := w.writeFile("sitemap-index.xml", index, summary); err != nil {
		return nil, err
	}

	if err := w.writeFile("robots.txt", []byte(w.gen.RobotsTxt(paths)), summary); err != nil {
		return nil, err
	}

	if err := w.writeSample(pages, categories, summary); err != nil {
		return nil, err
	}

	w.log.Info("site artifacts written",
		"dir", w.outDir,
		"files", len(summary.Files),
		"urls", summary.TotalURLs)
	return summary, nil
}

// writeCategory emits one category's sitemap file, or its paginated
// parts when the category outgrows the URL ceiling. Hub entries ride in
// the first part.
func (w *Writer) writeCategory(category string, pages []*page.Page, hubs []*page.Hub, summary *Summary) error {
	var categoryPages []*page.Page
	for _, p := range pages {
		if p.Category == category {
			categoryPages = append(categoryPages, p)
		}
	}
	hubEntries := make([]sitemap.Entry, 0, 1)
	for _, h := range hubs {
		if h.Category == category {
			hubEntries = append(hubEntries, w.gen.HubEntry(h))
		}
	}

	if len(categoryPages)+len(hubEntries) <= w.gen.MaxURLs() {
		entries := hubEntries
		for _, p := range categoryPages {
			entries = append(entries, w.gen.PageEntry(p))
		}
		return w.streamFile(filepath.Join("sitemaps", category+".xml"), entries, summary)
	}

	limit := w.gen.MaxURLs()
	parts := (len(categoryPages) + len(hubEntries) + limit - 1) / limit
	offset := 0
	for part := 1; part <= parts; part++ {
		var entries []sitemap.Entry
		window := limit
		if part == 1 {
			// Hub entries occupy part 1, so its page window shrinks to
			// keep the file under the URL ceiling.
			entries = append(entries, hubEntries...)
			window -= len(hubEntries)
			if window < 0 {
				window = 0
			}
		}
		end := offset + window
		if end > len(categoryPages) {
			end = len(categoryPages)
		}
		for _, p := range categoryPages[offset:end] {
			entries = append(entries, w.gen.PageEntry(p))
		}
		offset = end
		name := filepath.Join("sitemaps", fmt.Sprintf("%s-page-%d.xml", category, part))
		if err := w.streamFile(name, entries, summary); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeSample(pages []*page.Page, categories []string, summary *Summary) error {
	counts := make(map[string]int, len(categories))
	for _, p := range pages {
		counts[p.Category]++
	}
	type categoryCount struct {
		Category string `json:"category"`
		Count    int    `json:"count"`
	}
	sample := struct {
		Total      int             `json:"total"`
		Categories []categoryCount `json:"categories"`
		Samples    []*page.Page    `json:"samples"`
	}{Total: len(pages)}
	for _, category := range categories {
		sample.Categories = append(sample.Categories, categoryCount{Category: category, Count: counts[category]})
	}
	n := sampleSize
	if n > len(pages) {
		n = len(pages)
	}
	sample.Samples = pages[:n]

	data, err := json.MarshalIndent(sample, "", "  ")
	if err != nil {
		return ferrors.Wrap(err, ferrors.CategoryInternal, "encoding page sample").Build()
	}
	return w.writeFile("pages-sample.json", data, summary)
}

func (w *Writer) writeFile(name string, data []byte, summary *Summary) error {
	if err := os.WriteFile(filepath.Join(w.outDir, name), data, 0o644); err != nil {
		return ferrors.Wrap(err, ferrors.CategoryFileSystem, "writing artifact").
			WithContext("file", name).
			Build()
	}
	summary.Files = append(summary.Files, name)
	w.log.Debug("artifact written", "file", name, "bytes", len(data))
	return nil
}

func (w *Writer) streamFile(name string, entries []sitemap.Entry, summary *Summary) error {
	f, err := os.Create(filepath.Join(w.outDir, name))
	if err != nil {
		return ferrors.Wrap(err, ferrors.CategoryFileSystem, "creating artifact").
			WithContext("file", name).
			Build()
	}
	if err := w.gen.StreamRender(f, entries, sitemap.DefaultStreamBatch); err != nil {
		f.Close()
		return ferrors.Wrap(err, ferrors.CategoryFileSystem, "streaming sitemap").
			WithContext("file", name).
			Build()
	}
	if err := f.Close(); err != nil {
		return ferrors.Wrap(err, ferrors.CategoryFileSystem, "closing artifact").
			WithContext("file", name).
			Build()
	}
	summary.Files = append(summary.Files, name)
	w.log.Debug("artifact written", "file", name, "urls", len(entries))
	return nil
}
