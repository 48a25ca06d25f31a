package render

import (
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	ferrors "github.com/aadarsh214/seogen/internal/foundation/errors"
)

// Link is one anchor extracted from rendered HTML.
type Link struct {
	URL      string
	Text     string
	Internal bool
}

// BrokenLink is an internal anchor pointing at a slug that was never
// generated.
type BrokenLink struct {
	File   string
	Target string
}

// Report summarizes a verification pass over rendered output.
type Report struct {
	FilesScanned int
	LinksChecked int
	Broken       []BrokenLink
}

// OK reports whether no broken links were found.
func (r *Report) OK() bool { return len(r.Broken) == 0 }

// ExtractLinks parses HTML and returns every anchor. A link counts as
// internal when it is relative or shares the base URL's host.
func ExtractLinks(r io.Reader, baseURL string) ([]Link, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, ferrors.Wrap(err, ferrors.CategoryValidation, "parsing HTML").Build()
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, ferrors.Wrap(err, ferrors.CategoryValidation, "invalid base URL").
			WithContext("base_url", baseURL).
			Build()
	}

	var links []Link
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if href := attr(n, "href"); href != "" {
				links = append(links, Link{
					URL:      href,
					Text:     nodeText(n),
					Internal: isInternal(href, base),
				})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links, nil
}

// VerifyDir scans every .html file under root and checks each internal
// anchor against the set of known slugs. Anchors to "/" and to the
// known static paths are accepted as-is.
func VerifyDir(root, baseURL string, slugs map[string]struct{}, staticPaths map[string]struct{}) (*Report, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, ferrors.Wrap(err, ferrors.CategoryValidation, "invalid base URL").Build()
	}

	report := &Report{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}
		report.FilesScanned++

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		links, err := ExtractLinks(f, baseURL)
		f.Close()
		if err != nil {
			return err
		}

		rel, _ := filepath.Rel(root, path)
		for _, link := range links {
			if !link.Internal {
				continue
			}
			report.LinksChecked++
			slug := slugOf(link.URL)
			if slug == "" {
				continue
			}
			if _, ok := slugs[slug]; ok {
				continue
			}
			if _, ok := staticPaths["/"+slug]; ok {
				continue
			}
			report.Broken = append(report.Broken, BrokenLink{File: rel, Target: slug})
		}
		return nil
	})
	if err != nil {
		return nil, ferrors.Wrap(err, ferrors.CategoryFileSystem, "scanning rendered output").
			WithContext("root", root).
			Build()
	}
	return report, nil
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func isInternal(href string, base *url.URL) bool {
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	if u.Scheme == "mailto" || u.Scheme == "tel" {
		return false
	}
	if u.Host == "" {
		return true
	}
	return u.Host == base.Host
}

// slugOf normalizes an internal href to its slug: host and leading
// slash stripped, fragments and query dropped. The root path returns
// empty, which callers treat as always valid.
func slugOf(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	p := strings.TrimPrefix(u.Path, "/")
	return strings.TrimSuffix(p, "/")
}
