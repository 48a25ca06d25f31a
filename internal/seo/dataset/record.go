// Package dataset defines the loosely-typed input records fed to the
// page synthesizer, a loader for record files, and the synthetic corpus
// generator used for scale testing.
package dataset

import (
	"fmt"
	"strings"

	"github.com/aadarsh214/seogen/internal/seo/page"
)

// Key normalizes a display name into a record key: lowercased with
// runs of whitespace replaced by single underscores.
func Key(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}

// Record is an arbitrary key-value bag describing one page to generate.
// Field conventions: title/name, description/summary/overview/intro,
// faqs, primaryKeywords, supportingKeywords; templates read further
// fields of their own.
type Record map[string]any

// String returns the string value for key, or "" when absent or not a
// string.
func (r Record) String(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// FirstString returns the first non-empty string among keys, in order.
func (r Record) FirstString(keys ...string) string {
	for _, k := range keys {
		if s := r.String(k); s != "" {
			return s
		}
	}
	return ""
}

// Title returns the record's title, preferring "title" over "name".
func (r Record) Title() string {
	return r.FirstString("title", "name")
}

// StringSlice returns the value for key coerced to a string slice. JSON
// and YAML decoders produce []any, so both representations are handled.
func (r Record) StringSlice(key string) []string {
	switch v := r[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return nil
	}
}

// FAQs returns record-provided FAQ pairs, or nil when absent.
func (r Record) FAQs() []page.FAQ {
	switch v := r["faqs"].(type) {
	case []page.FAQ:
		return v
	case []any:
		out := make([]page.FAQ, 0, len(v))
		for _, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			q, _ := m["question"].(string)
			a, _ := m["answer"].(string)
			if q != "" {
				out = append(out, page.FAQ{Question: q, Answer: a})
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		return nil
	}
}
