package page

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics decomposes to NFD and drops combining marks, so titles
// like "Résumé" slugify to "resume" instead of losing letters entirely.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify derives a URL-safe slug from a title: lower-case, diacritics
// folded, everything outside [a-z0-9 -] stripped, whitespace runs and
// repeated hyphens collapsed to single hyphens, edge hyphens trimmed.
//
// Slugify is pure and idempotent. An empty result means the title had no
// alphanumeric content; callers are expected to guarantee titles that
// survive the strip.
func Slugify(title string) string {
	folded, _, err := transform.String(foldDiacritics, title)
	if err != nil {
		folded = title
	}

	lower := strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	// Whitespace runs become single hyphens, then hyphen runs collapse.
	fields := strings.Fields(b.String())
	joined := strings.Join(fields, "-")
	for strings.Contains(joined, "--") {
		joined = strings.ReplaceAll(joined, "--", "-")
	}
	return strings.Trim(joined, "-")
}
