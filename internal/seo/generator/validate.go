package generator

import (
	"fmt"
	"strings"

	"github.com/aadarsh214/seogen/internal/seo/page"
)

// validate checks a synthesized page against its template's quality
// thresholds. All rules are checked every time; the returned slice lists
// every violation in a fixed order, empty when the page is valid.
func validate(p *page.Page, tpl *Template) []string {
	var violations []string

	words := len(strings.Fields(p.Content))
	if words < tpl.MinWordCount {
		violations = append(violations,
			fmt.Sprintf("content too short: %d words (minimum %d)", words, tpl.MinWordCount))
	}

	if len(p.FAQs) < tpl.MinFAQCount {
		violations = append(violations,
			fmt.Sprintf("too few FAQs: %d (minimum %d)", len(p.FAQs), tpl.MinFAQCount))
	}

	contentLower := strings.ToLower(p.Content)
	for _, section := range tpl.RequiredSections {
		if !strings.Contains(contentLower, strings.ToLower(section)) {
			violations = append(violations,
				fmt.Sprintf("missing required section: %s", section))
		}
	}

	if len(p.PrimaryKeywords)+len(p.SupportingKeywords) < 2 {
		violations = append(violations,
			"insufficient keywords: need at least 2 primary or supporting keywords")
	}

	return violations
}
