package stringutil

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

var (
	htmlTagRE    = regexp.MustCompile(`<[^>]*>`)
	whitespaceRE = regexp.MustCompile(`\s+`)
)

// StripHTML extracts the visible text from an HTML fragment, collapsing
// runs of whitespace. Upstream search APIs return answer bodies and
// summaries as HTML.
func StripHTML(fragment string) string {
	if !strings.ContainsRune(fragment, '<') {
		return collapse(fragment)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		// Degrade to a tag-stripping regex when the fragment is unparseable.
		return collapse(htmlTagRE.ReplaceAllString(fragment, " "))
	}
	return collapse(doc.Text())
}

// Truncate shortens s to at most max runes, appending an ellipsis when
// anything was cut. The cut always lands on a rune boundary so the result
// stays valid UTF-8. max<=0 leaves s untouched.
func Truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:max])) + "..."
}

func collapse(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}
