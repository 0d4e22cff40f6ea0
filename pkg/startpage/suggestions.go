package startpage

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"
)

const maxSuggestions = 10

var (
	suggestionSelectors = "li.suggestion-item, div.autocomplete-suggestion, option, li[role='option']"
	suggestionClass     = regexp.MustCompile(`(?i)suggest|autocomplete`)
)

// ParseSuggestions reads an OpenSearch suggestions payload, falling back to
// suggestion markup. Unrecognised bodies yield an empty list.
func ParseSuggestions(body string) []string {
	out := make([]string, 0, maxSuggestions)
	seen := make(map[string]bool)
	add := func(s string) bool {
		s = collapseSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
		return len(out) < maxSuggestions
	}

	trimmed := strings.TrimSpace(body)
	if gjson.Valid(trimmed) {
		// ["partial", ["suggestion 1", "suggestion 2", ...]]
		if list := gjson.Get(trimmed, "1"); list.IsArray() {
			for _, s := range list.Array() {
				if s.Type != gjson.String && s.Type != gjson.Number {
					continue
				}
				if !add(s.String()) {
					break
				}
			}
			return out
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return out
	}
	items := doc.Find(suggestionSelectors)
	if items.Length() == 0 {
		items = innermost(withClass(doc.Find("li, div"), suggestionClass))
	}
	items.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := attr(s, "value")
		if text == "" {
			text = attr(s, "data-suggestion")
		}
		if text == "" {
			text = textOf(s)
		}
		return add(text)
	})
	return out
}
