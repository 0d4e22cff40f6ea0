package startpage

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// extractor turns a parsed results page into entries of one kind. It is the
// only place that knows the markup of that kind.
type extractor interface {
	extract(doc *goquery.Document) []Result
}

var extractors = map[Kind]extractor{
	KindWeb:    webExtractor{},
	KindImages: imageExtractor{},
	KindVideos: videoExtractor{},
	KindNews:   newsExtractor{},
	KindPlaces: placeExtractor{},
}

// resultsPageAnchors mark a genuine Startpage results page even when it lists
// nothing.
const resultsPageAnchors = "#main_results, .w-gl, .mainline-results, [class*='results-container'], " +
	"input[name='query'], .no-results, [class*='no-results'], [data-testid='no-results']"

var noResultsText = regexp.MustCompile(`(?i)no results found|did not match any|no results for|keine ergebnisse|aucun résultat`)

// ParseResults parses a results page of the given kind.
func ParseResults(page string, kind Kind) (*Response, error) {
	ex, ok := extractors[kind]
	if !ok {
		return nil, &ParseError{Kind: kind, Message: "unknown result kind"}
	}
	if strings.TrimSpace(page) == "" {
		return nil, &ParseError{Kind: kind, Message: "empty document"}
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, &ParseError{Kind: kind, Message: "invalid html", Err: err}
	}

	results := ex.extract(doc)
	if len(results) == 0 && !isResultsPage(doc) {
		return nil, &ParseError{Kind: kind, Message: "page has no result entries and does not look like a results page"}
	}
	if results == nil {
		results = []Result{}
	}

	return &Response{
		Results:      results,
		TotalResults: extractTotalResults(doc),
		HasNextPage:  hasNextPage(doc),
	}, nil
}

func isResultsPage(doc *goquery.Document) bool {
	if doc.Find(resultsPageAnchors).Length() > 0 {
		return true
	}
	return noResultsText.MatchString(textOf(doc.Find("body")))
}

// textOf joins the text nodes under sel with single spaces, skipping scripts
// and styles.
func textOf(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" || n.Data == "noscript" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return collapseSpace(strings.Join(parts, " "))
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// normalizeURL makes protocol-relative and root-relative links absolute
// against the Startpage origin.
func normalizeURL(raw string) string {
	u := strings.TrimSpace(raw)
	switch {
	case u == "":
		return ""
	case strings.HasPrefix(u, "//"):
		return "https:" + u
	case strings.HasPrefix(u, "/"):
		return BaseURL + u
	}
	return u
}

// firstGroup returns the matches of the first selector that matches anything.
func firstGroup(doc *goquery.Document, selectors []string) *goquery.Selection {
	for _, s := range selectors {
		if found := doc.Find(s); found.Length() > 0 {
			return found
		}
	}
	return doc.Find(strings.Join(selectors, ", "))
}

// withClass keeps elements whose class attribute matches re.
func withClass(sel *goquery.Selection, re *regexp.Regexp) *goquery.Selection {
	return sel.FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, ok := s.Attr("class")
		return ok && re.MatchString(class)
	})
}

// innermost drops elements that contain another element of the same set, so
// wrapper elements do not produce duplicate entries.
func innermost(sel *goquery.Selection) *goquery.Selection {
	return sel.FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Find("*").Intersection(sel).Length() == 0
	})
}

// linkFor returns the element itself when it is a link, otherwise its closest
// enclosing link.
func linkFor(sel *goquery.Selection) *goquery.Selection {
	if goquery.NodeName(sel) == "a" {
		return sel
	}
	return sel.Closest("a[href]")
}

func attr(sel *goquery.Selection, name string) string {
	v, _ := sel.Attr(name)
	return strings.TrimSpace(v)
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }

var (
	countElementID = regexp.MustCompile(`(?i)results?_?count|num_results|search_stats|result-stats`)
	statsClass     = regexp.MustCompile(`(?i)results?-?info|stats-text|summary`)
	totalPatterns  = []*regexp.Regexp{
		regexp.MustCompile(`(?i)([0-9][0-9,]*)\s*(?:results|Ergebnisse|résultats|risultati|resultados|resultaten)`),
		regexp.MustCompile(`(?i)About\s*([0-9][0-9,]*)`),
		regexp.MustCompile(`(?i)Approximately\s*([0-9][0-9,]*)`),
		regexp.MustCompile(`(?i)Displaying\s*[\d,-]+\s*of\s*([0-9][0-9,]*)`),
		regexp.MustCompile(`(?i)([0-9][0-9,]*)\s*items found`),
	}
)

// extractTotalResults reads the advertised result count, preferring dedicated
// count elements over general page text.
func extractTotalResults(doc *goquery.Document) *int {
	var texts []string
	doc.Find("div[id], span[id], p[id]").Each(func(_ int, s *goquery.Selection) {
		if countElementID.MatchString(attr(s, "id")) {
			texts = append(texts, textOf(s))
		}
	})
	withClass(doc.Find("div[class], p[class]"), statsClass).Each(func(_ int, s *goquery.Selection) {
		texts = append(texts, textOf(s))
	})
	if len(texts) == 0 {
		main := doc.Find("main").First()
		if main.Length() == 0 {
			main = doc.Find("div#main_results").First()
		}
		if main.Length() == 0 {
			main = doc.Find("body")
		}
		texts = append(texts, textOf(main))
	}

	for _, text := range texts {
		for _, re := range totalPatterns {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			if n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", "")); err == nil {
				return &n
			}
		}
	}
	return nil
}

var (
	// Link texts and labels must consist of the phrase alone, so result
	// titles such as "Next.js" are not taken for pagination.
	nextPagePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^next(\s+page)?\s*[›»>]*$`),
		regexp.MustCompile(`(?i)^more\s*results\s*[›»>]*$`),
		regexp.MustCompile(`^(>>|»)$`),
		regexp.MustCompile(`(?i)^load\s*more$`),
	}
	nextPageClass  = regexp.MustCompile(`(?i)(^|[\s_-])next($|[\s_-])`)
	paginationNav  = regexp.MustCompile(`(?i)pagination`)
	trailingArrow  = regexp.MustCompile(`>\s*$`)
	disabledMarker = regexp.MustCompile(`(?i)disabled`)
)

func hasNextPage(doc *goquery.Document) bool {
	found := false
	doc.Find("a, button").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if withClass(s, nextPageClass).Length() > 0 {
			found = true
			return false
		}
		text := strings.TrimSpace(textOf(s))
		title := strings.TrimSpace(attr(s, "title"))
		label := strings.TrimSpace(attr(s, "aria-label"))
		for _, re := range nextPagePatterns {
			if re.MatchString(text) || re.MatchString(title) || re.MatchString(label) {
				found = true
				return false
			}
		}
		return true
	})
	if found {
		return true
	}

	nav := doc.Find("nav[role='navigation'], div[role='navigation']").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return paginationNav.MatchString(attr(s, "aria-label"))
	}).First()
	if nav.Length() == 0 {
		return false
	}
	last := nav.Find("a, button").Last()
	if last.Length() == 0 {
		return false
	}
	if _, disabled := last.Attr("disabled"); disabled || disabledMarker.MatchString(attr(last, "class")) {
		return false
	}
	text := strings.ToLower(textOf(last))
	return strings.Contains(text, "next") || trailingArrow.MatchString(text) || strings.Contains(text, "→")
}
