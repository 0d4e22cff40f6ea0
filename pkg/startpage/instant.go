package startpage

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	sxprSource         = "Startpage Knowledge"
	genericPanelSource = "Knowledge Panel"
	panelDescMax       = 800
)

var (
	sxprClass      = regexp.MustCompile(`(?i)sxpr|search-expander|sx-|wiki`)
	panelClass     = regexp.MustCompile(`(?i)infobox|summary|description|knowledge|fact|panel|entity`)
	weatherClass   = regexp.MustCompile(`(?i)temp|weather|climate|condition|forecast`)
	answerBoxClass = regexp.MustCompile(`(?i)calc|answer|conversion|result-box`)
	weatherText    = regexp.MustCompile(`(?i)\d+°[CF]?|\b(?:Sunny|Cloudy|Rain|Snow)\b`)

	questionIndicators = []string{
		"what is", "what are", "who is", "who are",
		"how much", "how many", "when is", "where is",
		"define", "definition", "time in",
	}
	timeKeywords = []string{"time", "date", "today", "now"}

	// markup of known answer widgets, matched against the raw page
	calculatorPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<span class="wob_t" style="display:inline">([-−]?[\d,.]+)</span>`),
		regexp.MustCompile(`(?i)id="cwos">([-−]?[\d,.]+)</span>`),
		regexp.MustCompile(`(?i)<div class="vk_ans">([-−]?[\d,.]+)</div>`),
		regexp.MustCompile(`(?i)calc_result_val">([-−]?[\d,.\s]+)</span>`),
	}
	// "= 1,234.56" style results, only inside answer boxes
	equalsPattern = regexp.MustCompile(`(?i)(?:=|\bis\b|\bequals\b)\s*([-−]?\d[\d,.]*(?:\s?[A-Za-z%]+)?)`)

	timePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}(?::\d{2})?(?:\s*(?:AM|PM)\b)?`),
		regexp.MustCompile(`(?i)\b(?:Mon|Tue|Wed|Thu|Fri|Sat|Sun)\b, \w+ \d{1,2}, \d{4}`),
		regexp.MustCompile(`(?i)\b[A-Za-z]+ \d{1,2}, \d{4}\b`),
		regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`),
	}
)

// ParseInstantAnswers extracts a direct answer and a knowledge panel from a
// web results page fetched for query.
func ParseInstantAnswers(page, query string) (*InstantAnswers, error) {
	if strings.TrimSpace(page) == "" {
		return nil, &ParseError{Kind: KindWeb, Message: "empty document"}
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, &ParseError{Kind: KindWeb, Message: "invalid html", Err: err}
	}

	q := strings.ToLower(query)
	answer := sxprAnswer(doc, q)
	if answer == "" {
		answer = calculatorAnswer(doc, page)
	}
	if answer == "" {
		answer = timeDateAnswer(doc, q)
	}
	if answer == "" {
		answer = weatherAnswer(doc, q)
	}

	panel := sxprPanel(doc)
	if panel == nil {
		panel = genericPanel(doc)
	}

	if answer != "" && panel != nil && panel.Description != "" &&
		(strings.Contains(panel.Description, answer) || strings.Contains(answer, panel.Description)) {
		if panel.Title != "" {
			answer = ""
		} else {
			panel = nil
		}
	}

	out := &InstantAnswers{KnowledgePanel: panel}
	if answer != "" {
		out.InstantAnswer = &answer
	}
	return out, nil
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func sxprBlocks(doc *goquery.Document) *goquery.Selection {
	return withClass(doc.Find("div, section"), sxprClass)
}

func sxprAnswer(doc *goquery.Document, query string) string {
	if !containsAny(query, questionIndicators) {
		return ""
	}
	var answer string
	sxprBlocks(doc).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := textOf(s)
		if n := runeLen(text); n > 20 && n < 300 {
			answer = text
			return false
		}
		return true
	})
	return answer
}

func calculatorAnswer(doc *goquery.Document, page string) string {
	for _, re := range calculatorPatterns {
		if m := re.FindStringSubmatch(page); m != nil {
			if v := strings.TrimSpace(m[1]); v != "" {
				return v
			}
		}
	}
	var answer string
	withClass(doc.Find("div, span, section"), answerBoxClass).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if m := equalsPattern.FindStringSubmatch(textOf(s)); m != nil {
			answer = strings.TrimSpace(m[1])
			return false
		}
		return true
	})
	return answer
}

func timeDateAnswer(doc *goquery.Document, query string) string {
	if !containsAny(query, timeKeywords) {
		return ""
	}
	text := textOf(doc.Find("body"))
	for _, re := range timePatterns {
		if m := re.FindString(text); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

func weatherAnswer(doc *goquery.Document, query string) string {
	if !strings.Contains(query, "weather") {
		return ""
	}
	var answer string
	withClass(doc.Find("span, div"), weatherClass).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := textOf(s)
		if weatherText.MatchString(text) {
			answer = truncateRunes(text, 100)
			return false
		}
		return true
	})
	return answer
}

func sxprPanel(doc *goquery.Document) *KnowledgePanel {
	var panel *KnowledgePanel
	sxprBlocks(doc).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := textOf(s)
		if runeLen(text) <= 20 {
			return true
		}
		desc := text
		if runeLen(text) > panelDescMax {
			desc = truncateRunes(text, panelDescMax) + "..."
		}
		p := &KnowledgePanel{
			Title:       textOf(s.Find("h1, h2, h3, h4").First()),
			Description: desc,
			Facts:       map[string]string{},
			Source:      sxprSource,
		}
		if runeLen(text) >= 300 || p.Title != "" {
			panel = p
			return false
		}
		return true
	})
	return panel
}

func genericPanel(doc *goquery.Document) *KnowledgePanel {
	var panel *KnowledgePanel
	withClass(doc.Find("div, section, aside"), panelClass).EachWithBreak(func(_ int, c *goquery.Selection) bool {
		full := textOf(c)
		if n := runeLen(full); n <= 200 || n >= 5000 {
			return true
		}

		title := c.Find("h1[role='heading'], h2[role='heading'], h3[role='heading'], h4[role='heading'], div[role='heading']").First()
		if title.Length() == 0 {
			title = c.Find("h1, h2, h3, h4").First()
		}

		paragraphs := c.Find("p")
		desc := paragraphs.FilterFunction(func(_ int, p *goquery.Selection) bool {
			return runeLen(textOf(p)) > 50
		}).First()
		if desc.Length() == 0 {
			desc = paragraphs.First()
		}
		if title.Length() == 0 && desc.Length() == 0 {
			return true
		}

		p := &KnowledgePanel{
			Title:  textOf(title),
			Facts:  map[string]string{},
			Source: genericPanelSource,
		}
		if desc.Length() > 0 {
			p.Description = truncateRunes(textOf(desc), panelDescMax)
		} else {
			p.Description = truncateRunes(strings.TrimSpace(strings.Replace(full, p.Title, "", 1)), panelDescMax)
		}
		if p.Title == "" && runeLen(p.Description) <= 100 {
			return true
		}

		c.Find("dt, th").Each(func(_ int, f *goquery.Selection) {
			name := strings.TrimRight(textOf(f), ":")
			value := textOf(f.NextAllFiltered("dd, td").First())
			if name != "" && value != "" && runeLen(name) < 50 && runeLen(value) < 200 {
				p.Facts[name] = value
			}
		})
		panel = p
		return false
	})
	return panel
}
