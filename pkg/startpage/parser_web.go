package startpage

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var webContainerSelectors = []string{
	"div.w-gl-result",
	"div.result",
	"article.result-item",
	"div[data-testid='result-item']",
	"div[class*='search-result-item']",
	"section.web-result",
}

var adsOrRelated = regexp.MustCompile(`(?i)ads|related`)

type webExtractor struct{}

func (webExtractor) extract(doc *goquery.Document) []Result {
	containers := firstGroup(doc, webContainerSelectors)
	if containers.Length() == 0 {
		containers = innermost(doc.Find("div").FilterFunction(func(_ int, s *goquery.Selection) bool {
			return s.Find("h2 > a[href], h3 > a[href], h4 > a[href]").Length() > 0 &&
				s.Find("p, span[class*='snippet'], span[class*='desc']").Length() > 0
		}))
	}

	var results []Result
	seen := make(map[string]bool)
	containers.Each(func(_ int, c *goquery.Selection) {
		title, href := webTitle(c)
		link := normalizeURL(href)
		if title == "" || link == "" || seen[link] {
			return
		}
		seen[link] = true
		results = append(results, WebResult{
			Title:       title,
			URL:         link,
			Description: webDescription(c),
			DisplayURL:  webDisplayURL(c, link),
		})
	})
	return results
}

func webTitle(c *goquery.Selection) (string, string) {
	if heading := c.Find("h2 > a, h3 > a, h4 > a, a > h2, a > h3, a > h4").First(); heading.Length() > 0 {
		if link := linkFor(heading); link.Length() > 0 {
			return textOf(heading), attr(link, "href")
		}
	}
	if link := c.Find("a[href][role='heading'], a[href][data-testid='result-title-a']").First(); link.Length() > 0 {
		return textOf(link), attr(link, "href")
	}

	var title, href string
	c.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if t := textOf(a); t != "" {
			title, href = t, attr(a, "href")
			return false
		}
		return true
	})
	return title, href
}

func webDescription(c *goquery.Selection) string {
	desc := c.Find("p[class*='snippet'], p[class*='desc'], div[class*='snippet'], div[class*='desc'], .result-snippet").First()
	if desc.Length() == 0 {
		desc = c.Find("p").FilterFunction(func(_ int, p *goquery.Selection) bool {
			return withClass(p.ParentsUntilSelection(c), adsOrRelated).Length() == 0
		}).First()
	}
	return textOf(desc)
}

func webDisplayURL(c *goquery.Selection, link string) string {
	if cite := c.Find("cite, span[class*='url'], div[class*='breadcrumb'], .result__url").First(); cite.Length() > 0 {
		if fields := strings.Fields(textOf(cite)); len(fields) > 0 {
			return fields[0]
		}
	}
	if u, err := url.Parse(link); err == nil && u.Host != "" {
		return u.Host
	}
	return ""
}
