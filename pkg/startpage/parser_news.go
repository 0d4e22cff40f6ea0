package startpage

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

var (
	newsContainerSelectors = []string{
		"article.news-item",
		"div.news-result",
		"div[class*='story-card']",
		"div.search-result-news",
	}
	newsClass = regexp.MustCompile(`(?i)news|story|article`)
)

type newsExtractor struct{}

func (newsExtractor) extract(doc *goquery.Document) []Result {
	containers := firstGroup(doc, newsContainerSelectors)
	if containers.Length() == 0 {
		containers = withClass(doc.Find("article"), newsClass)
	}

	var results []Result
	containers.Each(func(_ int, c *goquery.Selection) {
		title, href := newsTitle(c)
		link := normalizeURL(href)
		if title == "" || link == "" {
			return
		}

		date := c.Find(".date, .timestamp, time, .article-date").First()
		published := attr(date, "datetime")
		if published == "" {
			published = textOf(date)
		}

		results = append(results, NewsResult{
			Title:         title,
			URL:           link,
			Description:   textOf(c.Find(".snippet, .description, .summary, .article-summary").First()),
			Source:        textOf(c.Find(".source, .publisher, .attribution cite, .article-source").First()),
			PublishedDate: published,
		})
	})
	return results
}

func newsTitle(c *goquery.Selection) (string, string) {
	if heading := c.Find("h3 a, h4 a, .title a, .headline a, a .title").First(); heading.Length() > 0 {
		if link := linkFor(heading); link.Length() > 0 {
			return textOf(heading), attr(link, "href")
		}
	}
	heading := c.Find("h3, h4, .title, .headline").First()
	if heading.Length() == 0 {
		return "", ""
	}
	link := heading.Closest("a[href]")
	if link.Length() == 0 {
		link = c.Find("a[href]").First()
	}
	return textOf(heading), attr(link, "href")
}
