package startpage

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

var (
	videoContainerSelectors = []string{
		"div.video-result-item",
		"article.video-object",
		"div[class*='vid-item']",
		"div.search-result-video",
	}
	videoClass      = regexp.MustCompile(`(?i)result.*video`)
	durationPattern = regexp.MustCompile(`\d{1,2}:\d{2}(?::\d{2})?`)
)

type videoExtractor struct{}

func (videoExtractor) extract(doc *goquery.Document) []Result {
	containers := firstGroup(doc, videoContainerSelectors)
	if containers.Length() == 0 {
		containers = innermost(withClass(doc.Find("div"), videoClass))
	}

	var results []Result
	containers.Each(func(_ int, c *goquery.Selection) {
		title := c.Find("h3 a, h4 a, .video-title a, .title a").First()
		link := normalizeURL(attr(title, "href"))
		name := textOf(title)
		if name == "" || link == "" {
			return
		}

		duration := textOf(c.Find(".video-duration, .time, .duration, span[class*='duration']").First())
		if m := durationPattern.FindString(duration); m != "" {
			duration = m
		}

		results = append(results, VideoResult{
			Title:       name,
			URL:         link,
			Description: textOf(c.Find(".video-description, .snippet, .desc, .description").First()),
			Duration:    duration,
		})
	})
	return results
}
