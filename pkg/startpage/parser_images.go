package startpage

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"
)

const defaultImageTitle = "Image"

// embeddedImageObject finds flat JSON objects in inline scripts that carry an
// image url key.
var embeddedImageObject = regexp.MustCompile(`(?is)\{[^{}]*?"(?:image.?url|thumbnail.?url|content.?url)"\s*:[^{}]*\}`)

var (
	imageContainerSelectors = "div.image-result-item, div.tile, figure.image-container, div.img-result"
	imageClass              = regexp.MustCompile(`(?i)image|img|pic`)
	captionClass            = regexp.MustCompile(`(?i)title|caption`)
)

type imageExtractor struct{}

func (imageExtractor) extract(doc *goquery.Document) []Result {
	seen := make(map[string]bool)
	results := imagesFromScripts(doc, seen)
	if len(results) > 0 {
		return results
	}
	return imagesFromMarkup(doc, seen)
}

func imagesFromScripts(doc *goquery.Document, seen map[string]bool) []Result {
	var results []Result
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		for _, raw := range embeddedImageObject.FindAllString(s.Text(), -1) {
			if !gjson.Valid(raw) {
				continue
			}
			obj := gjson.Parse(raw)
			img := normalizeURL(firstString(obj, "thumbnailUrl", "contentUrl", "url", "imageUrl"))
			if img == "" || seen[img] {
				continue
			}
			seen[img] = true
			title := firstString(obj, "name", "title", "alt")
			if title == "" {
				title = defaultImageTitle
			}
			results = append(results, ImageResult{
				ImageURL:  img,
				SourceURL: normalizeURL(firstString(obj, "hostPageUrl", "source", "page")),
				Title:     title,
			})
		}
	})
	return results
}

func imagesFromMarkup(doc *goquery.Document, seen map[string]bool) []Result {
	containers := doc.Find(imageContainerSelectors)
	if containers.Length() == 0 {
		root := doc.Find("main").First()
		if root.Length() == 0 {
			root = doc.Find("div#main_results").First()
		}
		if root.Length() == 0 {
			root = doc.Selection
		}
		containers = innermost(withClass(root.Find("div"), imageClass).Has("img"))
	}

	var results []Result
	containers.Each(func(_ int, c *goquery.Selection) {
		img := c.Find("img").First()
		if img.Length() == 0 {
			return
		}
		src := attr(img, "data-src")
		if src == "" {
			src = attr(img, "src")
		}
		src = normalizeURL(src)
		if src == "" || seen[src] {
			return
		}
		seen[src] = true

		title := attr(img, "alt")
		if title == "" {
			title = attr(img, "title")
		}
		if title == "" {
			caption := c.Find("figcaption").First()
			if caption.Length() == 0 {
				caption = withClass(c.Find("p, span"), captionClass).First()
			}
			title = textOf(caption)
		}
		if title == "" {
			title = defaultImageTitle
		}

		link := img.Closest("a[href]")
		if link.Length() == 0 {
			link = c.Find("a[href]").First()
		}
		results = append(results, ImageResult{
			ImageURL:  src,
			SourceURL: normalizeURL(attr(link, "href")),
			Title:     title,
		})
	})
	return results
}

// firstString returns the first non-empty string value among keys.
func firstString(obj gjson.Result, keys ...string) string {
	for _, k := range keys {
		if v := obj.Get(k); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return ""
}
