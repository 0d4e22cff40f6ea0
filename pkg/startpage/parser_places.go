package startpage

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"
)

var placeTypes = map[string]bool{
	"Place":         true,
	"LocalBusiness": true,
	"Restaurant":    true,
	"Store":         true,
	"Hotel":         true,
	"PostalAddress": true,
}

var (
	placeContainerSelectors = "div.place-card, article.local-result, div[data-result-type='local'], " +
		"div[class*='place-result'], div[class*='location-card']"
	placeClass    = regexp.MustCompile(`(?i)result.*(place|local|map|location)`)
	ratingPattern = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)
)

var addressParts = []string{
	"streetAddress", "postOfficeBoxNumber", "addressLocality",
	"addressRegion", "postalCode", "addressCountry",
}

type placeExtractor struct{}

func (placeExtractor) extract(doc *goquery.Document) []Result {
	seen := make(map[string]bool)
	if results := placesFromLDJSON(doc, seen); len(results) > 0 {
		return results
	}
	return placesFromMarkup(doc, seen)
}

func placeIdentity(name, address string) string {
	return strings.ToLower(name + "|" + address)
}

func placesFromLDJSON(doc *goquery.Document, seen map[string]bool) []Result {
	var results []Result
	doc.Find("script[type='application/ld+json']").Each(func(_ int, s *goquery.Selection) {
		raw := s.Text()
		if !gjson.Valid(raw) {
			return
		}
		for _, item := range ldItems(gjson.Parse(raw)) {
			if place, ok := placeFromLD(item); ok {
				id := placeIdentity(place.Name, place.Address)
				if seen[id] {
					continue
				}
				seen[id] = true
				results = append(results, place)
			}
		}
	})
	return results
}

// ldItems flattens the top-level shapes that carry places: arrays, ItemList
// elements and @graph members.
func ldItems(data gjson.Result) []gjson.Result {
	var items []gjson.Result
	switch {
	case data.IsArray():
		items = data.Array()
	case data.IsObject():
		fields := data.Map()
		if fields["@type"].String() == "ItemList" {
			items = fields["itemListElement"].Array()
		} else if graph := fields["@graph"]; graph.IsArray() {
			items = graph.Array()
		} else {
			items = []gjson.Result{data}
		}
	}

	out := make([]gjson.Result, 0, len(items))
	for _, it := range items {
		if nested := it.Get("item"); nested.IsObject() {
			it = nested
		}
		if it.IsObject() {
			out = append(out, it)
		}
	}
	return out
}

func placeFromLD(item gjson.Result) (PlaceResult, bool) {
	fields := item.Map()
	typ := fields["@type"]
	if typ.IsArray() {
		if arr := typ.Array(); len(arr) > 0 {
			typ = arr[0]
		}
	}
	itemType := typ.String()
	if !placeTypes[itemType] {
		return PlaceResult{}, false
	}

	name := item.Get("name").String()
	if name == "" && itemType == "PostalAddress" {
		name = "Address"
	}
	if name == "" {
		return PlaceResult{}, false
	}

	place := PlaceResult{
		Name:       name,
		Address:    ldAddress(item.Get("address")),
		Phone:      item.Get("telephone").String(),
		URL:        normalizeURL(ldURL(item)),
		DataSource: SourceLDJSON,
	}
	if v := item.Get("aggregateRating.ratingValue"); v.Exists() {
		rating := v.String()
		place.Rating = &rating
	}
	if v := item.Get("aggregateRating.reviewCount"); v.Exists() {
		count := int(v.Int())
		place.ReviewCount = &count
	}
	if v := item.Get("geo.latitude"); v.Exists() {
		lat := v.String()
		place.Latitude = &lat
	}
	if v := item.Get("geo.longitude"); v.Exists() {
		lon := v.String()
		place.Longitude = &lon
	}
	return place, true
}

func ldAddress(addr gjson.Result) string {
	if !addr.IsObject() {
		return addr.String()
	}
	var parts []string
	for _, key := range addressParts {
		v := addr.Get(key)
		if v.IsObject() {
			v = v.Get("name")
		}
		if s := strings.TrimSpace(v.String()); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

func ldURL(item gjson.Result) string {
	if u := item.Get("url").String(); u != "" {
		return u
	}
	page := item.Get("mainEntityOfPage")
	if page.IsObject() {
		return page.Map()["@id"].String()
	}
	return page.String()
}

func placesFromMarkup(doc *goquery.Document, seen map[string]bool) []Result {
	containers := doc.Find(placeContainerSelectors)
	if containers.Length() == 0 {
		containers = innermost(withClass(doc.Find("div"), placeClass))
	}

	var results []Result
	containers.Each(func(_ int, c *goquery.Selection) {
		nameTag := c.Find("h3, h4, .place-name, .title, [role='heading']").First()
		name := textOf(nameTag)
		if name == "" {
			return
		}
		address := textOf(c.Find(".address, .adr, .place-address, [itemprop='address']").First())
		id := placeIdentity(name, address)
		if seen[id] {
			return
		}
		seen[id] = true

		link := c.Find("a.website-link, a[href*='maps.google.com'], a[itemprop='url'], a.directions-link").First()
		if link.Length() == 0 {
			link = nameTag.Closest("a[href]")
		}
		if link.Length() == 0 {
			link = c.Find("a[href]").First()
		}

		place := PlaceResult{
			Name:       name,
			Address:    address,
			Phone:      textOf(c.Find(".phone, .tel, .place-phone, [itemprop='telephone']").First()),
			URL:        normalizeURL(attr(link, "href")),
			DataSource: SourceHTML,
		}
		if ratingTag := c.Find(".rating, .review-score, [aria-label*='star rating'], [itemprop='ratingValue']").First(); ratingTag.Length() > 0 {
			text := attr(ratingTag, "content")
			if text == "" {
				text = textOf(ratingTag)
			}
			if m := ratingPattern.FindString(text); m != "" {
				place.Rating = &m
			}
		}
		results = append(results, place)
	})
	return results
}
