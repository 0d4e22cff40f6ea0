package startpage

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const webPage = `<html><body>
<div id="main_results">
  <div class="w-gl">
    <div class="w-gl-result">
      <h3><a href="https://go.dev/">The Go Programming Language</a></h3>
      <p class="result-snippet">Go is an open source   programming language.</p>
      <cite>go.dev › learn</cite>
    </div>
    <div class="w-gl-result">
      <a href="/do/proxy?u=x"><h2>Relative Link</h2></a>
      <p>Plain paragraph description.</p>
    </div>
    <div class="w-gl-result">
      <p class="result-snippet">No title here.</p>
    </div>
  </div>
</div>
<p id="results_count">About 1,234,000 results</p>
<a class="pagination-next" href="/sp/search?page=2">Next</a>
</body></html>`

func mustDoc(t *testing.T, page string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func TestParseResults_Web(t *testing.T) {
	resp, err := ParseResults(webPage, KindWeb)
	require.NoError(t, err)

	results := ResultsOf[WebResult](resp)
	require.Len(t, results, 2, "entries without a title link are skipped")

	assert.Equal(t, WebResult{
		Title:       "The Go Programming Language",
		URL:         "https://go.dev/",
		Description: "Go is an open source programming language.",
		DisplayURL:  "go.dev",
	}, results[0])

	assert.Equal(t, "Relative Link", results[1].Title)
	assert.Equal(t, "https://www.startpage.com/do/proxy?u=x", results[1].URL)
	assert.Equal(t, "Plain paragraph description.", results[1].Description)
	assert.Equal(t, "www.startpage.com", results[1].DisplayURL)

	require.NotNil(t, resp.TotalResults)
	assert.Equal(t, 1234000, *resp.TotalResults)
	assert.True(t, resp.HasNextPage)
}

func TestParseResults_WebToleratesWrappers(t *testing.T) {
	page := `<html><body><div class="wrap"><div class="outer">
		<div class="entry"><h3><a href="https://example.com/a">Example A</a></h3><p>Alpha description text</p></div>
		<div class="entry"><h3><a href="https://example.com/b">Example B</a></h3><p>Beta description text</p></div>
	</div></div></body></html>`

	resp, err := ParseResults(page, KindWeb)
	require.NoError(t, err)

	results := ResultsOf[WebResult](resp)
	require.Len(t, results, 2)
	assert.Equal(t, "https://example.com/a", results[0].URL)
	assert.Equal(t, "Alpha description text", results[0].Description)
	assert.Equal(t, "example.com", results[0].DisplayURL)
	assert.Equal(t, "https://example.com/b", results[1].URL)
	assert.Nil(t, resp.TotalResults)
	assert.False(t, resp.HasNextPage)
}

func TestParseResults_EmptyResultsPage(t *testing.T) {
	page := `<html><body><form action="/sp/search"><input name="query" value="zzzz"></form>
		<div class="no-results">No results found for zzzz</div></body></html>`

	for _, kind := range Kinds {
		t.Run(string(kind), func(t *testing.T) {
			resp, err := ParseResults(page, kind)
			require.NoError(t, err)
			assert.NotNil(t, resp.Results)
			assert.Empty(t, resp.Results)
			assert.Nil(t, resp.TotalResults)
		})
	}
}

func TestParseResults_NotAResultsPage(t *testing.T) {
	tests := map[string]string{
		"empty":      "",
		"whitespace": "   \n ",
		"unrelated":  `<html><body><h1>Welcome to nginx!</h1></body></html>`,
	}
	for name, page := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseResults(page, KindWeb)
			var pe *ParseError
			require.True(t, errors.As(err, &pe), "got %v", err)
			assert.Equal(t, KindWeb, pe.Kind)
		})
	}

	_, err := ParseResults(webPage, Kind("books"))
	var pe *ParseError
	assert.True(t, errors.As(err, &pe))
}

func TestParseResults_ImagesFromScript(t *testing.T) {
	page := `<html><body><div id="main_results"></div><script>
	window.__DATA__ = {"images":[{"thumbnailUrl":"//img.example.com/1.jpg","hostPageUrl":"https://example.com/page1","name":"First"},{"contentUrl":"https://img.example.com/2.png","alt":"Second"},{"thumbnailUrl":"//img.example.com/1.jpg","name":"Dup"}]};
	</script></body></html>`

	resp, err := ParseResults(page, KindImages)
	require.NoError(t, err)

	images := ResultsOf[ImageResult](resp)
	require.Len(t, images, 2)
	assert.Equal(t, ImageResult{
		ImageURL:  "https://img.example.com/1.jpg",
		SourceURL: "https://example.com/page1",
		Title:     "First",
	}, images[0])
	assert.Equal(t, "https://img.example.com/2.png", images[1].ImageURL)
	assert.Equal(t, "Second", images[1].Title)
	assert.Empty(t, images[1].SourceURL)
}

func TestParseResults_ImagesFromMarkup(t *testing.T) {
	page := `<html><body><main>
	<div class="image-wrap"><div class="img-inner"><a href="https://example.com/p"><img src="/thumb/a.jpg" alt="Alpha"></a></div></div>
	<div class="pic"><img data-src="https://cdn.example.com/b.jpg"><span class="caption">Beta caption</span></div>
	<div class="pic"><img src="https://cdn.example.com/b.jpg"></div>
	<div class="pic"><img src="https://cdn.example.com/c.jpg"></div>
	</main></body></html>`

	resp, err := ParseResults(page, KindImages)
	require.NoError(t, err)

	images := ResultsOf[ImageResult](resp)
	require.Len(t, images, 3, "duplicate image urls are dropped")
	assert.Equal(t, ImageResult{
		ImageURL:  "https://www.startpage.com/thumb/a.jpg",
		SourceURL: "https://example.com/p",
		Title:     "Alpha",
	}, images[0])
	assert.Equal(t, "Beta caption", images[1].Title)
	assert.Empty(t, images[1].SourceURL)
	assert.Equal(t, "Image", images[2].Title, "untitled images get a default title")
}

func TestParseResults_Videos(t *testing.T) {
	page := `<html><body>
	<div class="video-result-item"><h3><a href="https://video.example.com/v1">Learn Go</a></h3>
		<div class="video-description">A tour</div><span class="video-duration">Duration 1:02:03</span></div>
	<div class="video-result-item"><h3><a href="https://video.example.com/v2">Short</a></h3><span class="duration">4:05</span></div>
	<div class="video-result-item"><span>no title</span></div>
	</body></html>`

	resp, err := ParseResults(page, KindVideos)
	require.NoError(t, err)

	videos := ResultsOf[VideoResult](resp)
	require.Len(t, videos, 2)
	assert.Equal(t, VideoResult{
		Title:       "Learn Go",
		URL:         "https://video.example.com/v1",
		Description: "A tour",
		Duration:    "1:02:03",
	}, videos[0])
	assert.Equal(t, "4:05", videos[1].Duration)
	assert.Empty(t, videos[1].Description)
}

func TestParseResults_News(t *testing.T) {
	page := `<html><body>
	<article class="news-item"><h3><a href="https://news.example.com/a">Go 1.24 released</a></h3>
		<p class="snippet">New features</p><span class="source">Go Blog</span>
		<time datetime="2025-02-11T10:00:00Z">Feb 11</time></article>
	<article class="news-item"><a href="/news/b"><span class="title">Relative headline</span></a>
		<div class="date">2 hours ago</div></article>
	</body></html>`

	resp, err := ParseResults(page, KindNews)
	require.NoError(t, err)

	news := ResultsOf[NewsResult](resp)
	require.Len(t, news, 2)
	assert.Equal(t, NewsResult{
		Title:         "Go 1.24 released",
		URL:           "https://news.example.com/a",
		Description:   "New features",
		Source:        "Go Blog",
		PublishedDate: "2025-02-11T10:00:00Z",
	}, news[0])
	assert.Equal(t, "Relative headline", news[1].Title)
	assert.Equal(t, "https://www.startpage.com/news/b", news[1].URL)
	assert.Equal(t, "2 hours ago", news[1].PublishedDate)
	assert.Empty(t, news[1].Source)
}

func TestParseResults_PlacesFromLDJSON(t *testing.T) {
	page := `<html><head>
	<script type="application/ld+json">{"@context":"https://schema.org","@type":"ItemList","itemListElement":[
		{"@type":"ListItem","position":1,"item":{"@type":"Restaurant","name":"Luigi's",
			"address":{"@type":"PostalAddress","streetAddress":"1 Main St","addressLocality":"Springfield","addressCountry":{"@type":"Country","name":"US"}},
			"telephone":"+1 555 0100","url":"https://luigis.example.com",
			"aggregateRating":{"ratingValue":4.5,"reviewCount":"120"},"geo":{"latitude":40.1,"longitude":-88.2}}},
		{"@type":"ListItem","item":{"@type":"Thing","name":"Ignored"}}]}</script>
	<script type="application/ld+json">[{"@type":["LocalBusiness"],"name":"Luigi's","address":"1 Main St, Springfield, US"},{"@type":"Store","name":"Corner Shop","address":"2 Side St"}]</script>
	<script type="application/ld+json">{not json</script>
	</head><body></body></html>`

	resp, err := ParseResults(page, KindPlaces)
	require.NoError(t, err)

	places := ResultsOf[PlaceResult](resp)
	require.Len(t, places, 2, "duplicates by name and address are dropped")

	luigi := places[0]
	assert.Equal(t, "Luigi's", luigi.Name)
	assert.Equal(t, "1 Main St, Springfield, US", luigi.Address)
	assert.Equal(t, "+1 555 0100", luigi.Phone)
	assert.Equal(t, "https://luigis.example.com", luigi.URL)
	require.NotNil(t, luigi.Rating)
	assert.Equal(t, "4.5", *luigi.Rating)
	require.NotNil(t, luigi.ReviewCount)
	assert.Equal(t, 120, *luigi.ReviewCount)
	require.NotNil(t, luigi.Latitude)
	assert.Equal(t, "40.1", *luigi.Latitude)
	require.NotNil(t, luigi.Longitude)
	assert.Equal(t, "-88.2", *luigi.Longitude)
	assert.Equal(t, SourceLDJSON, luigi.DataSource)

	shop := places[1]
	assert.Equal(t, "Corner Shop", shop.Name)
	assert.Equal(t, "2 Side St", shop.Address)
	assert.Nil(t, shop.Rating)
	assert.Nil(t, shop.ReviewCount)
	assert.Nil(t, shop.Latitude)
}

func TestParseResults_PlacesFromMarkup(t *testing.T) {
	page := `<html><body>
	<div class="place-card"><h3><a href="https://maps.example.com/x">Cafe Uno</a></h3>
		<div class="address">5 Elm St</div><span class="phone">555-1234</span><span class="rating">4.2 ★</span></div>
	<div class="place-card"><h3>Cafe Uno</h3><div class="address">5 Elm St</div></div>
	<div class="place-card"><div class="address">no name</div></div>
	</body></html>`

	resp, err := ParseResults(page, KindPlaces)
	require.NoError(t, err)

	places := ResultsOf[PlaceResult](resp)
	require.Len(t, places, 1)
	assert.Equal(t, "Cafe Uno", places[0].Name)
	assert.Equal(t, "5 Elm St", places[0].Address)
	assert.Equal(t, "555-1234", places[0].Phone)
	assert.Equal(t, "https://maps.example.com/x", places[0].URL)
	require.NotNil(t, places[0].Rating)
	assert.Equal(t, "4.2", *places[0].Rating)
	assert.Nil(t, places[0].ReviewCount)
	assert.Equal(t, SourceHTML, places[0].DataSource)
}

func TestResultsOf_FiltersByType(t *testing.T) {
	resp := &Response{Results: []Result{
		WebResult{Title: "a"},
		ImageResult{ImageURL: "b"},
		WebResult{Title: "c"},
	}}
	assert.Len(t, ResultsOf[WebResult](resp), 2)
	assert.Len(t, ResultsOf[ImageResult](resp), 1)
	assert.Empty(t, ResultsOf[NewsResult](resp))
	assert.Nil(t, ResultsOf[WebResult](nil))
}

func TestExtractTotalResults(t *testing.T) {
	tests := []struct {
		name string
		page string
		want *int
	}{
		{"german count element", `<div id="search_stats">12,345 Ergebnisse</div>`, ptr(12345)},
		{"displaying range", `<p class="stats-text">Displaying 1-10 of 5,000</p>`, ptr(5000)},
		{"approximately in page text", `<main>Approximately 77 pages</main>`, ptr(77)},
		{"items found", `<main>42 items found</main>`, ptr(42)},
		{"absent", `<main>nothing to count here</main>`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractTotalResults(mustDoc(t, "<html><body>"+tt.page+"</body></html>"))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasNextPage(t *testing.T) {
	tests := []struct {
		name string
		page string
		want bool
	}{
		{"title attribute", `<a title="Next page" href="#">›</a>`, true},
		{"aria label", `<button aria-label="Load more">+</button>`, true},
		{"more results text", `<a href="?p=2">More results</a>`, true},
		{"pagination nav arrow", `<nav role="navigation" aria-label="Pagination"><a href="?p=1">1</a><a href="?p=2">2 &gt;</a></nav>`, true},
		{"disabled last button", `<nav role="navigation" aria-label="pagination"><a href="?p=1">1</a><button disabled>→</button></nav>`, false},
		{"no pagination", `<a href="/about">About</a>`, false},
		{"next class", `<a class="pagination-next" href="?p=2">2</a>`, true},
		{"result titled Next.js", `<h2><a href="https://nextjs.org/">Next.js by Vercel - The React Framework</a></h2>`, false},
		{"result titled Nextcloud", `<a class="result-link" href="https://nextcloud.com/">Nextcloud</a><p>Next generation file sharing</p>`, false},
		{"class containing next", `<a class="nextjs-card" href="https://nextjs.org/">Docs</a>`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hasNextPage(mustDoc(t, "<html><body>"+tt.page+"</body></html>"))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "", normalizeURL("  "))
	assert.Equal(t, "https://cdn.example.com/x.png", normalizeURL("//cdn.example.com/x.png"))
	assert.Equal(t, "https://www.startpage.com/sp/search", normalizeURL("/sp/search"))
	assert.Equal(t, "https://example.com", normalizeURL(" https://example.com "))
}

func TestTextOf(t *testing.T) {
	doc := mustDoc(t, `<html><body><div id="x">Hello<b>big</b>&nbsp; world<script>var a = 1;</script></div></body></html>`)
	assert.Equal(t, "Hello big world", textOf(doc.Find("#x")))
	assert.Equal(t, "", textOf(doc.Find("#missing")))
}
