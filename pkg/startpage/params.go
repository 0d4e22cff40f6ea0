package startpage

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

const (
	defaultLanguage       = "en"
	defaultRegion         = "all"
	defaultResultsPerPage = 10
	defaultImagesPerPage  = 20
)

// RawParams are extra provider parameters. Keys found in the advanced table
// are rewritten to provider keys; everything else is sent as given.
type RawParams map[string]string

// SearchRequest describes one search. Zero values pick the defaults;
// fields that do not apply to the searched kind are ignored.
type SearchRequest struct {
	Query          string
	Language       string
	Region         string
	SafeSearch     SafeSearch
	TimeFilter     TimeFilter
	Page           int
	ResultsPerPage int

	// images only
	Size ImageSize
	// videos only
	Duration VideoDuration

	// places only
	Latitude  *float64
	Longitude *float64
	Radius    *int

	Extra RawParams
}

func (r SearchRequest) withDefaults(kind Kind) SearchRequest {
	if r.Language == "" {
		r.Language = defaultLanguage
	}
	if r.Region == "" {
		r.Region = defaultRegion
	}
	if r.SafeSearch == "" {
		r.SafeSearch = SafeSearchModerate
	}
	if r.TimeFilter == "" {
		r.TimeFilter = TimeAny
	}
	if r.Size == "" {
		r.Size = SizeAny
	}
	if r.Duration == "" {
		r.Duration = DurationAny
	}
	if r.Page == 0 {
		r.Page = 1
	}
	if r.ResultsPerPage == 0 {
		r.ResultsPerPage = defaultResultsPerPage
		if kind == KindImages {
			r.ResultsPerPage = defaultImagesPerPage
		}
	}
	return r
}

func (r SearchRequest) validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return &ConfigError{Field: "query", Message: "query cannot be empty"}
	}
	if r.Page < 1 {
		return &ConfigError{Field: "page", Message: fmt.Sprintf("must be >= 1, got %d", r.Page)}
	}
	if r.ResultsPerPage <= 0 {
		return &ConfigError{Field: "results_per_page", Message: fmt.Sprintf("must be > 0, got %d", r.ResultsPerPage)}
	}
	if _, ok := safeSearchLevels[r.SafeSearch]; !ok {
		return &ConfigError{Field: "safe_search", Message: fmt.Sprintf("unknown level %q", r.SafeSearch)}
	}
	if _, ok := timeFilters[r.TimeFilter]; !ok {
		return &ConfigError{Field: "time_filter", Message: fmt.Sprintf("unknown filter %q", r.TimeFilter)}
	}
	if _, ok := imageSizes[r.Size]; !ok {
		return &ConfigError{Field: "size", Message: fmt.Sprintf("unknown image size %q", r.Size)}
	}
	if _, ok := videoDurations[r.Duration]; !ok {
		return &ConfigError{Field: "duration", Message: fmt.Sprintf("unknown video duration %q", r.Duration)}
	}
	return nil
}

// BuildParams maps a request onto Startpage query parameters. The request is
// not modified.
func BuildParams(req SearchRequest, kind Kind) (url.Values, error) {
	category, ok := kind.Category()
	if !ok {
		return nil, &ConfigError{Field: "kind", Message: fmt.Sprintf("unknown search kind %q", kind)}
	}
	req = req.withDefaults(kind)
	if err := req.validate(); err != nil {
		return nil, err
	}

	params := url.Values{}
	set := func(name, value string) { params.Set(providerKey(name), value) }

	lang := normalizeLanguage(req.Language)
	set("query", strings.TrimSpace(req.Query))
	set("cat", category)
	set("cmd", "process_search")
	set("language", lang)
	set("lui", lang)
	set("pl", normalizeRegion(req.Region))
	set("startat", strconv.Itoa((req.Page-1)*req.ResultsPerPage))

	switch kind {
	case KindWeb, KindImages, KindVideos:
		set("ff", safeSearchLevels[req.SafeSearch])
	}
	if kind == KindWeb {
		set("num", strconv.Itoa(req.ResultsPerPage))
	}

	switch kind {
	case KindWeb, KindVideos, KindNews:
		if v := timeFilters[req.TimeFilter]; v != "" {
			set("time_filter", v)
		}
	}

	switch kind {
	case KindImages:
		if v := imageSizes[req.Size]; v != "" {
			set("size", v)
		}
	case KindVideos:
		if v := videoDurations[req.Duration]; v != "" {
			set("duration", v)
		}
	case KindPlaces:
		if req.Latitude != nil && req.Longitude != nil {
			set("latitude", strconv.FormatFloat(*req.Latitude, 'f', -1, 64))
			set("longitude", strconv.FormatFloat(*req.Longitude, 'f', -1, 64))
		}
		if req.Radius != nil {
			set("radius", strconv.Itoa(*req.Radius))
		}
	}

	if err := applyExtra(params, req.Extra); err != nil {
		return nil, err
	}
	return params, nil
}

// buildInstantParams is the reduced parameter set used to fetch a page for
// instant answer extraction.
func buildInstantParams(query, lang string, extra RawParams) (url.Values, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &ConfigError{Field: "query", Message: "query cannot be empty"}
	}
	if lang == "" {
		lang = defaultLanguage
	}
	lang = normalizeLanguage(lang)

	params := url.Values{}
	params.Set("query", strings.TrimSpace(query))
	params.Set("cat", categories[KindWeb])
	params.Set("cmd", "process_search")
	params.Set("language", lang)
	params.Set("lui", lang)
	if err := applyExtra(params, extra); err != nil {
		return nil, err
	}
	return params, nil
}

// applyExtra sets the pass-through keys last. A query given there replaces
// the request query and must not be blank either.
func applyExtra(params url.Values, extra RawParams) error {
	for k, v := range extra {
		params.Set(providerKey(k), v)
	}
	query := strings.TrimSpace(params.Get("query"))
	if query == "" {
		return &ConfigError{Field: "query", Message: "query cannot be empty"}
	}
	params.Set("query", query)
	return nil
}

// SearchURL returns the GET URL that a search of the given kind fetches from
// the public Startpage origin. It performs no I/O.
func SearchURL(req SearchRequest, kind Kind) (string, error) {
	return buildSearchURL(BaseURL, req, kind)
}

func buildSearchURL(base string, req SearchRequest, kind Kind) (string, error) {
	params, err := BuildParams(req, kind)
	if err != nil {
		return "", err
	}
	return base + searchPath + "?" + params.Encode(), nil
}

// normalizeLanguage maps a language name or tag to the base language code.
// Values that are neither are sent unchanged.
func normalizeLanguage(lang string) string {
	trimmed := strings.TrimSpace(lang)
	if code, ok := languageCodes[strings.ToLower(trimmed)]; ok {
		return code
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return trimmed
	}
	base, conf := tag.Base()
	if conf == language.No {
		return trimmed
	}
	return base.String()
}

func normalizeRegion(region string) string {
	if code, ok := regionCodes[strings.ToLower(strings.TrimSpace(region))]; ok {
		return code
	}
	return region
}
