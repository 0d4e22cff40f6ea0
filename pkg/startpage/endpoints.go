package startpage

import (
	"fmt"
	"maps"
	"strings"
)

const (
	// BaseURL is the Startpage origin all requests go to
	BaseURL = "https://www.startpage.com"

	searchPath      = "/sp/search"
	suggestionsPath = "/suggestions"
)

// defaultHeaders mimics a desktop browser navigation. Accept-Encoding is left
// to net/http so compressed bodies are decoded transparently.
var defaultHeaders = map[string]string{
	"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.5",
	"DNT":                       "1",
	"Upgrade-Insecure-Requests": "1",
	"Sec-Fetch-Dest":            "document",
	"Sec-Fetch-Mode":            "navigate",
	"Sec-Fetch-Site":            "none",
	"Cache-Control":             "max-age=0",
}

// Kind selects which result vertical is searched and how the page is parsed
type Kind string

const (
	KindWeb    Kind = "web"
	KindImages Kind = "images"
	KindVideos Kind = "videos"
	KindNews   Kind = "news"
	KindPlaces Kind = "places"
)

// Kinds lists every searchable kind in a stable order
var Kinds = []Kind{KindWeb, KindImages, KindVideos, KindNews, KindPlaces}

// categories maps a kind to the "cat" value Startpage expects
var categories = map[Kind]string{
	KindWeb:    "web",
	KindImages: "pics",
	KindVideos: "video",
	KindNews:   "news",
	KindPlaces: "map",
}

// Category returns the provider category for the kind.
func (k Kind) Category() (string, bool) {
	cat, ok := categories[k]
	return cat, ok
}

// ParseKind accepts a kind name case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := categories[k]; !ok {
		return "", &ConfigError{Field: "kind", Message: fmt.Sprintf("unknown search kind %q", s)}
	}
	return k, nil
}

// SafeSearch is the content filtering level
type SafeSearch string

const (
	SafeSearchOff      SafeSearch = "off"
	SafeSearchModerate SafeSearch = "moderate"
	SafeSearchStrict   SafeSearch = "strict"
)

var safeSearchLevels = map[SafeSearch]string{
	SafeSearchStrict:   "1",
	SafeSearchModerate: "0",
	SafeSearchOff:      "2",
}

// TimeFilter restricts results to a recent period
type TimeFilter string

const (
	TimeAny   TimeFilter = "any"
	TimeDay   TimeFilter = "day"
	TimeWeek  TimeFilter = "week"
	TimeMonth TimeFilter = "month"
	TimeYear  TimeFilter = "year"
)

var timeFilters = map[TimeFilter]string{
	TimeAny:   "",
	TimeDay:   "d",
	TimeWeek:  "w",
	TimeMonth: "m",
	TimeYear:  "y",
}

// ImageSize filters image results
type ImageSize string

const (
	SizeAny       ImageSize = "any"
	SizeSmall     ImageSize = "small"
	SizeMedium    ImageSize = "medium"
	SizeLarge     ImageSize = "large"
	SizeWallpaper ImageSize = "wallpaper"
)

var imageSizes = map[ImageSize]string{
	SizeAny:       "",
	SizeSmall:     "s",
	SizeMedium:    "m",
	SizeLarge:     "l",
	SizeWallpaper: "w",
}

// VideoDuration filters video results
type VideoDuration string

const (
	DurationAny    VideoDuration = "any"
	DurationShort  VideoDuration = "short"
	DurationMedium VideoDuration = "medium"
	DurationLong   VideoDuration = "long"
)

var videoDurations = map[VideoDuration]string{
	DurationAny:    "",
	DurationShort:  "s",
	DurationMedium: "m",
	DurationLong:   "l",
}

// languageCodes maps human language names to the codes Startpage uses
var languageCodes = map[string]string{
	"english":    "en",
	"german":     "de",
	"french":     "fr",
	"spanish":    "es",
	"italian":    "it",
	"dutch":      "nl",
	"portuguese": "pt",
	"russian":    "ru",
	"chinese":    "zh",
	"japanese":   "ja",
}

var regionCodes = map[string]string{
	"all": "all",
	"us":  "us",
	"uk":  "uk",
	"ca":  "ca",
	"au":  "au",
	"de":  "de",
	"fr":  "fr",
	"es":  "es",
	"it":  "it",
	"nl":  "nl",
}

// advancedParams maps readable parameter names to Startpage query keys.
// It is never mutated after init.
var advancedParams = map[string]string{
	"search_source":                    "sc",
	"search_results":                   "sr",
	"search_expander_api_path":         "sxap",
	"query_instant_mode_search_number": "qimsn",
	"time_filter":                      "with_date",
	"ad_block_plus":                    "abp",
	"search_type_modifier":             "t",
}

// AdvancedParam returns the provider key for a readable parameter name.
func AdvancedParam(name string) (string, bool) {
	key, ok := advancedParams[name]
	return key, ok
}

// AdvancedParams returns a copy of the readable-name to provider-key table.
func AdvancedParams() map[string]string {
	return maps.Clone(advancedParams)
}

// providerKey rewrites a readable key through the advanced table, passing
// unknown keys through unchanged.
func providerKey(name string) string {
	if key, ok := advancedParams[name]; ok {
		return key
	}
	return name
}
