package dto

import (
	"webstar/startpage-worker/pkg/startpage"
)

// SearchRequest represents the incoming search request body
// @Description Search parameters shared by every result kind
type SearchRequest struct {
	// Search query string
	Query string `json:"query" binding:"required" example:"privacy focused search engine"`
	// Language name or code (default: en)
	Language string `json:"language" example:"en"`
	// Region code (default: all)
	Region string `json:"region" example:"us"`
	// Content filtering level (default: moderate)
	SafeSearch string `json:"safe_search" binding:"omitempty,oneof=strict moderate off" example:"moderate"`
	// Restrict results to a recent period (default: any)
	TimeFilter string `json:"time_filter" binding:"omitempty,oneof=any day week month year" example:"week"`
	// Result page, starting at 1
	Page int `json:"page" binding:"omitempty,min=1" example:"1"`
	// Results per page (default: 10, images: 20)
	ResultsPerPage int `json:"results_per_page" binding:"omitempty,min=1" example:"10"`
	// Image size filter, images only
	Size string `json:"size" binding:"omitempty,oneof=any small medium large wallpaper" example:"large"`
	// Video duration filter, videos only
	Duration string `json:"duration" binding:"omitempty,oneof=any short medium long" example:"short"`
	// Latitude for place searches
	Latitude *float64 `json:"latitude" binding:"omitempty,min=-90,max=90" example:"52.52"`
	// Longitude for place searches
	Longitude *float64 `json:"longitude" binding:"omitempty,min=-180,max=180" example:"13.405"`
	// Search radius in meters for place searches
	Radius *int `json:"radius" binding:"omitempty,min=1" example:"1000"`
	// Extra provider parameters sent as given
	Extra map[string]string `json:"extra"`
	// Number of consecutive pages to fetch (default: 1, max: 10)
	Pages int `json:"pages" binding:"omitempty,min=1,max=10" example:"1"`
}

// ToSearchRequest converts the body into a library request
func (r SearchRequest) ToSearchRequest() startpage.SearchRequest {
	return startpage.SearchRequest{
		Query:          r.Query,
		Language:       r.Language,
		Region:         r.Region,
		SafeSearch:     startpage.SafeSearch(r.SafeSearch),
		TimeFilter:     startpage.TimeFilter(r.TimeFilter),
		Page:           r.Page,
		ResultsPerPage: r.ResultsPerPage,
		Size:           startpage.ImageSize(r.Size),
		Duration:       startpage.VideoDuration(r.Duration),
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		Radius:         r.Radius,
		Extra:          startpage.RawParams(r.Extra),
	}
}

// AdvancedSearchRequest is a web search with named advanced parameters
// @Description Web search plus advanced parameters such as search_source or time_filter
type AdvancedSearchRequest struct {
	SearchRequest
	// Advanced parameters by name; values override extra
	Advanced map[string]string `json:"advanced" example:"search_source:pwa"`
}

// SearchURLRequest asks for the URL a search would fetch
// @Description Search parameters plus the result kind
type SearchURLRequest struct {
	SearchRequest
	// Result kind (default: web)
	Kind string `json:"kind" binding:"omitempty,oneof=web images videos news places" example:"news"`
}

// InstantAnswersRequest represents an instant answers lookup
// @Description Query for direct answers and knowledge panels
type InstantAnswersRequest struct {
	// Query string
	Query string `json:"query" binding:"required" example:"what is the capital of france"`
	// Language name or code (default: en)
	Language string `json:"language" example:"en"`
	// Extra provider parameters
	Extra map[string]string `json:"extra"`
}

// SearchResponse wraps the results of one search page
// @Description One page of parsed results
type SearchResponse struct {
	Kind         string             `json:"kind" example:"web"`
	Results      []startpage.Result `json:"results" swaggertype:"array,object"`
	TotalResults *int               `json:"total_results" example:"1230000"`
	HasNextPage  bool               `json:"has_next_page" example:"true"`
	// Number of pages fetched to build this response
	PagesFetched int `json:"pages_fetched,omitempty" example:"1"`
}

// NewSearchResponse builds the response body for a search of kind
func NewSearchResponse(kind startpage.Kind, resp *startpage.Response) SearchResponse {
	results := resp.Results
	if results == nil {
		results = []startpage.Result{}
	}
	return SearchResponse{
		Kind:         string(kind),
		Results:      results,
		TotalResults: resp.TotalResults,
		HasNextPage:  resp.HasNextPage,
	}
}

// SuggestionsResponse lists autocomplete suggestions
// @Description Autocomplete suggestions, at most 10
type SuggestionsResponse struct {
	Query       string   `json:"query" example:"pyth"`
	Suggestions []string `json:"suggestions" example:"python,python 3"`
}

// URLResponse carries a search URL
// @Description Fully qualified search URL
type URLResponse struct {
	URL string `json:"url" example:"https://www.startpage.com/sp/search?cat=web&query=golang"`
}

// ErrorResponse represents an error response
// @Description Error response returned when request fails
type ErrorResponse struct {
	// Error message describing what went wrong
	Error string `json:"error" example:"startpage: invalid query: query cannot be empty"`
	// Error category: config, rate_limit, http, transport or parse
	Kind string `json:"kind,omitempty" example:"config"`
}

// BatchItemRequest is one search of a batch
// @Description A search and the kind it runs as
type BatchItemRequest struct {
	SearchRequest
	// Result kind (default: web)
	Kind string `json:"kind" binding:"omitempty,oneof=web images videos news places" example:"web"`
}

// BatchRequest runs several searches in one call
// @Description Up to 20 searches executed one after another
type BatchRequest struct {
	Searches []BatchItemRequest `json:"searches" binding:"required,min=1,max=20,dive"`
}

// BatchItemResult is the outcome of one batch search
// @Description Either a response or an error for one search
type BatchItemResult struct {
	Index    int             `json:"index" example:"0"`
	Kind     string          `json:"kind" example:"web"`
	Query    string          `json:"query" example:"golang"`
	Response *SearchResponse `json:"response,omitempty"`
	Error    *ErrorResponse  `json:"error,omitempty"`
}

// BatchResponse lists the batch outcomes in request order
// @Description Results of a batch search
type BatchResponse struct {
	Results   []BatchItemResult `json:"results"`
	Succeeded int               `json:"succeeded" example:"2"`
	Failed    int               `json:"failed" example:"0"`
}

// NewBatchResponse counts the outcomes of results
func NewBatchResponse(results []BatchItemResult) BatchResponse {
	resp := BatchResponse{Results: results}
	for _, r := range results {
		if r.Error != nil {
			resp.Failed++
		} else {
			resp.Succeeded++
		}
	}
	return resp
}
