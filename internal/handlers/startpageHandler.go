package handlers

import (
	"context"
	"log"
	"time"

	"webstar/startpage-worker/pkg/startpage"
)

const (
	// MaxPagesToFetch is the maximum number of pages one call will walk
	MaxPagesToFetch = 10
)

// Searcher is the subset of the Startpage client the handler needs
type Searcher interface {
	SearchKind(ctx context.Context, kind startpage.Kind, req startpage.SearchRequest) (*startpage.Response, error)
	AdvancedSearch(ctx context.Context, req startpage.SearchRequest, advanced startpage.RawParams) (*startpage.Response, error)
	SearchURL(req startpage.SearchRequest, kind startpage.Kind) (string, error)
	Suggestions(ctx context.Context, partial, lang string) ([]string, error)
	InstantAnswers(ctx context.Context, query, lang string, extra startpage.RawParams) (*startpage.InstantAnswers, error)
}

// StartpageHandler runs searches against Startpage and records usage
type StartpageHandler struct {
	client Searcher
	usage  *UsageTrackerHandler
}

// PagedResponse is the result of walking several result pages
type PagedResponse struct {
	*startpage.Response
	PagesFetched int
}

// NewStartpageHandler creates a handler over client. usage may be nil.
func NewStartpageHandler(client Searcher, usage *UsageTrackerHandler) *StartpageHandler {
	return &StartpageHandler{
		client: client,
		usage:  usage,
	}
}

// Search fetches up to pages consecutive result pages starting at req.Page.
// Later pages are only requested while the previous one advertised a next
// page. An error on the first page is returned; an error on a later page
// stops the walk and returns what was collected so far.
func (h *StartpageHandler) Search(ctx context.Context, kind startpage.Kind, req startpage.SearchRequest, pages int) (*PagedResponse, error) {
	if pages <= 0 {
		pages = 1
	} else if pages > MaxPagesToFetch {
		pages = MaxPagesToFetch
	}
	if req.Page == 0 {
		req.Page = 1
	}

	result := &PagedResponse{Response: &startpage.Response{Results: []startpage.Result{}}}
	for result.PagesFetched < pages {
		start := time.Now()
		page, err := h.client.SearchKind(ctx, kind, req)
		h.track(string(kind), start, err)
		if err != nil {
			if result.PagesFetched == 0 {
				return nil, err
			}
			log.Printf("[StartpageHandler] Stopping after %d pages: %v", result.PagesFetched, err)
			break
		}

		result.PagesFetched++
		result.Results = append(result.Results, page.Results...)
		result.HasNextPage = page.HasNextPage
		if result.TotalResults == nil {
			result.TotalResults = page.TotalResults
		}
		if !page.HasNextPage || len(page.Results) == 0 {
			break
		}
		req.Page++
	}

	log.Printf("[StartpageHandler] %s search for %q: %d results from %d pages", kind, req.Query, len(result.Results), result.PagesFetched)
	return result, nil
}

// AdvancedSearch runs a single web search with advanced parameters
func (h *StartpageHandler) AdvancedSearch(ctx context.Context, req startpage.SearchRequest, advanced startpage.RawParams) (*startpage.Response, error) {
	start := time.Now()
	resp, err := h.client.AdvancedSearch(ctx, req, advanced)
	h.track(OperationAdvanced, start, err)
	return resp, err
}

// SearchURL returns the URL a search would fetch without fetching it
func (h *StartpageHandler) SearchURL(req startpage.SearchRequest, kind startpage.Kind) (string, error) {
	return h.client.SearchURL(req, kind)
}

// Suggestions returns autocomplete suggestions for partial
func (h *StartpageHandler) Suggestions(ctx context.Context, partial, lang string) ([]string, error) {
	start := time.Now()
	list, err := h.client.Suggestions(ctx, partial, lang)
	h.track(OperationSuggestions, start, err)
	return list, err
}

// InstantAnswers returns direct answers and the knowledge panel for query
func (h *StartpageHandler) InstantAnswers(ctx context.Context, query, lang string, extra startpage.RawParams) (*startpage.InstantAnswers, error) {
	start := time.Now()
	answers, err := h.client.InstantAnswers(ctx, query, lang, extra)
	h.track(OperationInstantAnswers, start, err)
	return answers, err
}

// Usage returns a snapshot of the recorded usage, or nil when not tracked
func (h *StartpageHandler) Usage() *UsageSnapshot {
	if h.usage == nil {
		return nil
	}
	snap := h.usage.Snapshot()
	return &snap
}

func (h *StartpageHandler) track(operation string, start time.Time, err error) {
	if h.usage == nil {
		return
	}
	h.usage.TrackOperation(TrackOperationInput{
		Operation: operation,
		StartTime: start,
		Err:       err,
	})
}
