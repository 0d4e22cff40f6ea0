package controllers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"

	"webstar/startpage-worker/internal/dto"
	"webstar/startpage-worker/internal/handlers"
	"webstar/startpage-worker/pkg/startpage"

	"github.com/gin-gonic/gin"
)

// SearchService is implemented by handlers.StartpageHandler
type SearchService interface {
	Search(ctx context.Context, kind startpage.Kind, req startpage.SearchRequest, pages int) (*handlers.PagedResponse, error)
	AdvancedSearch(ctx context.Context, req startpage.SearchRequest, advanced startpage.RawParams) (*startpage.Response, error)
	SearchURL(req startpage.SearchRequest, kind startpage.Kind) (string, error)
	Suggestions(ctx context.Context, partial, lang string) ([]string, error)
	InstantAnswers(ctx context.Context, query, lang string, extra startpage.RawParams) (*startpage.InstantAnswers, error)
	Usage() *handlers.UsageSnapshot
}

// SearchController handles search-related HTTP requests
type SearchController struct {
	searchHandler SearchService
}

// NewSearchController creates a new SearchController instance
func NewSearchController(handler SearchService) *SearchController {
	return &SearchController{
		searchHandler: handler,
	}
}

// Web godoc
// @Summary      Web search
// @Description  Search Startpage and return parsed web results
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        request body dto.SearchRequest true "Search parameters"
// @Success      200 {object} dto.SearchResponse "Parsed results"
// @Failure      400 {object} dto.ErrorResponse "Bad request - validation error"
// @Failure      429 {object} dto.ErrorResponse "Startpage rate limited the request"
// @Failure      502 {object} dto.ErrorResponse "Startpage returned an error or an unreadable page"
// @Failure      504 {object} dto.ErrorResponse "Startpage did not answer in time"
// @Router       /search/web [post]
func (ctrl *SearchController) Web(c *gin.Context) {
	ctrl.search(c, startpage.KindWeb)
}

// Images godoc
// @Summary      Image search
// @Description  Search Startpage images; supports the size filter
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        request body dto.SearchRequest true "Search parameters"
// @Success      200 {object} dto.SearchResponse "Parsed results"
// @Failure      400 {object} dto.ErrorResponse "Bad request - validation error"
// @Failure      429 {object} dto.ErrorResponse "Startpage rate limited the request"
// @Failure      502 {object} dto.ErrorResponse "Startpage returned an error or an unreadable page"
// @Router       /search/images [post]
func (ctrl *SearchController) Images(c *gin.Context) {
	ctrl.search(c, startpage.KindImages)
}

// Videos godoc
// @Summary      Video search
// @Description  Search Startpage videos; supports the duration filter
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        request body dto.SearchRequest true "Search parameters"
// @Success      200 {object} dto.SearchResponse "Parsed results"
// @Failure      400 {object} dto.ErrorResponse "Bad request - validation error"
// @Failure      429 {object} dto.ErrorResponse "Startpage rate limited the request"
// @Failure      502 {object} dto.ErrorResponse "Startpage returned an error or an unreadable page"
// @Router       /search/videos [post]
func (ctrl *SearchController) Videos(c *gin.Context) {
	ctrl.search(c, startpage.KindVideos)
}

// News godoc
// @Summary      News search
// @Description  Search Startpage news
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        request body dto.SearchRequest true "Search parameters"
// @Success      200 {object} dto.SearchResponse "Parsed results"
// @Failure      400 {object} dto.ErrorResponse "Bad request - validation error"
// @Failure      429 {object} dto.ErrorResponse "Startpage rate limited the request"
// @Failure      502 {object} dto.ErrorResponse "Startpage returned an error or an unreadable page"
// @Router       /search/news [post]
func (ctrl *SearchController) News(c *gin.Context) {
	ctrl.search(c, startpage.KindNews)
}

// Places godoc
// @Summary      Places search
// @Description  Search Startpage places, optionally around latitude/longitude
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        request body dto.SearchRequest true "Search parameters"
// @Success      200 {object} dto.SearchResponse "Parsed results"
// @Failure      400 {object} dto.ErrorResponse "Bad request - validation error"
// @Failure      429 {object} dto.ErrorResponse "Startpage rate limited the request"
// @Failure      502 {object} dto.ErrorResponse "Startpage returned an error or an unreadable page"
// @Router       /search/places [post]
func (ctrl *SearchController) Places(c *gin.Context) {
	ctrl.search(c, startpage.KindPlaces)
}

func (ctrl *SearchController) search(c *gin.Context, kind startpage.Kind) {
	var req dto.SearchRequest

	// Bind and validate JSON request body
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Kind:  handlers.ErrorKindConfig,
		})
		return
	}

	result, err := ctrl.searchHandler.Search(c.Request.Context(), kind, toSearchRequest(req), req.Pages)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := dto.NewSearchResponse(kind, result.Response)
	resp.PagesFetched = result.PagesFetched
	c.JSON(http.StatusOK, resp)
}

// AdvancedSearch godoc
// @Summary      Advanced web search
// @Description  Web search with named advanced parameters (search_source, time_filter, ...) translated to Startpage keys
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        request body dto.AdvancedSearchRequest true "Search and advanced parameters"
// @Success      200 {object} dto.SearchResponse "Parsed results"
// @Failure      400 {object} dto.ErrorResponse "Bad request - validation error"
// @Failure      429 {object} dto.ErrorResponse "Startpage rate limited the request"
// @Failure      502 {object} dto.ErrorResponse "Startpage returned an error or an unreadable page"
// @Router       /search/advanced [post]
func (ctrl *SearchController) AdvancedSearch(c *gin.Context) {
	var req dto.AdvancedSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Kind: handlers.ErrorKindConfig})
		return
	}

	result, err := ctrl.searchHandler.AdvancedSearch(c.Request.Context(), toSearchRequest(req.SearchRequest), startpage.RawParams(req.Advanced))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSearchResponse(startpage.KindWeb, result))
}

// SearchURL godoc
// @Summary      Build a search URL
// @Description  Return the Startpage URL a search would fetch, without fetching it
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        request body dto.SearchURLRequest true "Search parameters and kind"
// @Success      200 {object} dto.URLResponse "Search URL"
// @Failure      400 {object} dto.ErrorResponse "Bad request - validation error"
// @Router       /search/url [post]
func (ctrl *SearchController) SearchURL(c *gin.Context) {
	var req dto.SearchURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Kind: handlers.ErrorKindConfig})
		return
	}

	kind := startpage.KindWeb
	if req.Kind != "" {
		var err error
		if kind, err = startpage.ParseKind(req.Kind); err != nil {
			writeError(c, err)
			return
		}
	}

	u, err := ctrl.searchHandler.SearchURL(toSearchRequest(req.SearchRequest), kind)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.URLResponse{URL: u})
}

// Suggestions godoc
// @Summary      Autocomplete suggestions
// @Description  Return up to 10 Startpage suggestions for a partial query
// @Tags         search
// @Produce      json
// @Param        q query string true "Partial query"
// @Param        language query string false "Language name or code" default(en)
// @Success      200 {object} dto.SuggestionsResponse "Suggestions"
// @Failure      429 {object} dto.ErrorResponse "Startpage rate limited the request"
// @Failure      502 {object} dto.ErrorResponse "Startpage returned an error"
// @Router       /suggestions [get]
func (ctrl *SearchController) Suggestions(c *gin.Context) {
	partial := c.Query("q")
	list, err := ctrl.searchHandler.Suggestions(c.Request.Context(), partial, c.Query("language"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuggestionsResponse{Query: partial, Suggestions: list})
}

// InstantAnswers godoc
// @Summary      Instant answers
// @Description  Return the direct answer and knowledge panel Startpage shows for a query
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        request body dto.InstantAnswersRequest true "Query"
// @Success      200 {object} startpage.InstantAnswers "Instant answer and knowledge panel"
// @Failure      400 {object} dto.ErrorResponse "Bad request - validation error"
// @Failure      429 {object} dto.ErrorResponse "Startpage rate limited the request"
// @Failure      502 {object} dto.ErrorResponse "Startpage returned an error"
// @Router       /instant-answers [post]
func (ctrl *SearchController) InstantAnswers(c *gin.Context) {
	var req dto.InstantAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Kind: handlers.ErrorKindConfig})
		return
	}

	answers, err := ctrl.searchHandler.InstantAnswers(c.Request.Context(), req.Query, req.Language, startpage.RawParams(req.Extra))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, answers)
}

// Usage godoc
// @Summary      Usage counters
// @Description  Calls and failures per operation since the service started
// @Tags         monitoring
// @Produce      json
// @Success      200 {object} handlers.UsageSnapshot "Usage counters"
// @Failure      404 {object} dto.ErrorResponse "Usage tracking disabled"
// @Router       /usage [get]
func (ctrl *SearchController) Usage(c *gin.Context) {
	snap := ctrl.searchHandler.Usage()
	if snap == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "usage tracking is disabled"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// toSearchRequest converts the body, picking a language from the region when
// none was given
func toSearchRequest(req dto.SearchRequest) startpage.SearchRequest {
	out := req.ToSearchRequest()
	out.Language = handlers.ResolveLanguage(req.Language, req.Region)
	return out
}

// writeError maps a Startpage client error onto a status code
func writeError(c *gin.Context, err error) {
	kind := handlers.ErrorKind(err)
	status := http.StatusInternalServerError

	switch kind {
	case handlers.ErrorKindConfig:
		status = http.StatusBadRequest
	case handlers.ErrorKindRateLimit:
		status = http.StatusTooManyRequests
		var rl *startpage.RateLimitError
		if errors.As(err, &rl) && rl.RetryAfter > 0 {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(rl.RetryAfter.Seconds()))))
		}
	case handlers.ErrorKindHTTP, handlers.ErrorKindParse:
		status = http.StatusBadGateway
	case handlers.ErrorKindTransport:
		status = http.StatusBadGateway
		var tErr *startpage.TransportError
		if errors.As(err, &tErr) && tErr.Timeout() {
			status = http.StatusGatewayTimeout
		}
	case handlers.ErrorKindCanceled:
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, dto.ErrorResponse{Error: err.Error(), Kind: kind})
}
