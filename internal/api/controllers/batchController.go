package controllers

import (
	"context"
	"log"
	"net/http"

	"webstar/startpage-worker/internal/dto"
	"webstar/startpage-worker/internal/handlers"
	"webstar/startpage-worker/internal/services"
	"webstar/startpage-worker/pkg/startpage"

	"github.com/gin-gonic/gin"
)

// BatchService is implemented by services.BatchProcessor
type BatchService interface {
	ProcessBatch(ctx context.Context, items []services.BatchItem) []dto.BatchItemResult
}

// BatchController handles batch search requests
type BatchController struct {
	token     string
	processor BatchService
}

// NewBatchController creates a new BatchController instance. An empty token
// disables the Authorization check.
func NewBatchController(token string, processor BatchService) *BatchController {
	return &BatchController{
		token:     token,
		processor: processor,
	}
}

// HandleBatch handles POST /search/batch
// @Summary Batch search
// @Description Runs up to 20 searches one after another through the shared rate limited client
// @Tags search
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token, required when the server has a batch token configured"
// @Param request body dto.BatchRequest true "Searches to run"
// @Success 200 {object} dto.BatchResponse "Per-search results, in request order"
// @Failure 400 {object} dto.ErrorResponse "Bad request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /search/batch [post]
func (c *BatchController) HandleBatch(ctx *gin.Context) {
	if c.token != "" && ctx.GetHeader("Authorization") != "Bearer "+c.token {
		log.Printf("[BatchController] Unauthorized request: invalid Authorization header")
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Unauthorized: invalid batch token",
		})
		return
	}

	var req dto.BatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Printf("[BatchController] Failed to parse batch payload: %v", err)
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Kind:  handlers.ErrorKindConfig,
		})
		return
	}
	if len(req.Searches) > services.MaxBatchSize {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "too many searches in one batch",
			Kind:  handlers.ErrorKindConfig,
		})
		return
	}

	items := make([]services.BatchItem, 0, len(req.Searches))
	for _, s := range req.Searches {
		kind := startpage.KindWeb
		if s.Kind != "" {
			kind = startpage.Kind(s.Kind)
		}
		items = append(items, services.BatchItem{Kind: kind, Request: toSearchRequest(s.SearchRequest)})
	}

	log.Printf("[BatchController] Batch received: searches=%d", len(items))
	results := c.processor.ProcessBatch(ctx.Request.Context(), items)
	ctx.JSON(http.StatusOK, dto.NewBatchResponse(results))
}
