package services

import (
	"context"
	"log"
	"time"

	"webstar/startpage-worker/internal/dto"
	"webstar/startpage-worker/internal/handlers"
	"webstar/startpage-worker/pkg/startpage"
)

// MaxBatchSize caps the number of searches in one batch
const MaxBatchSize = 20

// AsyncSearcher dispatches searches without blocking the caller
type AsyncSearcher interface {
	SearchKind(ctx context.Context, kind startpage.Kind, req startpage.SearchRequest) *startpage.Future[*startpage.Response]
}

// BatchProcessor runs several searches through one client. All searches are
// dispatched up front; the client's delay gate still serializes them and
// sends them in request order.
type BatchProcessor struct {
	searcher AsyncSearcher
	usage    *handlers.UsageTrackerHandler
}

// NewBatchProcessor creates a new BatchProcessor instance. usage may be nil.
func NewBatchProcessor(searcher AsyncSearcher, usage *handlers.UsageTrackerHandler) *BatchProcessor {
	return &BatchProcessor{
		searcher: searcher,
		usage:    usage,
	}
}

// BatchItem is one search of a batch
type BatchItem struct {
	Kind    startpage.Kind
	Request startpage.SearchRequest
}

// ProcessBatch runs every item and returns one result per item, in order.
// A failing item does not stop the others. When ctx ends, items that have
// not completed are reported with the context error.
func (p *BatchProcessor) ProcessBatch(ctx context.Context, items []BatchItem) []dto.BatchItemResult {
	log.Printf("[BatchProcessor] Starting batch of %d searches", len(items))
	started := time.Now()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// items reach the client's gate in dispatch order
	futures := make([]*startpage.Future[*startpage.Response], len(items))
	dispatched := make([]time.Time, len(items))
	for i, item := range items {
		dispatched[i] = time.Now()
		futures[i] = p.searcher.SearchKind(ctx, item.Kind, item.Request)
	}

	results := make([]dto.BatchItemResult, len(items))
	failed := 0
	for i, future := range futures {
		item := items[i]
		resp, err := future.Wait(ctx)
		p.track(string(item.Kind), dispatched[i], err)

		results[i] = dto.BatchItemResult{
			Index: i,
			Kind:  string(item.Kind),
			Query: item.Request.Query,
		}
		if err != nil {
			failed++
			log.Printf("[BatchProcessor] Item %d (%s %q) failed: %v", i, item.Kind, item.Request.Query, err)
			results[i].Error = &dto.ErrorResponse{Error: err.Error(), Kind: handlers.ErrorKind(err)}
			continue
		}
		page := dto.NewSearchResponse(item.Kind, resp)
		results[i].Response = &page
	}

	log.Printf("[BatchProcessor] Batch finished: total=%d, failed=%d, took=%s", len(items), failed, time.Since(started))
	return results
}

func (p *BatchProcessor) track(operation string, start time.Time, err error) {
	if p.usage == nil {
		return
	}
	p.usage.TrackOperation(handlers.TrackOperationInput{
		Operation: operation,
		StartTime: start,
		Err:       err,
	})
}
