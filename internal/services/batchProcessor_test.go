package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"webstar/startpage-worker/internal/handlers"
	"webstar/startpage-worker/pkg/startpage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultsPage = `<html><body><div id="main_results">
<div class="w-gl-result"><h2><a href="https://example.com/one">First result</a></h2><p class="snippet">One</p></div>
<div class="w-gl-result"><h2><a href="https://example.com/two">Second result</a></h2><p class="snippet">Two</p></div>
</div></body></html>`

// newTestAsyncClient serves resultsPage for every query except "limited",
// which is answered with 429.
func newTestAsyncClient(t *testing.T, delay time.Duration) *startpage.AsyncClient {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("query") == "limited" {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(resultsPage))
	}))
	t.Cleanup(server.Close)

	client, err := startpage.New(startpage.Options{BaseURL: server.URL, Delay: delay, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return client.Async()
}

func TestNewBatchProcessor(t *testing.T) {
	processor := NewBatchProcessor(newTestAsyncClient(t, -1), nil)
	assert.NotNil(t, processor)
}

func TestProcessBatch_KeepsOrderAndIsolatesFailures(t *testing.T) {
	usage := handlers.NewUsageTrackerHandler()
	processor := NewBatchProcessor(newTestAsyncClient(t, -1), usage)

	results := processor.ProcessBatch(context.Background(), []BatchItem{
		{Kind: startpage.KindWeb, Request: startpage.SearchRequest{Query: "golang"}},
		{Kind: startpage.KindWeb, Request: startpage.SearchRequest{Query: "limited"}},
		{Kind: startpage.KindWeb, Request: startpage.SearchRequest{Query: ""}},
		{Kind: startpage.KindWeb, Request: startpage.SearchRequest{Query: "rust"}},
	})
	require.Len(t, results, 4)

	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, "web", r.Kind)
	}

	require.NotNil(t, results[0].Response)
	assert.Len(t, results[0].Response.Results, 2)
	assert.Nil(t, results[0].Error)

	require.NotNil(t, results[1].Error)
	assert.Equal(t, handlers.ErrorKindRateLimit, results[1].Error.Kind)
	assert.Nil(t, results[1].Response)

	require.NotNil(t, results[2].Error)
	assert.Equal(t, handlers.ErrorKindConfig, results[2].Error.Kind)

	require.NotNil(t, results[3].Response)
	assert.Equal(t, "rust", results[3].Query)

	web := usage.Snapshot().Operations["web"]
	assert.Equal(t, 4, web.Calls)
	assert.Equal(t, 2, web.Failures)
}

func TestProcessBatch_RespectsClientDelay(t *testing.T) {
	delay := 150 * time.Millisecond
	processor := NewBatchProcessor(newTestAsyncClient(t, delay), nil)

	start := time.Now()
	results := processor.ProcessBatch(context.Background(), []BatchItem{
		{Kind: startpage.KindWeb, Request: startpage.SearchRequest{Query: "a"}},
		{Kind: startpage.KindWeb, Request: startpage.SearchRequest{Query: "b"}},
		{Kind: startpage.KindWeb, Request: startpage.SearchRequest{Query: "c"}},
	})

	for _, r := range results {
		assert.Nil(t, r.Error)
	}
	assert.GreaterOrEqual(t, time.Since(start), 2*delay)
}

func TestProcessBatch_CanceledContext(t *testing.T) {
	processor := NewBatchProcessor(newTestAsyncClient(t, time.Hour), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(100*time.Millisecond, cancel)

	results := processor.ProcessBatch(ctx, []BatchItem{
		{Kind: startpage.KindWeb, Request: startpage.SearchRequest{Query: "a"}},
		{Kind: startpage.KindWeb, Request: startpage.SearchRequest{Query: "b"}},
	})
	require.Len(t, results, 2)

	// the first search gets through the gate, the second waits out the hour
	// and is abandoned when the context ends
	require.Nil(t, results[0].Error)
	require.NotNil(t, results[0].Response)
	require.NotNil(t, results[1].Error)
	assert.Equal(t, handlers.ErrorKindCanceled, results[1].Error.Kind)
}

func TestProcessBatch_SendsInRequestOrder(t *testing.T) {
	var mu sync.Mutex
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.URL.Query().Get("query"))
		mu.Unlock()
		_, _ = w.Write([]byte(resultsPage))
	}))
	defer server.Close()

	client, err := startpage.New(startpage.Options{BaseURL: server.URL, Delay: -1, Timeout: 5 * time.Second})
	require.NoError(t, err)
	processor := NewBatchProcessor(client.Async(), nil)

	for run := 0; run < 5; run++ {
		mu.Lock()
		seen = nil
		mu.Unlock()

		processor.ProcessBatch(context.Background(), []BatchItem{
			{Kind: startpage.KindWeb, Request: startpage.SearchRequest{Query: "a"}},
			{Kind: startpage.KindNews, Request: startpage.SearchRequest{Query: "b"}},
			{Kind: startpage.KindWeb, Request: startpage.SearchRequest{Query: "c"}},
			{Kind: startpage.KindVideos, Request: startpage.SearchRequest{Query: "d"}},
		})

		mu.Lock()
		assert.Equal(t, []string{"a", "b", "c", "d"}, seen, "run %d", run)
		mu.Unlock()
	}
}

func TestProcessBatch_TracksLatencyFromDispatch(t *testing.T) {
	delay := 100 * time.Millisecond
	usage := handlers.NewUsageTrackerHandler()
	processor := NewBatchProcessor(newTestAsyncClient(t, delay), usage)

	processor.ProcessBatch(context.Background(), []BatchItem{
		{Kind: startpage.KindWeb, Request: startpage.SearchRequest{Query: "a"}},
		{Kind: startpage.KindWeb, Request: startpage.SearchRequest{Query: "b"}},
		{Kind: startpage.KindWeb, Request: startpage.SearchRequest{Query: "c"}},
	})

	// the second search waits one delay and the third two, counted from
	// when the batch dispatched them
	web := usage.Snapshot().Operations["web"]
	assert.Equal(t, 3, web.Calls)
	assert.GreaterOrEqual(t, web.TotalMs, int64(280))
}
