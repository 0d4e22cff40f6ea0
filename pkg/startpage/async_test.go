package startpage

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsyncClient_Search(t *testing.T) {
	fake := &fakeStartpage{body: webPage}
	client := newTestClient(t, fake, -1)
	async := client.Async()

	future := async.Search(context.Background(), SearchRequest{Query: "golang"})
	select {
	case <-future.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("future did not complete")
	}

	resp, err := future.Wait(context.Background())
	require.NoError(t, err)
	assert.Len(t, ResultsOf[WebResult](resp), 2)
}

func TestAsyncClient_SameErrorsAsBlocking(t *testing.T) {
	fake := &fakeStartpage{body: webPage}
	async := newTestClient(t, fake, -1).Async()
	ctx := context.Background()

	_, err := async.News(ctx, SearchRequest{}).Wait(ctx)
	var ce *ConfigError
	assert.True(t, errors.As(err, &ce))

	_, err = async.InstantAnswers(ctx, " ", "en", nil).Wait(ctx)
	assert.True(t, errors.As(err, &ce))

	got, err := async.Suggestions(ctx, "", "en").Wait(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.Equal(t, int32(0), fake.hits.Load())
}

func TestAsyncClient_CallsShareTheGate(t *testing.T) {
	var inFlight, maxInFlight atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		for {
			old := maxInFlight.Load()
			if n <= old || maxInFlight.CompareAndSwap(old, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		inFlight.Add(-1)
		_, _ = w.Write([]byte(webPage))
	}))
	defer server.Close()

	client, err := New(Options{BaseURL: server.URL, Delay: -1})
	require.NoError(t, err)
	async := client.Async()
	ctx := context.Background()

	futures := []*Future[*Response]{
		async.Search(ctx, SearchRequest{Query: "a"}),
		async.Videos(ctx, SearchRequest{Query: "b"}),
		async.AdvancedSearch(ctx, SearchRequest{Query: "c"}, RawParams{"search_source": "x"}),
	}
	// a blocking call in between still waits its turn
	_, err = client.Search(ctx, SearchRequest{Query: "d"})
	require.NoError(t, err)

	for _, f := range futures {
		_, err := f.Wait(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), maxInFlight.Load())
}

func TestFuture_WaitHonoursContext(t *testing.T) {
	fake := &fakeStartpage{body: webPage, delay: 500 * time.Millisecond}
	async := newTestClient(t, fake, -1).Async()

	future := async.Search(context.Background(), SearchRequest{Query: "slow"})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := future.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	resp, err := future.Wait(context.Background())
	require.NoError(t, err, "abandoning a wait does not cancel the call")
	assert.NotNil(t, resp)
}

func TestAsyncClient_SearchURL(t *testing.T) {
	client := newTestClient(t, &fakeStartpage{}, -1)
	want, err := client.SearchURL(SearchRequest{Query: "x"}, KindPlaces)
	require.NoError(t, err)
	got, err := client.Async().SearchURL(SearchRequest{Query: "x"}, KindPlaces)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFuture_CompletedResultWinsOverDoneContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for i := 0; i < 1000; i++ {
		f := goFuture(context.Background(), func(context.Context) (int, error) {
			return 42, nil
		})
		<-f.Done()

		got, err := f.Wait(ctx)
		require.NoError(t, err, "iteration %d", i)
		require.Equal(t, 42, got)
	}
}

func TestAsyncClient_RequestsFollowDispatchOrder(t *testing.T) {
	fake := &fakeStartpage{body: webPage}
	async := newTestClient(t, fake, -1).Async()
	ctx := context.Background()

	queries := []string{"a", "b", "c", "d", "e", "f"}
	futures := make([]*Future[*Response], len(queries))
	for i, q := range queries {
		futures[i] = async.Search(ctx, SearchRequest{Query: q})
	}
	for _, f := range futures {
		_, err := f.Wait(ctx)
		require.NoError(t, err)
	}

	fake.mu.Lock()
	defer fake.mu.Unlock()
	got := make([]string, 0, len(fake.requests))
	for _, r := range fake.requests {
		got = append(got, r.URL.Query().Get("query"))
	}
	assert.Equal(t, queries, got)
}

func TestAsyncClient_FailedCallFreesItsPlace(t *testing.T) {
	fake := &fakeStartpage{body: webPage}
	client := newTestClient(t, fake, -1)
	async := client.Async()
	ctx := context.Background()

	invalid := async.Search(ctx, SearchRequest{})
	valid := async.Search(ctx, SearchRequest{Query: "ok"})

	_, err := invalid.Wait(ctx)
	var ce *ConfigError
	require.True(t, errors.As(err, &ce))

	waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err = valid.Wait(waitCtx)
	require.NoError(t, err)
	assert.Equal(t, 0, client.transport.Limiter().CurrentUsage())
}
