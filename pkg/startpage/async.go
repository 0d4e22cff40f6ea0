package startpage

import "context"

// Future is the pending result of an AsyncClient call
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

func goFuture[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.value, f.err = fn(ctx)
	}()
	return f
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the call completes or ctx is done. A completed call
// always yields its result, even when ctx is already done. Giving up through
// ctx does not cancel the call itself; cancel the context passed to the
// AsyncClient method for that.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	default:
	}

	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		select {
		case <-f.done:
			return f.value, f.err
		default:
		}
		var zero T
		return zero, ctx.Err()
	}
}

// dispatch queues a place at the client's delay gate before the call starts,
// so calls reach Startpage in the order they were dispatched.
func dispatch[T any](ctx context.Context, a *AsyncClient, fn func(context.Context) (T, error)) *Future[T] {
	tk := a.client.transport.Limiter().reserve()
	return goFuture(withTicket(ctx, tk), func(ctx context.Context) (T, error) {
		defer tk.cancel()
		return fn(ctx)
	})
}

// AsyncClient exposes the Client operations as Futures. Calls still pass
// through the client's delay gate one at a time, in dispatch order.
type AsyncClient struct {
	client *Client
}

func (a *AsyncClient) Search(ctx context.Context, req SearchRequest) *Future[*Response] {
	return a.SearchKind(ctx, KindWeb, req)
}

func (a *AsyncClient) Images(ctx context.Context, req SearchRequest) *Future[*Response] {
	return a.SearchKind(ctx, KindImages, req)
}

func (a *AsyncClient) Videos(ctx context.Context, req SearchRequest) *Future[*Response] {
	return a.SearchKind(ctx, KindVideos, req)
}

func (a *AsyncClient) News(ctx context.Context, req SearchRequest) *Future[*Response] {
	return a.SearchKind(ctx, KindNews, req)
}

func (a *AsyncClient) Places(ctx context.Context, req SearchRequest) *Future[*Response] {
	return a.SearchKind(ctx, KindPlaces, req)
}

func (a *AsyncClient) SearchKind(ctx context.Context, kind Kind, req SearchRequest) *Future[*Response] {
	return dispatch(ctx, a, func(ctx context.Context) (*Response, error) {
		return a.client.SearchKind(ctx, kind, req)
	})
}

func (a *AsyncClient) AdvancedSearch(ctx context.Context, req SearchRequest, advanced RawParams) *Future[*Response] {
	return dispatch(ctx, a, func(ctx context.Context) (*Response, error) {
		return a.client.AdvancedSearch(ctx, req, advanced)
	})
}

func (a *AsyncClient) Suggestions(ctx context.Context, partial, lang string) *Future[[]string] {
	return dispatch(ctx, a, func(ctx context.Context) ([]string, error) {
		return a.client.Suggestions(ctx, partial, lang)
	})
}

func (a *AsyncClient) InstantAnswers(ctx context.Context, query, lang string, extra RawParams) *Future[*InstantAnswers] {
	return dispatch(ctx, a, func(ctx context.Context) (*InstantAnswers, error) {
		return a.client.InstantAnswers(ctx, query, lang, extra)
	})
}

// SearchURL is pure and returns immediately.
func (a *AsyncClient) SearchURL(req SearchRequest, kind Kind) (string, error) {
	return a.client.SearchURL(req, kind)
}
