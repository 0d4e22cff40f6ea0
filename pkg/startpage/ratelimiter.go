package startpage

import (
	"context"
	"sync"
	"time"
)

// DefaultDelay is the minimum gap between the end of one request and the
// start of the next on the same client.
const DefaultDelay = time.Second

// RateLimiter serializes requests made through one client. A request may
// only start once minDelay has elapsed since the previous one completed.
// Waiting requests are served in the order they queued.
type RateLimiter struct {
	mu             sync.Mutex
	minDelay       time.Duration
	lastCompletion time.Time
	busy           bool
	queue          []*ticket
}

// ticket is a place in the gate's queue. It is granted when the gate is
// handed to it and done once released or given up.
type ticket struct {
	rl      *RateLimiter
	ready   chan struct{}
	granted bool
	done    bool
}

// NewRateLimiter creates a gate with the given minimum delay. A delay <= 0
// disables spacing but requests are still serialized.
func NewRateLimiter(minDelay time.Duration) *RateLimiter {
	if minDelay < 0 {
		minDelay = 0
	}
	return &RateLimiter{minDelay: minDelay}
}

// Acquire blocks until the caller may issue a request or ctx is done.
// The returned release func MUST be called once the response has been fully
// read; it records the completion time used to space the next request.
func (r *RateLimiter) Acquire(ctx context.Context) (release func(), err error) {
	return r.reserve().wait(ctx)
}

// reserve queues a ticket without blocking.
func (r *RateLimiter) reserve() *ticket {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := &ticket{rl: r, ready: make(chan struct{})}
	if !r.busy {
		r.busy = true
		t.grant()
	} else {
		r.queue = append(r.queue, t)
	}
	return t
}

// handOff passes the gate to the oldest waiting ticket. r.mu must be held.
func (r *RateLimiter) handOff() {
	if len(r.queue) == 0 {
		r.busy = false
		return
	}
	next := r.queue[0]
	r.queue[0] = nil
	r.queue = r.queue[1:]
	next.grant()
}

// CurrentUsage returns 1 while a request holds the gate.
func (r *RateLimiter) CurrentUsage() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.busy {
		return 1
	}
	return 0
}

// QueueLength returns the number of requests waiting for the gate.
func (r *RateLimiter) QueueLength() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queue)
}

// MinDelay returns the configured spacing.
func (r *RateLimiter) MinDelay() time.Duration {
	return r.minDelay
}

func (t *ticket) grant() {
	t.granted = true
	close(t.ready)
}

// wait blocks until it is t's turn and the delay since the previous
// completion has passed. On error the ticket is given up.
func (t *ticket) wait(ctx context.Context) (release func(), err error) {
	select {
	case <-t.ready:
	case <-ctx.Done():
		t.cancel()
		return nil, ctx.Err()
	}

	r := t.rl
	r.mu.Lock()
	wait := time.Duration(0)
	if r.minDelay > 0 && !r.lastCompletion.IsZero() {
		wait = r.minDelay - time.Since(r.lastCompletion)
	}
	r.mu.Unlock()

	if wait > 0 {
		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			t.cancel()
			return nil, ctx.Err()
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.lastCompletion = time.Now()
			t.finish()
		})
	}, nil
}

// cancel gives up t without recording a completion. It is a no-op once t
// was released.
func (t *ticket) cancel() {
	t.rl.mu.Lock()
	defer t.rl.mu.Unlock()
	t.finish()
}

// finish leaves the queue or hands the gate on. rl.mu must be held.
func (t *ticket) finish() {
	if t.done {
		return
	}
	t.done = true
	if t.granted {
		t.rl.handOff()
		return
	}
	r := t.rl
	for i, q := range r.queue {
		if q == t {
			r.queue = append(r.queue[:i], r.queue[i+1:]...)
			break
		}
	}
}

type ticketKey struct{}

// ticketSlot carries a reserved ticket to the transport. The first request
// made with the context claims it.
type ticketSlot struct {
	t *ticket
}

func withTicket(ctx context.Context, t *ticket) context.Context {
	return context.WithValue(ctx, ticketKey{}, &ticketSlot{t: t})
}

// claimTicket returns the ticket reserved for r in ctx, if any is left.
func (r *RateLimiter) claimTicket(ctx context.Context) *ticket {
	slot, ok := ctx.Value(ticketKey{}).(*ticketSlot)
	if !ok || slot.t == nil || slot.t.rl != r {
		return nil
	}
	t := slot.t
	slot.t = nil
	return t
}
