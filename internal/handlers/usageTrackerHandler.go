package handlers

import (
	"context"
	"errors"
	"log"
	"sort"
	"sync"
	"time"

	"webstar/startpage-worker/pkg/startpage"
)

// Operation names tracked besides the search kinds
const (
	OperationAdvanced       = "advanced"
	OperationSuggestions    = "suggestions"
	OperationInstantAnswers = "instant_answers"
)

// Error categories reported by ErrorKind
const (
	ErrorKindConfig    = "config"
	ErrorKindRateLimit = "rate_limit"
	ErrorKindHTTP      = "http"
	ErrorKindParse     = "parse"
	ErrorKindTransport = "transport"
	ErrorKindCanceled  = "canceled"
	ErrorKindUnknown   = "unknown"
)

// ErrorKind maps an error returned by the Startpage client to its category.
// A rate limit is reported as rate_limit even though it is also an HTTP error.
func ErrorKind(err error) string {
	var (
		cfgErr   *startpage.ConfigError
		rlErr    *startpage.RateLimitError
		httpErr  *startpage.HTTPError
		parseErr *startpage.ParseError
		tErr     *startpage.TransportError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &cfgErr):
		return ErrorKindConfig
	case errors.As(err, &rlErr):
		return ErrorKindRateLimit
	case errors.As(err, &httpErr):
		return ErrorKindHTTP
	case errors.As(err, &parseErr):
		return ErrorKindParse
	case errors.Is(err, context.Canceled):
		return ErrorKindCanceled
	case errors.As(err, &tErr):
		return ErrorKindTransport
	}
	return ErrorKindUnknown
}

// OperationUsage aggregates the calls of one operation
type OperationUsage struct {
	Calls      int            `json:"calls" example:"12"`
	Failures   int            `json:"failures" example:"1"`
	ByError    map[string]int `json:"by_error,omitempty"`
	TotalMs    int64          `json:"total_ms" example:"8400"`
	LastCallAt time.Time      `json:"last_call_at"`
}

// UsageSnapshot is a point-in-time copy of the tracked usage
type UsageSnapshot struct {
	Since      time.Time                 `json:"since"`
	Operations map[string]OperationUsage `json:"operations"`
}

// UsageTrackerHandler counts Startpage calls per operation in memory
type UsageTrackerHandler struct {
	since time.Time
	ops   map[string]*OperationUsage
	mu    sync.Mutex
}

// NewUsageTrackerHandler creates a new UsageTrackerHandler
func NewUsageTrackerHandler() *UsageTrackerHandler {
	return &UsageTrackerHandler{
		since: time.Now(),
		ops:   make(map[string]*OperationUsage),
	}
}

// TrackOperationInput contains the data needed to track an operation
type TrackOperationInput struct {
	Operation string
	StartTime time.Time
	Err       error
}

// TrackOperation records one call
func (h *UsageTrackerHandler) TrackOperation(input TrackOperationInput) {
	duration := time.Since(input.StartTime)

	h.mu.Lock()
	defer h.mu.Unlock()

	op, ok := h.ops[input.Operation]
	if !ok {
		op = &OperationUsage{}
		h.ops[input.Operation] = op
	}
	op.Calls++
	op.TotalMs += duration.Milliseconds()
	op.LastCallAt = input.StartTime

	if input.Err != nil {
		kind := ErrorKind(input.Err)
		op.Failures++
		if op.ByError == nil {
			op.ByError = make(map[string]int)
		}
		op.ByError[kind]++
		log.Printf("[UsageTracker] %s failed after %dms: kind=%s", input.Operation, duration.Milliseconds(), kind)
	}
}

// Snapshot returns a copy of the counters
func (h *UsageTrackerHandler) Snapshot() UsageSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	snap := UsageSnapshot{
		Since:      h.since,
		Operations: make(map[string]OperationUsage, len(h.ops)),
	}
	for name, op := range h.ops {
		c := *op
		if op.ByError != nil {
			c.ByError = make(map[string]int, len(op.ByError))
			for k, v := range op.ByError {
				c.ByError[k] = v
			}
		}
		snap.Operations[name] = c
	}
	return snap
}

// OperationNames returns the tracked operation names in sorted order
func (s UsageSnapshot) OperationNames() []string {
	names := make([]string, 0, len(s.Operations))
	for name := range s.Operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
