package handlers

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"webstar/startpage-worker/pkg/startpage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil", err: nil, expected: ""},
		{name: "config", err: &startpage.ConfigError{Field: "query", Message: "empty"}, expected: ErrorKindConfig},
		{
			name:     "rate limit is not reported as http",
			err:      &startpage.RateLimitError{HTTPError: startpage.HTTPError{StatusCode: 429, Message: "Too Many Requests"}},
			expected: ErrorKindRateLimit,
		},
		{name: "http", err: &startpage.HTTPError{StatusCode: 500, Message: "Internal Server Error"}, expected: ErrorKindHTTP},
		{name: "parse", err: &startpage.ParseError{Kind: startpage.KindWeb, Message: "no anchors"}, expected: ErrorKindParse},
		{
			name:     "transport",
			err:      &startpage.TransportError{Method: "GET", URL: "https://www.startpage.com", Err: errors.New("connection refused")},
			expected: ErrorKindTransport,
		},
		{
			name:     "canceled transport",
			err:      &startpage.TransportError{Method: "GET", URL: "https://www.startpage.com", Err: context.Canceled},
			expected: ErrorKindCanceled,
		},
		{
			name:     "wrapped http",
			err:      fmt.Errorf("batch item 2: %w", &startpage.HTTPError{StatusCode: 403, Message: "Forbidden"}),
			expected: ErrorKindHTTP,
		},
		{name: "unknown", err: errors.New("boom"), expected: ErrorKindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorKind(tt.err))
		})
	}
}

func TestUsageTracker_TrackOperation(t *testing.T) {
	tracker := NewUsageTrackerHandler()
	start := time.Now().Add(-50 * time.Millisecond)

	tracker.TrackOperation(TrackOperationInput{Operation: "web", StartTime: start})
	tracker.TrackOperation(TrackOperationInput{Operation: "web", StartTime: start, Err: &startpage.ParseError{Kind: startpage.KindWeb}})
	tracker.TrackOperation(TrackOperationInput{Operation: OperationSuggestions, StartTime: start})

	snap := tracker.Snapshot()
	require.Contains(t, snap.Operations, "web")

	web := snap.Operations["web"]
	assert.Equal(t, 2, web.Calls)
	assert.Equal(t, 1, web.Failures)
	assert.Equal(t, map[string]int{ErrorKindParse: 1}, web.ByError)
	assert.GreaterOrEqual(t, web.TotalMs, int64(100))
	assert.Equal(t, start, web.LastCallAt)

	assert.Equal(t, 1, snap.Operations[OperationSuggestions].Calls)
	assert.Nil(t, snap.Operations[OperationSuggestions].ByError)
	assert.Equal(t, []string{OperationSuggestions, "web"}, snap.OperationNames())
}

func TestUsageTracker_SnapshotIsCopy(t *testing.T) {
	tracker := NewUsageTrackerHandler()
	tracker.TrackOperation(TrackOperationInput{
		Operation: "images",
		StartTime: time.Now(),
		Err:       &startpage.HTTPError{StatusCode: 500},
	})

	snap := tracker.Snapshot()
	snap.Operations["images"].ByError[ErrorKindHTTP] = 99

	again := tracker.Snapshot()
	assert.Equal(t, 1, again.Operations["images"].ByError[ErrorKindHTTP])
}

func TestUsageTracker_Concurrent(t *testing.T) {
	tracker := NewUsageTrackerHandler()
	done := make(chan struct{})
	for i := 0; i < 20; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			tracker.TrackOperation(TrackOperationInput{Operation: "web", StartTime: time.Now()})
		}()
	}
	for i := 0; i < 20; i++ {
		<-done
	}

	assert.Equal(t, 20, tracker.Snapshot().Operations["web"].Calls)
}
