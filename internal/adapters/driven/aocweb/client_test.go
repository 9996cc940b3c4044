package aocweb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puzzlekit/aoc-cli/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient("test-session", "aoc-cli test", WithBaseURL(server.URL), WithRateLimit(1000))
}

func TestFetchInput(t *testing.T) {
	var gotPath, gotCookie, gotAgent string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if c, err := r.Cookie(SessionCookie); err == nil {
			gotCookie = c.Value
		}
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte("1000\n2000\n"))
	})

	input, err := client.FetchInput(context.Background(), 2022, 1)
	require.NoError(t, err)

	assert.Equal(t, "1000\n2000\n", input)
	assert.Equal(t, "/2022/day/1/input", gotPath)
	assert.Equal(t, "test-session", gotCookie)
	assert.Equal(t, "aoc-cli test", gotAgent)
}

func TestFetchInputStatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"unpublished day", http.StatusNotFound, domain.ErrNotFound},
		{"stale session", http.StatusBadRequest, domain.ErrNoSession},
		{"login redirect", http.StatusFound, domain.ErrNoSession},
		{"throttled", http.StatusTooManyRequests, domain.ErrRateLimited},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if tt.status == http.StatusFound {
					w.Header().Set("Location", "/auth/login")
				}
				w.WriteHeader(tt.status)
			})

			_, err := client.FetchInput(context.Background(), 2022, 26)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFetchInputWithoutSession(t *testing.T) {
	client := NewClient("", "aoc-cli test")
	_, err := client.FetchInput(context.Background(), 2022, 1)
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestRateLimiterThrottles(t *testing.T) {
	// 50 req/s with burst 1: three calls need at least ~40ms.
	limiter := NewRateLimiter(50)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Wait(ctx))
	}
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestRateLimiterHonoursCancellation(t *testing.T) {
	limiter := NewRateLimiter(0.001)
	require.NoError(t, limiter.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, limiter.Wait(ctx))
}
