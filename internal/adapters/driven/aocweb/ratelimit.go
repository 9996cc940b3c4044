package aocweb

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimiter throttles requests to adventofcode.com with a token
// bucket. The site serves a static file per day, so there is no header
// feedback to react to; a fixed polite rate is enough.
type RateLimiter struct {
	bucket *rate.Limiter
}

// NewRateLimiter creates a limiter allowing perSecond requests with a
// burst of one.
func NewRateLimiter(perSecond float64) *RateLimiter {
	return &RateLimiter{bucket: rate.NewLimiter(rate.Limit(perSecond), 1)}
}

// Wait blocks until it's safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.bucket.Wait(ctx)
}
