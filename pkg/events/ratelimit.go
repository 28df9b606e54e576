package events

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimitedSink throttles appends to an underlying sink with a token bucket.
// Append blocks until a token is available or ctx is done.
type RateLimitedSink struct {
	next    EventSink
	limiter *rate.Limiter
}

// NewRateLimitedSink wraps next so that at most perSecond events are forwarded
// per second on average, with bursts of up to burst events.
// A non-positive perSecond disables throttling.
func NewRateLimitedSink(next EventSink, perSecond float64, burst int) *RateLimitedSink {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedSink{next: next, limiter: rate.NewLimiter(limit, burst)}
}

// Append waits for a token then forwards envelope to the wrapped sink.
func (r *RateLimitedSink) Append(ctx context.Context, envelope Envelope) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("event rate limit wait: %w", err)
	}
	return r.next.Append(ctx, envelope)
}
