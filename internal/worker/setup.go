// Package worker provides initialization and setup utilities for Temporal workers.
package worker

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ahrav/go-gradebook/internal/configuration"
	"github.com/ahrav/go-gradebook/internal/grader"
	"github.com/ahrav/go-gradebook/pkg/events"
)

// NewGrader builds the grader for the configured scale.
func NewGrader(cfg *configuration.Config) (*grader.Grader, error) {
	g, err := grader.NewGrader(cfg.Grading.Scale)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize grader: %w", err)
	}
	return g, nil
}

// NewEventSink builds the configured event sink, wrapped in a rate limiter when
// a rate is set. The returned close function releases any connections.
func NewEventSink(ctx context.Context, cfg *configuration.Config) (events.EventSink, func() error, error) {
	noClose := func() error { return nil }

	var (
		sink    events.EventSink
		closeFn = noClose
	)

	switch cfg.Events.Sink {
	case configuration.SinkNoop, "":
		sink = events.NewNoOpEventSink()
	case configuration.SinkMemory:
		sink = events.NewMemoryEventSink()
	case configuration.SinkRedis:
		rc := cfg.Events.Redis
		client := redis.NewClient(&redis.Options{
			Addr:     rc.Addr,
			Password: rc.Password,
			DB:       rc.DB,
		})
		rs := events.NewRedisStreamSink(client, events.RedisStreamConfig{
			Stream:         rc.Stream,
			MaxLen:         rc.MaxLen,
			IdempotencyTTL: rc.IdempotencyTTL,
		})
		if err := rs.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, noClose, fmt.Errorf("failed to initialize event sink: %w", err)
		}
		sink, closeFn = rs, client.Close
	default:
		return nil, noClose, fmt.Errorf("%w: unknown event sink %q", configuration.ErrInvalidConfig, cfg.Events.Sink)
	}

	if cfg.Events.RatePerSecond > 0 {
		sink = events.NewRateLimitedSink(sink, cfg.Events.RatePerSecond, cfg.Events.Burst)
	}
	return sink, closeFn, nil
}
