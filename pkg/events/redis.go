package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// appendOnce atomically claims the idempotency key and appends the envelope to
// the stream. It returns 1 when the event was appended and 0 for a duplicate.
//
// KEYS[1] = stream
// KEYS[2] = idempotency key
// ARGV[1] = envelope JSON
// ARGV[2] = idempotency TTL in seconds
// ARGV[3] = approximate stream MAXLEN.
var appendOnce = redis.NewScript(`
	local claimed = redis.call('SET', KEYS[2], '1', 'NX', 'EX', ARGV[2])
	if not claimed then return 0 end
	redis.call('XADD', KEYS[1], 'MAXLEN', '~', ARGV[3], '*', 'envelope', ARGV[1])
	return 1
`)

// Defaults for RedisStreamSink.
const (
	DefaultStream         = "gradebook:events"
	DefaultStreamMaxLen   = 100_000
	DefaultIdempotencyTTL = 24 * time.Hour
)

// ErrRedisUnavailable is returned when the Redis stream cannot be reached.
var ErrRedisUnavailable = errors.New("redis event stream unavailable")

// RedisStreamConfig configures a RedisStreamSink.
type RedisStreamConfig struct {
	Stream         string
	MaxLen         int64
	IdempotencyTTL time.Duration
}

// RedisStreamSink appends envelopes to a Redis stream as a single "envelope"
// field holding the JSON encoding. Each idempotency key is accepted once per TTL.
type RedisStreamSink struct {
	client redis.UniversalClient
	cfg    RedisStreamConfig
}

// NewRedisStreamSink creates a sink on client, filling zero config fields with defaults.
func NewRedisStreamSink(client redis.UniversalClient, cfg RedisStreamConfig) *RedisStreamSink {
	if cfg.Stream == "" {
		cfg.Stream = DefaultStream
	}
	if cfg.MaxLen <= 0 {
		cfg.MaxLen = DefaultStreamMaxLen
	}
	if cfg.IdempotencyTTL <= 0 {
		cfg.IdempotencyTTL = DefaultIdempotencyTTL
	}
	return &RedisStreamSink{client: client, cfg: cfg}
}

// Ping checks connectivity to Redis.
func (s *RedisStreamSink) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrRedisUnavailable, err)
	}
	return nil
}

// Append writes envelope to the stream unless its idempotency key was seen.
// Envelopes without an idempotency key fall back to their ID for deduplication.
func (s *RedisStreamSink) Append(ctx context.Context, envelope Envelope) error {
	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	key := envelope.IdempotencyKey
	if key == "" {
		key = envelope.ID
	}

	ttlSeconds := int64(s.cfg.IdempotencyTTL / time.Second)
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}

	_, err = appendOnce.Run(ctx, s.client,
		[]string{s.cfg.Stream, s.idempotencyKey(key)},
		string(data), ttlSeconds, s.cfg.MaxLen,
	).Int()
	if err != nil {
		return fmt.Errorf("%w: append %s: %w", ErrRedisUnavailable, envelope.Type, err)
	}
	return nil
}

// ReadRange returns up to count envelopes from the start of the stream.
func (s *RedisStreamSink) ReadRange(ctx context.Context, count int64) ([]Envelope, error) {
	msgs, err := s.client.XRangeN(ctx, s.cfg.Stream, "-", "+", count).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrRedisUnavailable, s.cfg.Stream, err)
	}

	out := make([]Envelope, 0, len(msgs))
	for _, msg := range msgs {
		raw, ok := msg.Values["envelope"].(string)
		if !ok {
			return nil, fmt.Errorf("stream entry %s has no envelope field", msg.ID)
		}
		var env Envelope
		if err := json.Unmarshal([]byte(raw), &env); err != nil {
			return nil, fmt.Errorf("decode stream entry %s: %w", msg.ID, err)
		}
		out = append(out, env)
	}
	return out, nil
}

func (s *RedisStreamSink) idempotencyKey(key string) string {
	return s.cfg.Stream + ":idem:" + key
}
