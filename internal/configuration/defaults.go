package configuration

import (
	"time"

	"github.com/ahrav/go-gradebook/internal/domain"
)

// Temporal defaults.
const (
	DefaultHostPort  = "localhost:7233"
	DefaultNamespace = "default"
	DefaultTaskQueue = "gradebook"
)

// Event sink defaults.
const (
	DefaultRedisStream    = "gradebook:events"
	DefaultRedisMaxLen    = 100_000
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultEventBurst     = 50
)

// DefaultConfig returns a configuration suitable for local development:
// a local Temporal frontend, no event sink and the standard grading scale.
func DefaultConfig() *Config {
	return &Config{
		Temporal: TemporalConfig{
			HostPort:  DefaultHostPort,
			Namespace: DefaultNamespace,
			TaskQueue: DefaultTaskQueue,
		},
		Events: EventsConfig{
			Sink:  SinkNoop,
			Burst: DefaultEventBurst,
			Redis: RedisConfig{
				Stream:         DefaultRedisStream,
				MaxLen:         DefaultRedisMaxLen,
				IdempotencyTTL: DefaultIdempotencyTTL,
			},
		},
		Grading: GradingConfig{Scale: domain.DefaultGradingScale()},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}
