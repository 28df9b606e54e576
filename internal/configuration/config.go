// Package configuration loads and validates gradebook worker and CLI settings.
//
// Settings come from, in increasing precedence: DefaultConfig, an optional
// YAML file, and GRADEBOOK_* environment variables.
package configuration

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ahrav/go-gradebook/internal/domain"
)

// ErrInvalidConfig indicates that the configuration failed validation.
var ErrInvalidConfig = errors.New("invalid configuration")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Event sink kinds.
const (
	SinkNoop   = "noop"
	SinkMemory = "memory"
	SinkRedis  = "redis"
)

// Config holds the complete gradebook configuration.
type Config struct {
	Temporal TemporalConfig `json:"temporal" yaml:"temporal"`
	Events   EventsConfig   `json:"events"   yaml:"events"`
	Grading  GradingConfig  `json:"grading"  yaml:"grading"`
	Logging  LoggingConfig  `json:"logging"  yaml:"logging"`
}

// TemporalConfig controls the connection to the Temporal frontend.
type TemporalConfig struct {
	HostPort  string `json:"host_port"  yaml:"host_port"  validate:"required,hostname_port"`
	Namespace string `json:"namespace"  yaml:"namespace"  validate:"required"`
	TaskQueue string `json:"task_queue" yaml:"task_queue" validate:"required"`
}

// EventsConfig selects and tunes the event sink used by activities.
type EventsConfig struct {
	Sink string `json:"sink" yaml:"sink" validate:"oneof=noop memory redis"`

	// RatePerSecond caps sink throughput; 0 disables throttling.
	RatePerSecond float64 `json:"rate_per_second" yaml:"rate_per_second" validate:"min=0"`
	Burst         int     `json:"burst"           yaml:"burst"           validate:"min=0"`

	Redis RedisConfig `json:"redis" yaml:"redis"`
}

// RedisConfig configures the Redis stream sink.
type RedisConfig struct {
	Addr           string        `json:"addr"            yaml:"addr"`
	Password       string        `json:"-"               yaml:"password"`
	DB             int           `json:"db"              yaml:"db"              validate:"min=0"`
	Stream         string        `json:"stream"          yaml:"stream"`
	MaxLen         int64         `json:"max_len"         yaml:"max_len"         validate:"min=0"`
	IdempotencyTTL time.Duration `json:"idempotency_ttl" yaml:"idempotency_ttl" validate:"min=0"`
}

// GradingConfig holds the grading scale used by the worker and the CLI.
type GradingConfig struct {
	Scale domain.GradingScale `json:"scale" yaml:"scale"`
}

// LoggingConfig controls the process logger.
type LoggingConfig struct {
	Level  string `json:"level"  yaml:"level"  validate:"oneof=debug info warn error"`
	Format string `json:"format" yaml:"format" validate:"oneof=text json"`
}

// SlogLevel converts the configured level to a slog.Level.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Validate checks the configuration for completeness and consistency.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Events.Sink == SinkRedis && c.Events.Redis.Addr == "" {
		return fmt.Errorf("%w: events.redis.addr is required for the redis sink", ErrInvalidConfig)
	}
	if err := c.Grading.Scale.Validate(); err != nil {
		return fmt.Errorf("%w: grading.scale: %w", ErrInvalidConfig, err)
	}
	return nil
}
