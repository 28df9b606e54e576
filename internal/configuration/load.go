package configuration

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file and default settings.
const (
	EnvHostPort  = "GRADEBOOK_TEMPORAL_HOSTPORT"
	EnvNamespace = "GRADEBOOK_TEMPORAL_NAMESPACE"
	EnvTaskQueue = "GRADEBOOK_TASK_QUEUE"
	EnvRedisAddr = "GRADEBOOK_REDIS_ADDR"
	EnvLogLevel  = "GRADEBOOK_LOG_LEVEL"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load builds a Config from defaults, the YAML file at path (skipped when path
// is empty) and the process environment, then validates it.
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an explicit environment lookup.
func LoadWithEnv(path string, lookup LookupFunc) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg, lookup)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, lookup LookupFunc) {
	if v, ok := lookup(EnvHostPort); ok && v != "" {
		cfg.Temporal.HostPort = v
	}
	if v, ok := lookup(EnvNamespace); ok && v != "" {
		cfg.Temporal.Namespace = v
	}
	if v, ok := lookup(EnvTaskQueue); ok && v != "" {
		cfg.Temporal.TaskQueue = v
	}
	if v, ok := lookup(EnvRedisAddr); ok && v != "" {
		cfg.Events.Redis.Addr = v
		cfg.Events.Sink = SinkRedis
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = v
	}
}
