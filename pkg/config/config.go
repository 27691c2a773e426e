// Package config loads and validates service configuration from a YAML file
// with environment-variable overrides (TS_* prefix). It provides typed
// structs for every subsystem (Server, Document, Search, Redis, Kafka,
// Logging, Metrics).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level service configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Document DocumentConfig `yaml:"document"`
	Search   SearchConfig   `yaml:"search"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// DocumentConfig names the document file the index is built from.
type DocumentConfig struct {
	Path string `yaml:"path"`
}

// SearchConfig controls query parameter limits.
type SearchConfig struct {
	DefaultContextWords int `yaml:"defaultContextWords"`
	MaxContextWords     int `yaml:"maxContextWords"`
	MaxQueryLength      int `yaml:"maxQueryLength"`
}

// RedisConfig holds Redis connection and result-cache parameters.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	PoolSize int           `yaml:"poolSize"`
	CacheTTL time.Duration `yaml:"cacheTTL"`
}

// KafkaConfig holds the broker list and the search-analytics topic. Leaving
// Brokers empty disables analytics publishing.
type KafkaConfig struct {
	Brokers          []string `yaml:"brokers"`
	SearchEventTopic string   `yaml:"searchEventTopic"`
}

// Enabled reports whether an analytics broker is configured.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus metrics server.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// Load reads the YAML file at path (if non-empty) over built-in defaults,
// applies TS_* environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports configuration that cannot possibly serve.
func (c *Config) Validate() error {
	if c.Document.Path == "" {
		return fmt.Errorf("document.path must be set")
	}
	if c.Search.DefaultContextWords < 0 {
		return fmt.Errorf("search.defaultContextWords must be >= 0, got %d", c.Search.DefaultContextWords)
	}
	if c.Search.MaxContextWords < c.Search.DefaultContextWords {
		return fmt.Errorf("search.maxContextWords (%d) must be >= search.defaultContextWords (%d)",
			c.Search.MaxContextWords, c.Search.DefaultContextWords)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	return nil
}

// defaultConfig returns a Config with defaults suitable for local
// development.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Document: DocumentConfig{
			Path: "testdata/document.txt",
		},
		Search: SearchConfig{
			DefaultContextWords: 3,
			MaxContextWords:     50,
			MaxQueryLength:      256,
		},
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
			PoolSize: 10,
			CacheTTL: 5 * time.Minute,
		},
		Kafka: KafkaConfig{
			Brokers:          nil,
			SearchEventTopic: "search-events",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Port:    9090,
		},
	}
}

// applyEnvOverrides reads TS_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TS_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("TS_DOCUMENT_PATH"); v != "" {
		cfg.Document.Path = v
	}
	if v := os.Getenv("TS_SEARCH_DEFAULT_CONTEXT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Search.DefaultContextWords = n
		}
	}
	if v := os.Getenv("TS_SEARCH_MAX_CONTEXT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Search.MaxContextWords = n
		}
	}
	if v := os.Getenv("TS_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("TS_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("TS_KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("TS_KAFKA_SEARCH_EVENT_TOPIC"); v != "" {
		cfg.Kafka.SearchEventTopic = v
	}
	if v := os.Getenv("TS_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TS_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("TS_METRICS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Metrics.Port = port
		}
	}
}
