package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default server port = %d", cfg.Server.Port)
	}
	if cfg.Search.DefaultContextWords != 3 || cfg.Search.MaxContextWords != 50 {
		t.Errorf("unexpected search defaults: %+v", cfg.Search)
	}
	if cfg.Kafka.Enabled() {
		t.Error("analytics enabled by default without brokers")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: 9999
document:
  path: /tmp/moby.txt
search:
  defaultContextWords: 2
  maxContextWords: 8
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("server port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Document.Path != "/tmp/moby.txt" {
		t.Errorf("document path = %q", cfg.Document.Path)
	}
	if cfg.Search.DefaultContextWords != 2 || cfg.Search.MaxContextWords != 8 {
		t.Errorf("search config = %+v", cfg.Search)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging level = %q", cfg.Logging.Level)
	}
	// Unset sections keep their defaults.
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("redis addr = %q", cfg.Redis.Addr)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TS_SERVER_PORT", "7070")
	t.Setenv("TS_DOCUMENT_PATH", "/data/doc.txt")
	t.Setenv("TS_KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("TS_LOGGING_LEVEL", "error")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("server port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Document.Path != "/data/doc.txt" {
		t.Errorf("document path = %q", cfg.Document.Path)
	}
	if len(cfg.Kafka.Brokers) != 2 || !cfg.Kafka.Enabled() {
		t.Errorf("kafka brokers = %v", cfg.Kafka.Brokers)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("logging level = %q", cfg.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty document path", func(c *Config) { c.Document.Path = "" }},
		{"negative default context", func(c *Config) { c.Search.DefaultContextWords = -1 }},
		{"max below default", func(c *Config) { c.Search.MaxContextWords = 1; c.Search.DefaultContextWords = 5 }},
		{"port out of range", func(c *Config) { c.Server.Port = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate accepted invalid config")
			}
		})
	}
}
