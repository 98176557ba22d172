package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

lexicon:
  store: "postgres"

generation:
  max_retries: 5
  timeout: "2s"

log:
  level: "debug"
  format: "text"
`

func TestLoad_FromYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9090 {
		t.Errorf("server: %+v", cfg.Server)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("read_timeout: %v", cfg.Server.ReadTimeout)
	}
	if cfg.Generation.MaxRetries != 5 || cfg.Generation.Timeout != 2*time.Second {
		t.Errorf("generation: %+v", cfg.Generation)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log: %+v", cfg.Log)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("LEXICON_STORE", "memory")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("env must override yaml: port %d", cfg.Server.Port)
	}
	if cfg.Lexicon.Store != StoreMemory {
		t.Errorf("env must override yaml: store %s", cfg.Lexicon.Store)
	}
}

func TestLoad_EnvOnlyDefaults(t *testing.T) {
	t.Setenv("LEXICON_STORE", "memory")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default port: %d", cfg.Server.Port)
	}
	if cfg.Generation.MaxRetries != 3 {
		t.Errorf("default max_retries: %d", cfg.Generation.MaxRetries)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("default log format: %s", cfg.Log.Format)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Lexicon:    LexiconConfig{Store: StoreMemory, SQLitePath: "./lexicon.db"},
			Generation: GenerationConfig{MaxRetries: 3, Timeout: 5 * time.Second},
			Log:        LogConfig{Level: "info", Format: "json"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid memory store", func(c *Config) {}, false},
		{"postgres without dsn", func(c *Config) { c.Lexicon.Store = StorePostgres }, true},
		{"postgres with dsn", func(c *Config) {
			c.Lexicon.Store = StorePostgres
			c.Database.DSN = "postgres://u:p@localhost/db"
		}, false},
		{"sqlite without path", func(c *Config) {
			c.Lexicon.Store = StoreSQLite
			c.Lexicon.SQLitePath = ""
		}, true},
		{"unknown store", func(c *Config) { c.Lexicon.Store = "redis" }, true},
		{"negative retries", func(c *Config) { c.Generation.MaxRetries = -1 }, true},
		{"zero timeout", func(c *Config) { c.Generation.Timeout = 0 }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
