package config

import (
	"fmt"
	"log/slog"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Lexicon.Store {
	case StorePostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required when lexicon.store is %q", StorePostgres)
		}
	case StoreSQLite:
		if c.Lexicon.SQLitePath == "" {
			return fmt.Errorf("lexicon.sqlite_path is required when lexicon.store is %q", StoreSQLite)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("lexicon.store must be one of %q, %q, %q (got %q)",
			StorePostgres, StoreSQLite, StoreMemory, c.Lexicon.Store)
	}

	if c.Generation.MaxRetries < 0 {
		return fmt.Errorf("generation.max_retries must be >= 0 (got %d)", c.Generation.MaxRetries)
	}
	if c.Generation.Timeout <= 0 {
		return fmt.Errorf("generation.timeout must be > 0 (got %v)", c.Generation.Timeout)
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}
