// Package config reads the dca settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/dca/kv"
	"github.com/joho/godotenv"
)

// Store backends.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// sqliteFile is the database file name in the data directory.
const sqliteFile = "dca.db"

// Config holds the application configuration.
type Config struct {
	Store    string // one of StoreFile, StoreSQLite or StoreMemory
	DataDir  string
	PriceURL string // empty for the default CoinGecko endpoint
	LogLevel string
}

// Load reads the .env files, ".env" if none is given, then the environment.
//
// Values are not validated, callers apply their overrides and call Validate.
// A missing .env file is not an error, variables already set in the
// environment take precedence over the file.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("cannot load %s: %w", f, err)
		}
	}

	c := &Config{
		Store:    strings.ToLower(getEnv("DCA_STORE", StoreFile)),
		DataDir:  getEnv("DCA_DATA_DIR", defaultDataDir()),
		PriceURL: getEnv("DCA_PRICE_URL", ""),
		LogLevel: getEnv("DCA_LOG_LEVEL", "warn"),
	}
	return c, nil
}

// Validate checks the store backend.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreFile, StoreSQLite, StoreMemory:
		return nil
	default:
		return fmt.Errorf("unknown store %q, want %s, %s or %s", c.Store, StoreFile, StoreSQLite, StoreMemory)
	}
}

// OpenStore opens the configured key/value store.
func (c *Config) OpenStore() (kv.Store, error) {
	switch c.Store {
	case StoreFile:
		s, err := kv.OpenFile(c.DataDir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case StoreSQLite:
		if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("cannot create data directory: %w", err)
		}
		s, err := kv.OpenSQLite(filepath.Join(c.DataDir, sqliteFile))
		if err != nil {
			return nil, err
		}
		return s, nil
	case StoreMemory:
		return kv.NewMemory(), nil
	default:
		return nil, c.Validate()
	}
}

// defaultDataDir is ~/.dca, or .dca in the working directory without a home.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dca"
	}
	return filepath.Join(home, ".dca")
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
