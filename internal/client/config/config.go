package config

import (
	"time"

	"github.com/ynitaziki/storefront/internal/client/storage"
)

// Config holds runtime settings for the storefront client.
type Config struct {
	StorageBackend string
	DBPath         string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	// CookieTTL is how long the cart and favorites live after their last
	// change.
	CookieTTL   time.Duration
	CatalogPath string
	LogLevel    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageBackend = storage.BackendSQLite
	c.DBPath = "storefront.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisPassword = ""
	c.RedisDB = 0
	c.CookieTTL = storage.DefaultTTL
	c.CatalogPath = ""
	c.LogLevel = "warn"
}

// StorageOptions returns the part of c that selects the storage backend.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend:       c.StorageBackend,
		DBPath:        c.DBPath,
		RedisAddr:     c.RedisAddr,
		RedisPassword: c.RedisPassword,
		RedisDB:       c.RedisDB,
	}
}

// LoadConfig constructs a Config from defaults, the environment, the JSON
// file named in args and the flags in args. Later sources take precedence
// over earlier ones. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg, ".env"); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
