package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvStorage       = "STOREFRONT_STORAGE"
	EnvDBPath        = "STOREFRONT_DB_PATH"
	EnvRedisAddr     = "STOREFRONT_REDIS_ADDR"
	EnvRedisPassword = "STOREFRONT_REDIS_PASSWORD"
	EnvRedisDB       = "STOREFRONT_REDIS_DB"
	EnvCookieTTL     = "STOREFRONT_COOKIE_TTL"
	EnvCatalog       = "STOREFRONT_CATALOG"
	EnvLogLevel      = "STOREFRONT_LOG_LEVEL"
)

// parseEnv loads dotenv (when the file exists) into the process environment
// and overlays cfg with the STOREFRONT_* variables that are set. Variables
// already present in the environment win over the file.
func parseEnv(cfg *Config, dotenv string) error {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", dotenv, err)
		}
	}

	setString(&cfg.StorageBackend, EnvStorage)
	setString(&cfg.DBPath, EnvDBPath)
	setString(&cfg.RedisAddr, EnvRedisAddr)
	setString(&cfg.RedisPassword, EnvRedisPassword)
	setString(&cfg.CatalogPath, EnvCatalog)
	setString(&cfg.LogLevel, EnvLogLevel)

	if v, ok := os.LookupEnv(EnvRedisDB); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRedisDB, err)
		}
		cfg.RedisDB = n
	}

	if v, ok := os.LookupEnv(EnvCookieTTL); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCookieTTL, err)
		}
		cfg.CookieTTL = d
	}

	return nil
}

func setString(dst *string, name string) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		*dst = v
	}
}
