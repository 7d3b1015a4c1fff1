package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ynitaziki/storefront/internal/flagx"
	"github.com/ynitaziki/storefront/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding Config field unchanged.
type JsonConfig struct {
	StorageBackend string          `json:"storage_backend"`
	DBPath         string          `json:"db_path"`
	RedisAddr      string          `json:"redis_addr"`
	RedisPassword  string          `json:"redis_password"`
	RedisDB        *int            `json:"redis_db"`
	CookieTTL      *timex.Duration `json:"cookie_ttl"`
	CatalogPath    string          `json:"catalog_path"`
	LogLevel       string          `json:"log_level"`
}

// parseJSON overlays cfg with the JSON file given by -c or -config in args.
// Without such a flag it does nothing.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	overlay(&cfg.StorageBackend, jc.StorageBackend)
	overlay(&cfg.DBPath, jc.DBPath)
	overlay(&cfg.RedisAddr, jc.RedisAddr)
	overlay(&cfg.RedisPassword, jc.RedisPassword)
	overlay(&cfg.CatalogPath, jc.CatalogPath)
	overlay(&cfg.LogLevel, jc.LogLevel)
	if jc.RedisDB != nil {
		cfg.RedisDB = *jc.RedisDB
	}
	if jc.CookieTTL != nil {
		cfg.CookieTTL = jc.CookieTTL.Duration
	}

	return nil
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
