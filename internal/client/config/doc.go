// Package config loads runtime configuration for the storefront client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory and STOREFRONT_* environment
//     variables (see parseEnv).
//  3. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   storage backend: sqlite, redis or memory
//	-d string   path of the SQLite database file
//	-r string   redis address host:port
//	-t string   lifetime of cart and favorites, e.g. "720h"
//	-p string   path of a JSON product catalog
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Every key is optional. cookie_ttl is a timex.Duration, so it can be a
// string like "720h" or integer nanoseconds:
//
//	{
//	  "storage_backend": "redis",
//	  "db_path": "storefront.db",
//	  "redis_addr": "127.0.0.1:6379",
//	  "redis_password": "",
//	  "redis_db": 0,
//	  "cookie_ttl": "720h",
//	  "catalog_path": "catalog.json",
//	  "log_level": "info"
//	}
package config
