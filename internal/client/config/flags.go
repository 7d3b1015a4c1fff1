package config

import (
	"flag"
	"io"

	"github.com/ynitaziki/storefront/internal/flagx"
)

var ownedFlags = []string{"-s", "-d", "-r", "-t", "-p", "-l"}

// parseFlags overlays cfg with the flags it owns. Other arguments, such as
// -c, are filtered out with flagx.FilterArgs.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "storage backend: sqlite, redis or memory")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the SQLite database file")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address host:port")
	fs.DurationVar(&cfg.CookieTTL, "t", cfg.CookieTTL, "lifetime of cart and favorites")
	fs.StringVar(&cfg.CatalogPath, "p", cfg.CatalogPath, "path of a JSON product catalog")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")

	return fs.Parse(flagx.FilterArgs(args, ownedFlags))
}
