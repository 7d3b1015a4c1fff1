package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ynitaziki/storefront/internal/filex"
	"github.com/ynitaziki/storefront/internal/logging"
)

const (
	BackendSQLite  = "sqlite"
	BackendRedis   = "redis"
	BackendMemory  = "memory"
	BackendBrowser = "browser"
)

// Options selects and configures a backend.
type Options struct {
	Backend       string
	DBPath        string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Backend bundles the two stores of one backend with its cleanup.
type Backend struct {
	Name     string
	Durable  DurableStore
	Expiring ExpiringStore
	closeFn  func() error
}

func (b *Backend) Close() error {
	if b.closeFn == nil {
		return nil
	}
	return b.closeFn()
}

// Open builds the backend named in opts.
func Open(ctx context.Context, opts Options, log logging.Logger) (*Backend, error) {
	switch opts.Backend {
	case BackendSQLite, "":
		if err := filex.EnsureParentDir(opts.DBPath); err != nil {
			return nil, err
		}
		db, err := OpenSQLite(ctx, opts.DBPath)
		if err != nil {
			return nil, err
		}
		log.Info(ctx, "local storage opened", "backend", BackendSQLite, "path", opts.DBPath)
		return &Backend{
			Name:     BackendSQLite,
			Durable:  NewSQLiteDurableStore(db),
			Expiring: NewSQLiteCookieStore(db),
			closeFn:  db.Close,
		}, nil

	case BackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("redis %s: %w", opts.RedisAddr, err)
		}
		log.Info(ctx, "local storage opened", "backend", BackendRedis, "addr", opts.RedisAddr)
		return &Backend{
			Name:     BackendRedis,
			Durable:  NewRedisDurableStore(rdb),
			Expiring: NewRedisExpiringStore(rdb),
			closeFn:  rdb.Close,
		}, nil

	case BackendMemory:
		m := NewMemoryStore()
		log.Warn(ctx, "local storage is in memory, nothing survives exit")
		return &Backend{Name: BackendMemory, Durable: m.Durable(), Expiring: m.Expiring()}, nil

	case BackendBrowser:
		return openBrowser()

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}
