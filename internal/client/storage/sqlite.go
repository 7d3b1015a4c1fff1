package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/ynitaziki/storefront/internal/client/migrations"
	"github.com/ynitaziki/storefront/internal/dbx"

	_ "modernc.org/sqlite"
)

// RunMigrations applies the embedded schema to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// OpenSQLite opens (creating if needed) the SQLite database at dsn and
// brings its schema up to date.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}
	// a single writer keeps read-modify-write cycles of one process ordered
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// SQLiteDurableStore implements DurableStore over the durable table.
type SQLiteDurableStore struct {
	db dbx.DBTX
}

func NewSQLiteDurableStore(db dbx.DBTX) *SQLiteDurableStore {
	return &SQLiteDurableStore{db: db}
}

func (s *SQLiteDurableStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM durable WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get durable[%s]: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteDurableStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO durable (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set durable[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteDurableStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM durable WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to remove durable[%s]: %w", key, err)
	}
	return nil
}

// SQLiteCookieStore implements ExpiringStore over the cookies table.
// Expiry is kept as Unix milliseconds.
type SQLiteCookieStore struct {
	db  *sql.DB
	now Clock
}

func NewSQLiteCookieStore(db *sql.DB) *SQLiteCookieStore {
	return &SQLiteCookieStore{db: db, now: time.Now}
}

// SetClock replaces the time source used for expiry.
func (s *SQLiteCookieStore) SetClock(c Clock) {
	s.now = c
}

func (s *SQLiteCookieStore) Get(ctx context.Context, key string) (string, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM cookies WHERE name = ? AND expires_at > ?`,
		key, s.now().UnixMilli(),
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get cookie[%s]: %w", key, err)
	}
	v, ok := decodeValue(raw)
	return v, ok, nil
}

// Set purges expired cookies and upserts key in one transaction.
func (s *SQLiteCookieStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	now := s.now()
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM cookies WHERE expires_at <= ?`, now.UnixMilli()); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO cookies (name, value, expires_at) VALUES (?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at
		`, key, encodeValue(value), now.Add(ttl).UnixMilli())
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to set cookie[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteCookieStore) Clear(ctx context.Context, key string) error {
	return s.Set(ctx, key, "", -time.Second)
}
