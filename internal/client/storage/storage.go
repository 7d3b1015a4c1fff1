package storage

import (
	"context"
	"errors"
	"net/url"
	"time"
)

// DefaultTTL is the lifetime of an expiring value when none is given.
const DefaultTTL = 30 * 24 * time.Hour

var (
	ErrUnknownBackend     = errors.New("unknown storage backend")
	ErrBackendUnavailable = errors.New("storage backend not available in this build")
)

// DurableStore keeps string values until they are removed.
type DurableStore interface {
	// Get returns the value and true, or "" and false when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// ExpiringStore keeps string values for a limited time.
type ExpiringStore interface {
	// Get returns the value and true, or "" and false when the key is absent
	// or expired.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value for ttl. A non-positive ttl stores an expired value.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Clear overwrites the key with an already expired value.
	Clear(ctx context.Context, key string) error
}

// Clock returns the current time. Backends take one so tests can move time.
type Clock func() time.Time

// encodeValue escapes v the way a cookie value is escaped before being
// written.
func encodeValue(v string) string {
	return url.PathEscape(v)
}

// decodeValue reverses encodeValue. A value that cannot be unescaped is
// reported as absent.
func decodeValue(raw string) (string, bool) {
	v, err := url.PathUnescape(raw)
	if err != nil {
		return "", false
	}
	return v, true
}
