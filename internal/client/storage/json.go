package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrDecode marks a stored value that is not valid JSON for the requested
// type.
var ErrDecode = errors.New("stored value cannot be decoded")

// DecodeError reports which key held the undecodable value.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

func decodeJSON[T any](key, raw string, fallback T) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return fallback, &DecodeError{Key: key, Err: err}
	}
	return v, nil
}

// ReadDurableJSON decodes the JSON value stored under key. The returned
// value is always usable: when the key is absent, the backend fails or the
// value does not decode, fallback is returned together with the reason.
func ReadDurableJSON[T any](ctx context.Context, s DurableStore, key string, fallback T) (T, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return fallback, fmt.Errorf("read %q: %w", key, err)
	}
	if !ok || raw == "" {
		return fallback, nil
	}
	return decodeJSON(key, raw, fallback)
}

// WriteDurableJSON encodes v and stores it under key.
func WriteDurableJSON(ctx context.Context, s DurableStore, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.Set(ctx, key, string(b))
}

// ReadExpiringJSON is ReadDurableJSON for expiring storage.
func ReadExpiringJSON[T any](ctx context.Context, s ExpiringStore, key string, fallback T) (T, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return fallback, fmt.Errorf("read %q: %w", key, err)
	}
	if !ok || raw == "" {
		return fallback, nil
	}
	return decodeJSON(key, raw, fallback)
}

// WriteExpiringJSON encodes v and stores it under key for ttl.
func WriteExpiringJSON(ctx context.Context, s ExpiringStore, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.Set(ctx, key, string(b), ttl)
}
