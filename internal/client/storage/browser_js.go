//go:build js && wasm

package storage

import (
	"context"
	"fmt"
	"regexp"
	"syscall/js"
	"time"
)

func openBrowser() (*Backend, error) {
	storage := js.Global().Get("localStorage")
	if !storage.Truthy() {
		return nil, ErrBackendUnavailable
	}
	doc := js.Global().Get("document")
	return &Backend{
		Name:     BackendBrowser,
		Durable:  &BrowserDurableStore{storage: storage},
		Expiring: &BrowserCookieStore{doc: doc, now: time.Now},
	}, nil
}

// BrowserDurableStore is backed by window.localStorage.
type BrowserDurableStore struct {
	storage js.Value
}

func (s *BrowserDurableStore) Get(_ context.Context, key string) (string, bool, error) {
	v := s.storage.Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return "", false, nil
	}
	return v.String(), true, nil
}

func (s *BrowserDurableStore) Set(_ context.Context, key, value string) error {
	s.storage.Call("setItem", key, value)
	return nil
}

func (s *BrowserDurableStore) Remove(_ context.Context, key string) error {
	s.storage.Call("removeItem", key)
	return nil
}

// BrowserCookieStore is backed by document.cookie with path=/.
type BrowserCookieStore struct {
	doc js.Value
	now Clock
}

func (s *BrowserCookieStore) Get(_ context.Context, key string) (string, bool, error) {
	re := regexp.MustCompile(`(?:^|; )` + regexp.QuoteMeta(key) + `=([^;]*)`)
	m := re.FindStringSubmatch(s.doc.Get("cookie").String())
	if m == nil || m[1] == "" {
		return "", false, nil
	}
	v, ok := decodeValue(m[1])
	return v, ok, nil
}

func (s *BrowserCookieStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	expires := s.now().Add(ttl).UTC().Format(time.RFC1123)
	expires = expires[:len(expires)-3] + "GMT"
	s.doc.Set("cookie", fmt.Sprintf("%s=%s; expires=%s; path=/", key, encodeValue(value), expires))
	return nil
}

func (s *BrowserCookieStore) Clear(ctx context.Context, key string) error {
	return s.Set(ctx, key, "", -24*time.Hour)
}
