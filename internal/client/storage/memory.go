package storage

import (
	"context"
	"sync"
	"time"
)

type memoryCookie struct {
	value     string
	expiresAt time.Time
}

// MemoryStore keeps both kinds of storage in process memory. It is safe for
// concurrent use.
type MemoryStore struct {
	mu      sync.Mutex
	durable map[string]string
	cookies map[string]memoryCookie
	now     Clock
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		durable: make(map[string]string),
		cookies: make(map[string]memoryCookie),
		now:     time.Now,
	}
}

// SetClock replaces the time source used for expiry.
func (m *MemoryStore) SetClock(c Clock) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = c
}

func (m *MemoryStore) Durable() DurableStore {
	return memoryDurable{m}
}

func (m *MemoryStore) Expiring() ExpiringStore {
	return memoryExpiring{m}
}

type memoryDurable struct{ m *MemoryStore }

func (d memoryDurable) Get(_ context.Context, key string) (string, bool, error) {
	d.m.mu.Lock()
	defer d.m.mu.Unlock()
	v, ok := d.m.durable[key]
	return v, ok, nil
}

func (d memoryDurable) Set(_ context.Context, key, value string) error {
	d.m.mu.Lock()
	defer d.m.mu.Unlock()
	d.m.durable[key] = value
	return nil
}

func (d memoryDurable) Remove(_ context.Context, key string) error {
	d.m.mu.Lock()
	defer d.m.mu.Unlock()
	delete(d.m.durable, key)
	return nil
}

type memoryExpiring struct{ m *MemoryStore }

func (e memoryExpiring) Get(_ context.Context, key string) (string, bool, error) {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()

	c, ok := e.m.cookies[key]
	if !ok {
		return "", false, nil
	}
	if !c.expiresAt.After(e.m.now()) {
		delete(e.m.cookies, key)
		return "", false, nil
	}
	v, ok := decodeValue(c.value)
	return v, ok, nil
}

func (e memoryExpiring) Set(_ context.Context, key, value string, ttl time.Duration) error {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	e.m.cookies[key] = memoryCookie{value: encodeValue(value), expiresAt: e.m.now().Add(ttl)}
	return nil
}

func (e memoryExpiring) Clear(ctx context.Context, key string) error {
	return e.Set(ctx, key, "", -time.Second)
}
