package services

import (
	"context"
	"errors"
	"time"

	"github.com/ynitaziki/storefront/internal/client/storage"
	"github.com/ynitaziki/storefront/internal/logging"
)

type fixture struct {
	mem     *storage.MemoryStore
	auth    *AuthService
	profile *ProfileService
	cart    *CartService
}

func newFixture() *fixture {
	mem := storage.NewMemoryStore()
	log := logging.Nop()
	return &fixture{
		mem:     mem,
		auth:    NewAuthService(mem.Durable(), mem.Expiring(), log),
		profile: NewProfileService(mem.Durable(), log),
		cart:    NewCartService(mem.Expiring(), storage.DefaultTTL, log),
	}
}

var errStore = errors.New("store down")

// failingExpiring reads from an inner store and fails every write.
type failingExpiring struct {
	storage.ExpiringStore
}

func (failingExpiring) Set(context.Context, string, string, time.Duration) error { return errStore }
func (failingExpiring) Clear(context.Context, string) error                      { return errStore }

type failingDurable struct {
	storage.DurableStore
}

func (failingDurable) Set(context.Context, string, string) error { return errStore }
func (failingDurable) Remove(context.Context, string) error      { return errStore }
