package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ynitaziki/storefront/internal/client/models"
	"github.com/ynitaziki/storefront/internal/client/storage"
	"github.com/ynitaziki/storefront/internal/client/validation"
	"github.com/ynitaziki/storefront/internal/logging"
)

// CartService owns the cart and the favorites. Both are ordered collections,
// unique by product id, kept in expiring storage.
type CartService struct {
	mu        sync.Mutex
	store     storage.ExpiringStore
	ttl       time.Duration
	validate  *validator.Validate
	log       logging.Logger
	now       func() time.Time
	newID     func() string
	listeners []func()
}

// NewCartService returns a CartService writing with the given ttl. A
// non-positive ttl means storage.DefaultTTL.
func NewCartService(store storage.ExpiringStore, ttl time.Duration, log logging.Logger) *CartService {
	if ttl <= 0 {
		ttl = storage.DefaultTTL
	}
	return &CartService{
		store:    store,
		ttl:      ttl,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log.With("service", "cart"),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Subscribe registers fn to be called after every change of the cart or the
// favorites.
func (s *CartService) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Items returns the cart in insertion order.
func (s *CartService) Items(ctx context.Context) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readCart(ctx), nil
}

// Favorites returns the favorites in insertion order.
func (s *CartService) Favorites(ctx context.Context) ([]models.FavoriteItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readFavorites(ctx), nil
}

// AddToCart appends the product with qty 1, or increments the qty of the
// existing line. Cached name, price and image of an existing line are kept.
func (s *CartService) AddToCart(ctx context.Context, p models.Product) ([]models.CartItem, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProduct, err)
	}

	items, err := s.mutateCart(ctx, func(items []models.CartItem) ([]models.CartItem, bool) {
		if i := cartIndex(items, p.ID); i >= 0 {
			items[i].Qty++
			return items, true
		}
		return append(items, models.CartItem{ID: p.ID, Name: p.Name, Price: p.Price, Image: p.Image, Qty: 1}), true
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "added to cart", "id", p.ID)
	return items, nil
}

// Remove deletes the line with the given id. Unknown ids are ignored.
func (s *CartService) Remove(ctx context.Context, id string) ([]models.CartItem, error) {
	return s.mutateCart(ctx, func(items []models.CartItem) ([]models.CartItem, bool) {
		i := cartIndex(items, id)
		if i < 0 {
			return items, false
		}
		return slices.Delete(items, i, i+1), true
	})
}

// SetQuantity changes the qty of a line by delta, never going below 1 and
// saturating at math.MaxInt. Unknown ids are ignored.
func (s *CartService) SetQuantity(ctx context.Context, id string, delta int) ([]models.CartItem, error) {
	return s.mutateCart(ctx, func(items []models.CartItem) ([]models.CartItem, bool) {
		i := cartIndex(items, id)
		if i < 0 {
			return items, false
		}
		items[i].Qty = addQty(items[i].Qty, delta)
		return items, true
	})
}

// Clear empties the cart. Favorites are untouched.
func (s *CartService) Clear(ctx context.Context) error {
	_, err := s.mutateCart(ctx, func([]models.CartItem) ([]models.CartItem, bool) {
		return []models.CartItem{}, true
	})
	return err
}

// ToggleFavorite removes the product from the favorites if present and
// appends it otherwise. It reports whether the product is a favorite
// afterwards.
func (s *CartService) ToggleFavorite(ctx context.Context, p models.Product) (bool, error) {
	if err := s.validate.Struct(p); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidProduct, err)
	}

	s.mu.Lock()
	faves := s.readFavorites(ctx)
	active := false
	if i := favoriteIndex(faves, p.ID); i >= 0 {
		faves = slices.Delete(faves, i, i+1)
	} else {
		faves = append(faves, p)
		active = true
	}
	err := storage.WriteExpiringJSON(ctx, s.store, KeyFavorites, faves, s.ttl)
	s.mu.Unlock()

	if err != nil {
		return false, fmt.Errorf("save favorites: %w", err)
	}
	s.notify()
	return active, nil
}

// IsFavorite reports whether id is in the favorites.
func (s *CartService) IsFavorite(ctx context.Context, id string) (bool, error) {
	faves, err := s.Favorites(ctx)
	if err != nil {
		return false, err
	}
	return favoriteIndex(faves, id) >= 0, nil
}

// AddFavoriteToCart adds the saved favorite with the given id to the cart.
// The favorite stays saved. It reports false when id is not a favorite.
func (s *CartService) AddFavoriteToCart(ctx context.Context, id string) (bool, error) {
	faves, err := s.Favorites(ctx)
	if err != nil {
		return false, err
	}
	i := favoriteIndex(faves, id)
	if i < 0 {
		return false, nil
	}
	if _, err := s.AddToCart(ctx, faves[i]); err != nil {
		return false, err
	}
	return true, nil
}

// View returns what the cart page shows: the cart, the favorites that are
// not in the cart and the summary.
func (s *CartService) View(ctx context.Context) (models.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.readCart(ctx)
	inCart := make(map[string]struct{}, len(items))
	for _, it := range items {
		inCart[it.ID] = struct{}{}
	}

	var rest []models.FavoriteItem
	for _, f := range s.readFavorites(ctx) {
		if _, ok := inCart[f.ID]; !ok {
			rest = append(rest, f)
		}
	}

	qty, total := models.Summarize(items)
	return models.CartView{Items: items, Favorites: rest, Qty: qty, Total: total}, nil
}

// Checkout validates the delivery form and places the order by clearing
// the cart. Nothing changes when the form is invalid or the cart is empty.
func (s *CartService) Checkout(ctx context.Context, form models.DeliveryForm) (*models.Receipt, error) {
	if err := validation.ValidateDelivery(form); err != nil {
		return nil, err
	}

	var receipt *models.Receipt
	_, err := s.mutateCart(ctx, func(items []models.CartItem) ([]models.CartItem, bool) {
		if len(items) == 0 {
			return items, false
		}
		qty, total := models.Summarize(items)
		receipt = &models.Receipt{
			ID:        s.newID(),
			Items:     len(items),
			Qty:       qty,
			Total:     total,
			PlacedAt:  s.now(),
			Recipient: strings.Join(strings.Fields(form.FullName), " "),
		}
		return []models.CartItem{}, true
	})
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, ErrEmptyCart
	}

	s.log.Info(ctx, "order placed", "receipt", receipt.ID, "items", receipt.Items, "total", receipt.Total)
	return receipt, nil
}

// mutateCart runs one read-modify-write cycle on the cart. fn reports
// whether it changed anything; unchanged carts are not written back.
func (s *CartService) mutateCart(ctx context.Context, fn func([]models.CartItem) ([]models.CartItem, bool)) ([]models.CartItem, error) {
	s.mu.Lock()
	items, changed := fn(s.readCart(ctx))
	var err error
	if changed {
		err = storage.WriteExpiringJSON(ctx, s.store, KeyCart, items, s.ttl)
	}
	s.mu.Unlock()

	if err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	if changed {
		s.notify()
	}
	return items, nil
}

func (s *CartService) notify() {
	s.mu.Lock()
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

func (s *CartService) readCart(ctx context.Context) []models.CartItem {
	return readList(ctx, s, KeyCart, func(it models.CartItem) string { return it.ID })
}

func (s *CartService) readFavorites(ctx context.Context) []models.FavoriteItem {
	return readList(ctx, s, KeyFavorites, func(f models.FavoriteItem) string { return f.ID })
}

// readList decodes a stored collection entry by entry, so one malformed entry
// costs only itself. A value that is not a JSON array reads as empty.
func readList[T any](ctx context.Context, s *CartService, key string, id func(T) string) []T {
	raw, err := storage.ReadExpiringJSON(ctx, s.store, key, []json.RawMessage{})
	if err != nil {
		s.log.Warn(ctx, "collection unreadable, using empty list", "key", key, "error", err)
	}

	list := make([]T, 0, len(raw))
	for _, r := range raw {
		var v T
		if err := json.Unmarshal(r, &v); err != nil {
			s.log.Warn(ctx, "dropping undecodable stored item", "key", key, "error", err)
			continue
		}
		list = append(list, v)
	}
	return sanitize(ctx, s, list, id)
}

// sanitize drops entries that break the item rules and repeated ids, keeping
// the first occurrence.
func sanitize[T any](ctx context.Context, s *CartService, list []T, id func(T) string) []T {
	out := make([]T, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, v := range list {
		if err := s.validate.Struct(v); err != nil {
			s.log.Warn(ctx, "dropping stored item", "error", err)
			continue
		}
		if _, dup := seen[id(v)]; dup {
			s.log.Warn(ctx, "dropping duplicate stored item", "id", id(v))
			continue
		}
		seen[id(v)] = struct{}{}
		out = append(out, v)
	}
	return out
}

// addQty returns max(1, qty+delta) without wrapping around.
func addQty(qty, delta int) int {
	switch {
	case delta > 0 && qty > math.MaxInt-delta:
		return math.MaxInt
	case delta < 0 && qty < math.MinInt-delta:
		return 1
	}
	return max(1, qty+delta)
}

func cartIndex(items []models.CartItem, id string) int {
	return slices.IndexFunc(items, func(it models.CartItem) bool { return it.ID == id })
}

func favoriteIndex(faves []models.FavoriteItem, id string) int {
	return slices.IndexFunc(faves, func(f models.FavoriteItem) bool { return f.ID == id })
}
