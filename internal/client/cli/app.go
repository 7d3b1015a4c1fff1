package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ynitaziki/storefront/internal/client/catalog"
	"github.com/ynitaziki/storefront/internal/client/config"
	"github.com/ynitaziki/storefront/internal/client/models"
	"github.com/ynitaziki/storefront/internal/client/services"
	"github.com/ynitaziki/storefront/internal/client/storage"
	"github.com/ynitaziki/storefront/internal/client/view"
	"github.com/ynitaziki/storefront/internal/logging"
)

type authService interface {
	Register(ctx context.Context, username, email, password, confirm string) (*models.User, error)
	Login(ctx context.Context, login, password string) (*models.User, error)
	Logout(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	CurrentUsername(ctx context.Context) (string, error)
}

type profileService interface {
	Get(ctx context.Context) (models.Profile, error)
	UpdateField(ctx context.Context, field models.ProfileField, value string) (models.Profile, error)
	SetImage(ctx context.Context, slot models.ImageSlot, data string) (models.Profile, error)
}

type cartService interface {
	View(ctx context.Context) (models.CartView, error)
	Favorites(ctx context.Context) ([]models.FavoriteItem, error)
	AddToCart(ctx context.Context, p models.Product) ([]models.CartItem, error)
	Remove(ctx context.Context, id string) ([]models.CartItem, error)
	SetQuantity(ctx context.Context, id string, delta int) ([]models.CartItem, error)
	Clear(ctx context.Context) error
	ToggleFavorite(ctx context.Context, p models.Product) (bool, error)
	AddFavoriteToCart(ctx context.Context, id string) (bool, error)
	Checkout(ctx context.Context, form models.DeliveryForm) (*models.Receipt, error)
	Subscribe(fn func())
}

// Page is the screen the user is looking at.
type Page string

const (
	PageHome    Page = "home"
	PageCatalog Page = "catalog"
	PageCart    Page = "cart"
	PageProfile Page = "profile"
	PageSupport Page = "support"
)

type App struct {
	config         *config.Config
	authService    authService
	profileService profileService
	cartService    cartService
	catalog        *catalog.Catalog
	backend        *storage.Backend

	page   Page
	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the configured storage backend and catalog and wires the
// services.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	backend, err := storage.Open(ctx, c.StorageOptions(), logger)
	if err != nil {
		log.Printf("error opening local storage: %s", err.Error())
		return nil, err
	}

	cat, err := catalog.Open(c.CatalogPath)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	a := newApp(
		services.NewAuthService(backend.Durable, backend.Expiring, logger),
		services.NewProfileService(backend.Durable, logger),
		services.NewCartService(backend.Expiring, c.CookieTTL, logger),
		cat,
		bufio.NewReader(os.Stdin),
		os.Stdout,
	)
	a.config = c
	a.backend = backend
	return a, nil
}

func newApp(auth authService, profile profileService, cart cartService, cat *catalog.Catalog, reader *bufio.Reader, out io.Writer) *App {
	a := &App{
		authService:    auth,
		profileService: profile,
		cartService:    cart,
		catalog:        cat,
		page:           PageHome,
		reader:         reader,
		out:            out,
	}
	cart.Subscribe(a.onCartChanged)
	return a
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to ynitaziki (type 'help' for commands)")
	runREPL(ctx, a, func() string { return a.status(ctx) }, a.reader)
}

// Close releases the storage backend.
func (a *App) Close() {
	if a.backend == nil {
		return
	}
	if err := a.backend.Close(); err != nil {
		log.Printf("error closing local storage: %s", err.Error())
	}
	a.backend = nil
}

func (a *App) currentUser(ctx context.Context) string {
	name, err := a.authService.CurrentUsername(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return ""
	}
	return name
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.currentUser(ctx) != ""
}

// status is the header of the prompt: the avatar initial and title, or
// "guest".
func (a *App) status(ctx context.Context) string {
	initial, title := view.HeaderBadge(a.currentUser(ctx))
	if initial == "" {
		return "guest"
	}
	return fmt.Sprintf("[%s] %s", initial, title)
}

func (a *App) onCartChanged() {
	if a.page != PageCart {
		return
	}
	a.renderCart(context.Background())
}

func (a *App) say(args ...any) {
	fmt.Fprintln(a.out, args...)
}
