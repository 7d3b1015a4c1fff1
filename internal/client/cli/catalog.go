package cli

import (
	"context"
	"errors"
	"log"

	"github.com/ynitaziki/storefront/internal/client/catalog"
	"github.com/ynitaziki/storefront/internal/client/models"
	"github.com/ynitaziki/storefront/internal/client/view"
)

// Products lists the catalog, filtered by query when it is not blank.
// Favorites are marked.
func (a *App) Products(ctx context.Context, query string) error {
	a.page = PageCatalog

	faves, err := a.cartService.Favorites(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	marked := make(map[string]bool, len(faves))
	for _, f := range faves {
		marked[f.ID] = true
	}

	return view.RenderProducts(a.out, a.catalog.Search(query), marked)
}

// Add is the "add to cart" button of a product card.
func (a *App) Add(ctx context.Context, id string) error {
	p, ok := a.product(id)
	if !ok {
		return catalog.ErrProductNotFound
	}

	items, err := a.cartService.AddToCart(ctx, p)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for _, it := range items {
		if it.ID == p.ID {
			a.say("Added:", p.Name, "(qty", it.Qty, "in cart)")
		}
	}
	return nil
}

// Fave is the heart button of a product card.
func (a *App) Fave(ctx context.Context, id string) error {
	p, ok := a.product(id)
	if !ok {
		return catalog.ErrProductNotFound
	}

	active, err := a.cartService.ToggleFavorite(ctx, p)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if active {
		a.say("Saved to favorites:", p.Name)
	} else {
		a.say("Removed from favorites:", p.Name)
	}
	return nil
}

func (a *App) product(id string) (models.Product, bool) {
	p, err := a.catalog.Get(id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		a.say("No such product:", id)
		return models.Product{}, false
	}
	return p, true
}
