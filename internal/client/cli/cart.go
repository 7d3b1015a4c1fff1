package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/ynitaziki/storefront/internal/client/models"
	"github.com/ynitaziki/storefront/internal/client/services"
	"github.com/ynitaziki/storefront/internal/client/view"
)

const msgEmptyCart = "Your cart is empty."

// Cart opens the cart page.
func (a *App) Cart(ctx context.Context) error {
	a.page = PageCart
	return a.renderCart(ctx)
}

// Remove, Qty, ClearCart and FaveAdd are the controls of the cart page.
// The page is redrawn by the change notification of the cart service.

func (a *App) Remove(ctx context.Context, id string) error {
	a.page = PageCart
	if !a.inCart(ctx, id) {
		return nil
	}
	_, err := a.cartService.Remove(ctx, id)
	return logged(err)
}

func (a *App) Qty(ctx context.Context, id string, delta int) error {
	a.page = PageCart
	if !a.inCart(ctx, id) {
		return nil
	}
	_, err := a.cartService.SetQuantity(ctx, id, delta)
	return logged(err)
}

func (a *App) ClearCart(ctx context.Context) error {
	a.page = PageCart
	return logged(a.cartService.Clear(ctx))
}

func (a *App) FaveAdd(ctx context.Context, id string) error {
	a.page = PageCart
	added, err := a.cartService.AddFavoriteToCart(ctx, id)
	if err != nil {
		return logged(err)
	}
	if !added {
		a.say("Not in favorites:", id)
	}
	return nil
}

// Checkout reads the delivery form and places the order.
func (a *App) Checkout(ctx context.Context) error {
	a.page = PageCart

	var form models.DeliveryForm
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Full name", &form.FullName},
		{"Phone", &form.Phone},
		{"Region", &form.Region},
		{"City", &form.City},
		{"Address", &form.Address},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	receipt, err := a.cartService.Checkout(ctx, form)
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		a.say(msgEmptyCart)
		return err
	case err != nil:
		a.report(err)
		return err
	}

	a.say(fmt.Sprintf("Order placed! Receipt %s: %d pcs, total %s. Delivery to %s.",
		receipt.ID, receipt.Qty, view.FormatPrice(receipt.Total), receipt.Recipient))
	return nil
}

func (a *App) renderCart(ctx context.Context) error {
	v, err := a.cartService.View(ctx)
	if err != nil {
		return logged(err)
	}
	return view.RenderCart(a.out, v)
}

func (a *App) inCart(ctx context.Context, id string) bool {
	v, err := a.cartService.View(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return false
	}
	for _, it := range v.Items {
		if it.ID == id {
			return true
		}
	}
	a.say("Not in cart:", id)
	return false
}

func logged(err error) error {
	if err != nil {
		log.Printf("error: %v", err)
	}
	return err
}
