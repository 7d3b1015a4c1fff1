package cli

import (
	"context"
	"errors"

	"github.com/ynitaziki/storefront/internal/client/models"
	"github.com/ynitaziki/storefront/internal/client/services"
	"github.com/ynitaziki/storefront/internal/client/view"
)

// Profile opens the profile page. It needs a session.
func (a *App) Profile(ctx context.Context) error {
	if !a.requireLogin(ctx) {
		return errNotLoggedIn
	}
	a.page = PageProfile

	p, err := a.profileService.Get(ctx)
	if err != nil {
		return logged(err)
	}
	return view.RenderProfile(a.out, p)
}

// SetField edits one text field of the profile.
func (a *App) SetField(ctx context.Context, field, value string) error {
	if !a.requireLogin(ctx) {
		return errNotLoggedIn
	}
	a.page = PageProfile

	p, err := a.profileService.UpdateField(ctx, models.ProfileField(field), value)
	if errors.Is(err, services.ErrUnknownProfileField) {
		a.say("Unknown field:", field, "(use name, phone or city)")
		return err
	}
	if err != nil {
		return logged(err)
	}
	return view.RenderProfile(a.out, p)
}

// SetImage uploads the image at path into the avatar or cover slot.
func (a *App) SetImage(ctx context.Context, slot, path string) error {
	if !a.requireLogin(ctx) {
		return errNotLoggedIn
	}
	a.page = PageProfile

	data, err := services.LoadImageFile(path)
	switch {
	case errors.Is(err, services.ErrNotAnImage):
		a.say("That file is not an image.")
		return err
	case errors.Is(err, services.ErrImageTooLarge):
		a.say("Image is larger than 5 MiB.")
		return err
	case err != nil:
		return logged(err)
	}

	p, err := a.profileService.SetImage(ctx, models.ImageSlot(slot), data)
	if err != nil {
		return logged(err)
	}
	return view.RenderProfile(a.out, p)
}
