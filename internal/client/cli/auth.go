package cli

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/ynitaziki/storefront/internal/client/services"
	"github.com/ynitaziki/storefront/internal/client/validation"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errNotLoggedIn = errors.New("not logged in")

const (
	msgAccountCreated = "Account created!"
	msgWelcomeBack    = "Welcome back!"
	msgLoggedOut      = "Logged out."
	msgAccountDeleted = "Account deleted."
	msgCancelled      = "Cancelled."
	msgLoginFirst     = "Please log in first."
)

// Register reads the registration form and creates the local account. The
// new user is logged in right away.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}

	if _, err := a.authService.Register(ctx, username, email, password, confirm); err != nil {
		a.report(err)
		return err
	}

	a.say(msgAccountCreated)
	return nil
}

// Login reads the login form. The identifier may be the email or the
// username.
func (a *App) Login(ctx context.Context) error {
	login, err := getSimpleText(a.reader, "Email or username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}

	if _, err := a.authService.Login(ctx, login, password); err != nil {
		a.report(err)
		return err
	}

	a.say(msgWelcomeBack)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	a.page = PageHome
	a.say(msgLoggedOut)
	return nil
}

// DeleteAccount asks for confirmation and then removes the account with
// everything stored for it.
func (a *App) DeleteAccount(ctx context.Context) error {
	if !a.requireLogin(ctx) {
		return errNotLoggedIn
	}

	answer, err := getSimpleText(a.reader, `Delete the account with profile, cart and favorites? Type "yes" to confirm`, a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		a.say(msgCancelled)
		return nil
	}

	if err := a.authService.DeleteAccount(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	a.page = PageHome
	a.say(msgAccountDeleted)
	return nil
}

func (a *App) requireLogin(ctx context.Context) bool {
	if a.isLoggedIn(ctx) {
		return true
	}
	a.say(msgLoginFirst)
	return false
}

// report shows form and auth failures as inline messages and logs anything
// else.
func (a *App) report(err error) {
	if msg := validation.Message(err); msg != "" {
		a.say(msg)
		return
	}
	if errors.Is(err, services.ErrAuth) {
		a.say(err.Error())
		return
	}
	log.Printf("error: %v", err)
}
