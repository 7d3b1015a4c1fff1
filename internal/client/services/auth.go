package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ynitaziki/storefront/internal/client/models"
	"github.com/ynitaziki/storefront/internal/client/storage"
	"github.com/ynitaziki/storefront/internal/client/validation"
	"github.com/ynitaziki/storefront/internal/logging"
)

// AuthService manages the single local account and the session marker.
//
// The account is stored as entered, password included; there is no server
// to verify against.
type AuthService struct {
	durable  storage.DurableStore
	expiring storage.ExpiringStore
	validate *validator.Validate
	log      logging.Logger
}

func NewAuthService(durable storage.DurableStore, expiring storage.ExpiringStore, log logging.Logger) *AuthService {
	return &AuthService{
		durable:  durable,
		expiring: expiring,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log.With("service", "auth"),
	}
}

// Register validates the form, replaces any stored account with the new one
// and logs it in.
func (s *AuthService) Register(ctx context.Context, username, email, password, confirm string) (*models.User, error) {
	if err := validation.ValidateRegistration(username, email, password, confirm); err != nil {
		return nil, err
	}

	user := &models.User{
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
		Password: password,
	}

	if err := storage.WriteDurableJSON(ctx, s.durable, KeyUser, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	if err := s.durable.Set(ctx, KeySession, user.Username); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.log.Info(ctx, "account created", "username", user.Username)
	return user, nil
}

// Login matches the identifier against the stored email or username, both
// case-insensitively, and the password exactly.
func (s *AuthService) Login(ctx context.Context, login, password string) (*models.User, error) {
	user := s.storedUser(ctx)
	if user == nil {
		return nil, ErrNoAccount
	}

	id := strings.ToLower(strings.TrimSpace(login))
	idMatches := id == strings.ToLower(user.Email) || id == strings.ToLower(user.Username)
	if !idMatches || password != user.Password {
		s.log.Info(ctx, "login rejected")
		return nil, ErrInvalidCredentials
	}

	if err := s.durable.Set(ctx, KeySession, user.Username); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.log.Info(ctx, "logged in", "username", user.Username)
	return user, nil
}

// Logout ends the session. Account and profile stay.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.durable.Remove(ctx, KeySession); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// DeleteAccount wipes the account, session, profile, cart and favorites.
// Every key is attempted even if an earlier one fails.
func (s *AuthService) DeleteAccount(ctx context.Context) error {
	var errs []error
	for _, key := range []string{KeyUser, KeySession, KeyProfile} {
		if err := s.durable.Remove(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	for _, key := range []string{KeyCart, KeyFavorites} {
		if err := s.expiring.Clear(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	s.log.Info(ctx, "account deleted")
	return nil
}

// CurrentUsername returns the session marker, "" when nobody is logged in.
// The marker is not checked against the stored account.
func (s *AuthService) CurrentUsername(ctx context.Context) (string, error) {
	v, _, err := s.durable.Get(ctx, KeySession)
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}
	return v, nil
}

// storedUser returns the stored account, or nil when there is none or the
// record is unreadable or incomplete.
func (s *AuthService) storedUser(ctx context.Context) *models.User {
	user, err := storage.ReadDurableJSON[*models.User](ctx, s.durable, KeyUser, nil)
	if err != nil {
		s.log.Warn(ctx, "stored account unreadable", "error", err)
		return nil
	}
	if user == nil {
		return nil
	}
	if err := s.validate.Struct(user); err != nil {
		s.log.Warn(ctx, "stored account incomplete", "error", err)
		return nil
	}
	return user
}
