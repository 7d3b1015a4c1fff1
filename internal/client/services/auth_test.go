package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ynitaziki/storefront/internal/client/models"
	"github.com/ynitaziki/storefront/internal/client/storage"
	"github.com/ynitaziki/storefront/internal/client/validation"
	"github.com/ynitaziki/storefront/internal/logging"
)

func TestAuthService_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	user, err := f.auth.Register(ctx, "alice", "a@x.com", "secret1", "secret1")
	require.NoError(t, err)
	assert.Equal(t, &models.User{Username: "alice", Email: "a@x.com", Password: "secret1"}, user)

	name, err := f.auth.CurrentUsername(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", name)

	_, err = f.auth.Login(ctx, "a@x.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.ErrorIs(t, err, ErrAuth)
	assert.Equal(t, "Incorrect login or password.", err.Error())

	user, err = f.auth.Login(ctx, "ALICE", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = f.auth.Login(ctx, "  A@X.com ", "secret1")
	require.NoError(t, err)
}

func TestAuthService_Register_ValidationLeavesStorageUntouched(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name                             string
		username, email, password, again string
		field                            string
	}{
		{"missing username", "  ", "a@x.com", "secret1", "secret1", "form"},
		{"missing email", "alice", "", "secret1", "secret1", "form"},
		{"short password", "alice", "a@x.com", "12345", "12345", "password"},
		{"mismatch", "alice", "a@x.com", "secret1", "secret2", "confirm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.auth.Register(ctx, tt.username, tt.email, tt.password, tt.again)
			require.ErrorIs(t, err, validation.ErrValidation)

			var fe *validation.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)

			_, ok, _ := f.mem.Durable().Get(ctx, KeyUser)
			assert.False(t, ok)
			_, ok, _ = f.mem.Durable().Get(ctx, KeySession)
			assert.False(t, ok)
		})
	}
}

func TestAuthService_Register_OverwritesPreviousUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.auth.Register(ctx, "alice", "a@x.com", "secret1", "secret1")
	require.NoError(t, err)
	_, err = f.auth.Register(ctx, "bob", "b@x.com", "hunter22", "hunter22")
	require.NoError(t, err)

	_, err = f.auth.Login(ctx, "alice", "secret1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.auth.Login(ctx, "b@x.com", "hunter22")
	require.NoError(t, err)
}

func TestAuthService_Login_NoAccount(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.auth.Login(ctx, "alice", "secret1")
	require.ErrorIs(t, err, ErrNoAccount)

	// an unreadable record counts as no account
	require.NoError(t, f.mem.Durable().Set(ctx, KeyUser, "{broken"))
	_, err = f.auth.Login(ctx, "alice", "secret1")
	require.ErrorIs(t, err, ErrNoAccount)
}

func TestAuthService_Login_IncompleteRecordIsNoAccount(t *testing.T) {
	ctx := context.Background()

	for _, raw := range []string{`{}`, `null`, `{"username":"alice","email":"a@x.com"}`} {
		t.Run(raw, func(t *testing.T) {
			f := newFixture()
			require.NoError(t, f.mem.Durable().Set(ctx, KeyUser, raw))

			user, err := f.auth.Login(ctx, "", "")
			require.ErrorIs(t, err, ErrNoAccount)
			assert.Nil(t, user)

			username, err := f.auth.CurrentUsername(ctx)
			require.NoError(t, err)
			assert.Empty(t, username)
		})
	}
}

func TestAuthService_Login_PasswordIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.auth.Register(ctx, "alice", "a@x.com", "Secret1", "Secret1")
	require.NoError(t, err)

	_, err = f.auth.Login(ctx, "alice", "secret1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LogoutKeepsAccountAndProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.auth.Register(ctx, "alice", "a@x.com", "secret1", "secret1")
	require.NoError(t, err)
	_, err = f.profile.UpdateField(ctx, models.ProfileFieldCity, "Kyiv")
	require.NoError(t, err)

	require.NoError(t, f.auth.Logout(ctx))

	name, err := f.auth.CurrentUsername(ctx)
	require.NoError(t, err)
	assert.Empty(t, name)

	p, err := f.profile.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Kyiv", p.City)

	_, err = f.auth.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
}

func TestAuthService_DeleteAccountWipesEverything(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.auth.Register(ctx, "alice", "a@x.com", "secret1", "secret1")
	require.NoError(t, err)
	_, err = f.profile.UpdateField(ctx, models.ProfileFieldName, "Alice")
	require.NoError(t, err)
	_, err = f.cart.AddToCart(ctx, models.Product{ID: "p1", Price: 10})
	require.NoError(t, err)
	_, err = f.cart.ToggleFavorite(ctx, models.Product{ID: "p2", Price: 5})
	require.NoError(t, err)

	require.NoError(t, f.auth.DeleteAccount(ctx))

	for _, key := range []string{KeyUser, KeySession, KeyProfile} {
		_, ok, err := f.mem.Durable().Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}
	for _, key := range []string{KeyCart, KeyFavorites} {
		_, ok, err := f.mem.Expiring().Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}

	_, err = f.auth.Login(ctx, "alice", "secret1")
	require.ErrorIs(t, err, ErrNoAccount)
}

func TestAuthService_DeleteAccount_ReportsEveryFailure(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()
	auth := NewAuthService(failingDurable{mem.Durable()}, failingExpiring{mem.Expiring()}, logging.Nop())

	err := auth.DeleteAccount(ctx)
	require.ErrorIs(t, err, errStore)
	assert.Contains(t, err.Error(), "delete account")
}

func TestAuthService_Register_SaveFails(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()
	auth := NewAuthService(failingDurable{mem.Durable()}, mem.Expiring(), logging.Nop())

	_, err := auth.Register(ctx, "alice", "a@x.com", "secret1", "secret1")
	require.ErrorIs(t, err, errStore)
}
