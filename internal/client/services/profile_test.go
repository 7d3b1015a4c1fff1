package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ynitaziki/storefront/internal/client/models"
	"github.com/ynitaziki/storefront/internal/client/storage"
	"github.com/ynitaziki/storefront/internal/logging"
)

func TestProfileService_GetDefaultsToEmpty(t *testing.T) {
	f := newFixture()

	p, err := f.profile.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Profile{}, p)
}

func TestProfileService_UpdateFieldMerges(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.profile.UpdateField(ctx, models.ProfileFieldName, "Alice Smith")
	require.NoError(t, err)
	_, err = f.profile.UpdateField(ctx, models.ProfileFieldPhone, "+380 50 123 4567")
	require.NoError(t, err)
	_, err = f.profile.SetImage(ctx, models.ImageSlotAvatar, "data:image/png;base64,AAAA")
	require.NoError(t, err)
	p, err := f.profile.UpdateField(ctx, models.ProfileFieldCity, "Lviv")
	require.NoError(t, err)

	want := models.Profile{
		Name:   "Alice Smith",
		Phone:  "+380 50 123 4567",
		City:   "Lviv",
		Avatar: "data:image/png;base64,AAAA",
	}
	assert.Equal(t, want, p)

	got, err := f.profile.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProfileService_UnknownFieldAndSlot(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.profile.UpdateField(ctx, "email", "a@x.com")
	require.ErrorIs(t, err, ErrUnknownProfileField)

	_, err = f.profile.SetImage(ctx, "banner", "data:")
	require.ErrorIs(t, err, ErrUnknownImageSlot)

	_, ok, _ := f.mem.Durable().Get(ctx, KeyProfile)
	assert.False(t, ok)
}

func TestProfileService_CorruptRecordIsReplaced(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	require.NoError(t, f.mem.Durable().Set(ctx, KeyProfile, "not json"))

	p, err := f.profile.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Profile{}, p)

	p, err = f.profile.SetImage(ctx, models.ImageSlotCover, "data:image/gif;base64,R0lG")
	require.NoError(t, err)
	assert.Equal(t, models.Profile{Cover: "data:image/gif;base64,R0lG"}, p)
}

func TestProfileService_SaveFails(t *testing.T) {
	mem := storage.NewMemoryStore()
	s := NewProfileService(failingDurable{mem.Durable()}, logging.Nop())

	_, err := s.UpdateField(context.Background(), models.ProfileFieldName, "Alice")
	require.ErrorIs(t, err, errStore)
}
