package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/ynitaziki/storefront/internal/client/models"
	"github.com/ynitaziki/storefront/internal/client/storage"
	"github.com/ynitaziki/storefront/internal/logging"
)

// ProfileService edits the profile record of the local user.
type ProfileService struct {
	mu      sync.Mutex
	durable storage.DurableStore
	log     logging.Logger
}

func NewProfileService(durable storage.DurableStore, log logging.Logger) *ProfileService {
	return &ProfileService{durable: durable, log: log.With("service", "profile")}
}

// Get returns the stored profile, or an empty one.
func (s *ProfileService) Get(ctx context.Context) (models.Profile, error) {
	p, err := storage.ReadDurableJSON(ctx, s.durable, KeyProfile, models.Profile{})
	if err != nil {
		s.log.Warn(ctx, "profile unreadable, using empty profile", "error", err)
	}
	return p, nil
}

// UpdateField merges one text field into the profile.
func (s *ProfileService) UpdateField(ctx context.Context, field models.ProfileField, value string) (models.Profile, error) {
	return s.update(ctx, func(p *models.Profile) error {
		switch field {
		case models.ProfileFieldName:
			p.Name = value
		case models.ProfileFieldPhone:
			p.Phone = value
		case models.ProfileFieldCity:
			p.City = value
		default:
			return fmt.Errorf("%w: %q", ErrUnknownProfileField, field)
		}
		return nil
	})
}

// SetImage stores image data (usually a data URL) in the avatar or cover
// slot. An empty value removes the image.
func (s *ProfileService) SetImage(ctx context.Context, slot models.ImageSlot, data string) (models.Profile, error) {
	return s.update(ctx, func(p *models.Profile) error {
		switch slot {
		case models.ImageSlotAvatar:
			p.Avatar = data
		case models.ImageSlotCover:
			p.Cover = data
		default:
			return fmt.Errorf("%w: %q", ErrUnknownImageSlot, slot)
		}
		return nil
	})
}

func (s *ProfileService) update(ctx context.Context, apply func(*models.Profile) error) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, _ := s.Get(ctx)
	if err := apply(&p); err != nil {
		return p, err
	}
	if err := storage.WriteDurableJSON(ctx, s.durable, KeyProfile, p); err != nil {
		return p, fmt.Errorf("save profile: %w", err)
	}
	return p, nil
}
