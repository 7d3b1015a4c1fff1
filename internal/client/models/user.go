// Package models defines the client-side records the storefront keeps on the
// device: the local account, its profile, cart and favorites line items.
package models

// User is the single local account. The password is kept as entered.
type User struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Profile is the editable profile of the local user. Every field is optional
// and edited independently.
type Profile struct {
	Name   string `json:"name,omitempty"`
	Phone  string `json:"phone,omitempty"`
	City   string `json:"city,omitempty"`
	Avatar string `json:"avatar,omitempty"`
	Cover  string `json:"cover,omitempty"`
}

// ProfileField names a text field of Profile.
type ProfileField string

const (
	ProfileFieldName  ProfileField = "name"
	ProfileFieldPhone ProfileField = "phone"
	ProfileFieldCity  ProfileField = "city"
)

// ImageSlot names an image field of Profile.
type ImageSlot string

const (
	ImageSlotAvatar ImageSlot = "avatar"
	ImageSlotCover  ImageSlot = "cover"
)
