package services

import "errors"

var (
	// ErrAuth is wrapped by every authentication failure.
	ErrAuth = errors.New("authentication failed")

	ErrNoAccount          = authError("No account found. Please register.")
	ErrInvalidCredentials = authError("Incorrect login or password.")

	ErrUnknownProfileField = errors.New("unknown profile field")
	ErrUnknownImageSlot    = errors.New("unknown image slot")
	ErrNotAnImage          = errors.New("file is not an image")
	ErrImageTooLarge       = errors.New("image is too large")

	ErrEmptyCart      = errors.New("cart is empty")
	ErrInvalidProduct = errors.New("invalid product")
)

type authErr struct{ msg string }

func (e *authErr) Error() string { return e.msg }
func (e *authErr) Unwrap() error { return ErrAuth }

func authError(msg string) error {
	return &authErr{msg: msg}
}
