package services

// Storage keys. User, session and profile live in durable storage; cart and
// favorites in expiring storage.
const (
	KeyUser      = "ynitaziki_user"
	KeySession   = "ynitaziki_session"
	KeyProfile   = "ynitaziki_profile"
	KeyCart      = "ynitaziki_cart"
	KeyFavorites = "ynitaziki_faves"
)
