// Package services contains the application services of the storefront
// client: the local account and session (AuthService), the profile
// (ProfileService) and the cart with favorites (CartService).
//
// Every service persists through the storage package and is the only writer
// of its keys. Mutations are read-modify-write cycles over whole records and
// collections; inside one process they are serialised per service, across
// processes the last write wins.
package services
