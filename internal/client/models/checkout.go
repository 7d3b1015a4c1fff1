package models

import "time"

// DeliveryForm holds the raw strings of the delivery form.
type DeliveryForm struct {
	FullName string
	Phone    string
	Region   string
	City     string
	Address  string
}

// Receipt confirms a checkout. It is shown to the user and not stored.
type Receipt struct {
	ID        string
	Items     int
	Qty       int
	Total     float64
	PlacedAt  time.Time
	Recipient string
}
