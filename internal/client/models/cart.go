package models

// Product is what a product card offers to the cart and favorites.
type Product struct {
	ID    string  `json:"id" validate:"required"`
	Name  string  `json:"name"`
	Price float64 `json:"price" validate:"gte=0"`
	Image string  `json:"image"`
}

// CartItem is a product with a quantity. Name, price and image are cached at
// the time of the first add.
type CartItem struct {
	ID    string  `json:"id" validate:"required"`
	Name  string  `json:"name"`
	Price float64 `json:"price" validate:"gte=0"`
	Image string  `json:"image"`
	Qty   int     `json:"qty" validate:"gte=1"`
}

// FavoriteItem is a saved product without quantity.
type FavoriteItem = Product

// Product returns the product data of the line item.
func (c CartItem) Product() Product {
	return Product{ID: c.ID, Name: c.Name, Price: c.Price, Image: c.Image}
}

// LineTotal is qty × price.
func (c CartItem) LineTotal() float64 {
	return float64(c.Qty) * c.Price
}

// CartView is everything the cart page shows.
type CartView struct {
	Items []CartItem
	// Favorites holds saved products that are not in the cart.
	Favorites []FavoriteItem
	Qty       int
	Total     float64
}

// Summarize returns the total quantity and the total price of items.
func Summarize(items []CartItem) (qty int, total float64) {
	for _, it := range items {
		qty += it.Qty
		total += it.LineTotal()
	}
	return qty, total
}
