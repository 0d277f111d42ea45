package models

// CartItem is one line in the cart, uniquely identified by (ID, Size).
// Size is "" for items that have no size option; two lines with the same
// product id but different sizes are distinct. Price is a snapshot taken
// when the line was added and is never re-fetched from the catalog.
type CartItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Size     string  `json:"size,omitempty"`
	Quantity int     `json:"quantity"`
}

// CartItemInput is the validated payload for adding an item to the cart.
type CartItemInput struct {
	ID       int     `json:"id" validate:"required,gt=0"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Image    string  `json:"image"`
	Size     string  `json:"size"`
	Quantity int     `json:"quantity" validate:"omitempty,gt=0"`
}
