package models

import "time"

// CartItem carries a full product snapshot, not just an id: totals must be
// computable from the prices the customer saw when the item went in.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the view returned to the presentation layer; Total and ItemCount
// are recomputed on every read, never stored.
type Cart struct {
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
}

type WishlistItem struct {
	Product Product   `json:"product"`
	AddedAt time.Time `json:"addedAt"`
}

type Wishlist struct {
	Items []WishlistItem `json:"items"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

type AddWishlistItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}
