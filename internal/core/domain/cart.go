package domain

import "time"

// CartItem references a product plus the desired quantity.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Cart is a user's open shopping cart. One cart per user; carts are
// ephemeral and removed when the owning account is deleted.
type Cart struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Products  []CartItem `json:"products"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
