package domain

import "time"

// Product is a catalog entry. Title is unique across the catalog,
// enforced by a unique index at the storage layer.
type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image,omitempty"`
	Categories  []string  `json:"categories,omitempty"`
	Details     []string  `json:"details,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Quantity    int       `json:"quantity"`
	InStock     bool      `json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
