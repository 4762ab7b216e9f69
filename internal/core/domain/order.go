package domain

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

// Order is a placed order. Orders survive account deletion so that sales
// aggregations stay correct; they reference the user by id only.
type Order struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Products   []CartItem `json:"products"`
	TotalPrice float64    `json:"total_price"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// MonthlySales is one bucket of the monthly revenue aggregation.
type MonthlySales struct {
	Month      int     `json:"month"`
	TotalSales float64 `json:"total_sales"`
}
