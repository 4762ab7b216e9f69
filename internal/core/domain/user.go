package domain

import "time"

// User models a store account. The role flags map directly onto the
// capability gates: IsEmployee unlocks catalog and order management,
// IsAdmin unlocks everything. IsDeleted is a soft-delete marker: the
// record stays in storage for order history, but the account must never
// authenticate again.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	IsEmployee   bool      `json:"is_employee"`
	IsDeleted    bool      `json:"is_deleted"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MonthlyCount is one bucket of a per-month aggregation (registrations
// per month over the trailing year). Month is 1-12.
type MonthlyCount struct {
	Month int   `json:"month"`
	Total int64 `json:"total"`
}
