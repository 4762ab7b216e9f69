package domain

import "errors"

var (
	// ErrInvalidInput signals missing or malformed request data.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized is returned when the account does not exist or is
	// soft-deleted. The two cases are deliberately indistinguishable.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials is returned on a password mismatch. Same
	// status as ErrUnauthorized, distinct message.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")

	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product already exists")

	ErrCartNotFound  = errors.New("cart not found")
	ErrOrderNotFound = errors.New("order not found")

	// ErrPaymentGateway wraps failures reported by the payment provider.
	ErrPaymentGateway = errors.New("payment gateway error")
)
