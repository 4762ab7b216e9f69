package ports

import (
	"context"
	"time"

	"github.com/electriclarrys/shop-api/internal/core/domain"
)

// LoginResult carries the freshly minted token pair. Only the access
// token goes to the response body; the refresh token and its TTL exist
// solely so the handler can set the cookie.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	RefreshTTL   time.Duration
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type AuthService interface {
	// Login validates credentials and mints the token pair.
	// domain.ErrInvalidInput on missing fields; domain.ErrUnauthorized
	// for unknown or deleted accounts; domain.ErrInvalidCredentials on
	// a wrong password.
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// Register creates an account with no role flags set.
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)

	// Refresh redeems a refresh token for a new short-lived access
	// token. Role flags are re-read from storage, never copied from the
	// old token. Verify failures pass through as token package errors;
	// a vanished or soft-deleted account yields domain.ErrUnauthorized.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}
