package ports

import (
	"context"

	"github.com/electriclarrys/shop-api/internal/core/domain"
)

type CreateUserInput struct {
	Username   string
	Email      string
	Password   string
	IsAdmin    bool
	IsEmployee bool
	IsDeleted  bool
}

// UpdateUserInput mirrors CreateUserInput; an empty Password leaves the
// stored hash untouched.
type UpdateUserInput struct {
	Username   string
	Email      string
	Password   string
	IsAdmin    bool
	IsEmployee bool
	IsDeleted  bool
}

type UserService interface {
	List(ctx context.Context, newestOnly bool) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	// Delete soft-deletes the account and drops its cart. Orders are
	// kept for sales history.
	Delete(ctx context.Context, id string) error
	RegistrationStats(ctx context.Context) ([]domain.MonthlyCount, error)
}
