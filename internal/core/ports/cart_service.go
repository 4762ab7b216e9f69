package ports

import (
	"context"

	"github.com/electriclarrys/shop-api/internal/core/domain"
)

type CartInput struct {
	UserID   string
	Products []domain.CartItem
}

type CartService interface {
	List(ctx context.Context) ([]domain.Cart, error)
	GetByID(ctx context.Context, id string) (*domain.Cart, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Cart, error)
	Create(ctx context.Context, in CartInput) (*domain.Cart, error)
	Update(ctx context.Context, id string, in CartInput) (*domain.Cart, error)
	Delete(ctx context.Context, id string) error
}
