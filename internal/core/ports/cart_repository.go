package ports

import (
	"context"

	"github.com/electriclarrys/shop-api/internal/core/domain"
)

type CartRepository interface {
	Create(ctx context.Context, cart *domain.Cart) (*domain.Cart, error)
	FindByID(ctx context.Context, id string) (*domain.Cart, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Cart, error)
	List(ctx context.Context) ([]domain.Cart, error)
	Update(ctx context.Context, cart *domain.Cart) (*domain.Cart, error)
	Delete(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID string) error
}
