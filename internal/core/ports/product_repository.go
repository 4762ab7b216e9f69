package ports

import (
	"context"

	"github.com/electriclarrys/shop-api/internal/core/domain"
)

// ProductFilter narrows catalog listings. Newest returns only the most
// recently added product; Category and Tag filter by membership.
type ProductFilter struct {
	Newest   bool
	Category string
	Tag      string
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
