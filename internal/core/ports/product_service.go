package ports

import (
	"context"

	"github.com/electriclarrys/shop-api/internal/core/domain"
)

type ProductInput struct {
	Title       string
	Description string
	Price       float64
	Image       string
	Categories  []string
	Details     []string
	Tags        []string
	Quantity    int
	InStock     bool
}

type ProductService interface {
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
