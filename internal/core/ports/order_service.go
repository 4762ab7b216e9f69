package ports

import (
	"context"

	"github.com/electriclarrys/shop-api/internal/core/domain"
)

type OrderInput struct {
	UserID     string
	Products   []domain.CartItem
	TotalPrice float64
	Status     string
}

type OrderService interface {
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.Order, error)
	Create(ctx context.Context, in OrderInput) (*domain.Order, error)
	Update(ctx context.Context, id string, in OrderInput) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
	MonthlySales(ctx context.Context) ([]domain.MonthlySales, error)
	TotalSales(ctx context.Context) (float64, error)
}
