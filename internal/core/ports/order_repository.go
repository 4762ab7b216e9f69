package ports

import (
	"context"
	"time"

	"github.com/electriclarrys/shop-api/internal/core/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Update(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
	MonthlySales(ctx context.Context, since time.Time) ([]domain.MonthlySales, error)
	TotalSales(ctx context.Context) (float64, error)
}
