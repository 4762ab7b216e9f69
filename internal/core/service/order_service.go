package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/electriclarrys/shop-api/internal/core/domain"
	"github.com/electriclarrys/shop-api/internal/core/ports"
)

type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger}
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

func (s *OrderService) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrderService) GetByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *OrderService) Create(ctx context.Context, in ports.OrderInput) (*domain.Order, error) {
	if in.UserID == "" || len(in.Products) == 0 {
		return nil, domain.ErrInvalidInput
	}

	status := in.Status
	if status == "" {
		status = domain.OrderStatusPending
	}

	now := time.Now().UTC()
	order := &domain.Order{
		UserID:     in.UserID,
		Products:   in.Products,
		TotalPrice: in.TotalPrice,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("order_id", created.ID).Str("user_id", created.UserID).Msg("order created")
	return created, nil
}

func (s *OrderService) Update(ctx context.Context, id string, in ports.OrderInput) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.UserID != "" {
		order.UserID = in.UserID
	}
	if in.Products != nil {
		order.Products = in.Products
	}
	if in.TotalPrice > 0 {
		order.TotalPrice = in.TotalPrice
	}
	if in.Status != "" {
		order.Status = in.Status
	}
	order.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, order)
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// MonthlySales aggregates revenue per month over the trailing two
// months, matching the storefront dashboard widget.
func (s *OrderService) MonthlySales(ctx context.Context) ([]domain.MonthlySales, error) {
	since := time.Now().UTC().AddDate(0, -2, 0)
	return s.repo.MonthlySales(ctx, since)
}

func (s *OrderService) TotalSales(ctx context.Context) (float64, error) {
	return s.repo.TotalSales(ctx)
}
