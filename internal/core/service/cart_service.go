package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/electriclarrys/shop-api/internal/core/domain"
	"github.com/electriclarrys/shop-api/internal/core/ports"
)

type CartService struct {
	repo   ports.CartRepository
	logger zerolog.Logger
}

func NewCartService(repo ports.CartRepository, logger zerolog.Logger) *CartService {
	return &CartService{repo: repo, logger: logger}
}

func (s *CartService) List(ctx context.Context) ([]domain.Cart, error) {
	return s.repo.List(ctx)
}

func (s *CartService) GetByID(ctx context.Context, id string) (*domain.Cart, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CartService) GetByUserID(ctx context.Context, userID string) (*domain.Cart, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *CartService) Create(ctx context.Context, in ports.CartInput) (*domain.Cart, error) {
	if in.UserID == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	cart := &domain.Cart{
		UserID:    in.UserID,
		Products:  in.Products,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.repo.Create(ctx, cart)
}

func (s *CartService) Update(ctx context.Context, id string, in ports.CartInput) (*domain.Cart, error) {
	cart, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.UserID != "" {
		cart.UserID = in.UserID
	}
	cart.Products = in.Products
	cart.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, cart)
}

func (s *CartService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
