package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/electriclarrys/shop-api/internal/core/domain"
	"github.com/electriclarrys/shop-api/internal/core/ports"
)

type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) List(ctx context.Context, filter ports.ProductFilter) ([]domain.Product, error) {
	return s.repo.List(ctx, filter)
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	if in.Title == "" || in.Description == "" || in.Price <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	quantity := in.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	product := &domain.Product{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Categories:  in.Categories,
		Details:     in.Details,
		Tags:        in.Tags,
		Quantity:    quantity,
		InStock:     in.InStock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("title", created.Title).Msg("product created")
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id string, in ports.ProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		product.Title = in.Title
	}
	if in.Description != "" {
		product.Description = in.Description
	}
	if in.Price > 0 {
		product.Price = in.Price
	}
	if in.Image != "" {
		product.Image = in.Image
	}
	if in.Categories != nil {
		product.Categories = in.Categories
	}
	if in.Details != nil {
		product.Details = in.Details
	}
	if in.Tags != nil {
		product.Tags = in.Tags
	}
	if in.Quantity > 0 {
		product.Quantity = in.Quantity
	}
	product.InStock = in.InStock
	product.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, product)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
