package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/electriclarrys/shop-api/internal/core/domain"
	"github.com/electriclarrys/shop-api/internal/core/ports"
)

type stubOrderRepo struct {
	orders map[string]*domain.Order
	nextID int
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	clone := *order
	r.nextID++
	clone.ID = "order-" + strconv.Itoa(r.nextID)
	r.orders[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	if o, ok := r.orders[id]; ok {
		clone := *o
		return &clone, nil
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) FindByUserID(_ context.Context, userID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) List(_ context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubOrderRepo) Update(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if _, ok := r.orders[order.ID]; !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *order
	r.orders[order.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.orders[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *stubOrderRepo) MonthlySales(_ context.Context, since time.Time) ([]domain.MonthlySales, error) {
	buckets := make(map[int]float64)
	for _, o := range r.orders {
		if o.CreatedAt.After(since) {
			buckets[int(o.CreatedAt.Month())] += o.TotalPrice
		}
	}
	var out []domain.MonthlySales
	for m, total := range buckets {
		out = append(out, domain.MonthlySales{Month: m, TotalSales: total})
	}
	return out, nil
}

func (r *stubOrderRepo) TotalSales(_ context.Context) (float64, error) {
	var total float64
	for _, o := range r.orders {
		total += o.TotalPrice
	}
	return total, nil
}

func TestOrderService_Create_DefaultsStatus(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), zerolog.Nop())

	order, err := svc.Create(context.Background(), ports.OrderInput{
		UserID:     "user-1",
		Products:   []domain.CartItem{{ProductID: "p1", Quantity: 2}},
		TotalPrice: 19.99,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if order.Status != domain.OrderStatusPending {
		t.Fatalf("expected pending status, got %q", order.Status)
	}
}

func TestOrderService_Create_RequiresProducts(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.OrderInput{UserID: "user-1"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestOrderService_TotalSales(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, zerolog.Nop())

	for _, price := range []float64{10, 15.5, 4.5} {
		_, err := svc.Create(context.Background(), ports.OrderInput{
			UserID:     "user-1",
			Products:   []domain.CartItem{{ProductID: "p1", Quantity: 1}},
			TotalPrice: price,
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	total, err := svc.TotalSales(context.Background())
	if err != nil {
		t.Fatalf("total sales failed: %v", err)
	}
	if total != 30 {
		t.Fatalf("expected 30, got %v", total)
	}
}

func TestOrderService_Update_NotFound(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), zerolog.Nop())

	_, err := svc.Update(context.Background(), "missing", ports.OrderInput{Status: domain.OrderStatusPaid})
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
