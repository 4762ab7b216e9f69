package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/electriclarrys/shop-api/internal/core/domain"
	"github.com/electriclarrys/shop-api/internal/core/ports"
)

type stubProductService struct {
	products   []domain.Product
	product    *domain.Product
	err        error
	lastFilter ports.ProductFilter
}

func (s *stubProductService) List(_ context.Context, filter ports.ProductFilter) ([]domain.Product, error) {
	s.lastFilter = filter
	return s.products, s.err
}

func (s *stubProductService) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) Create(_ context.Context, _ ports.ProductInput) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) Update(_ context.Context, _ string, _ ports.ProductInput) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) Delete(_ context.Context, _ string) error {
	return s.err
}

func TestProductHandler_List_Filters(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  ports.ProductFilter
	}{
		{"no filter", "", ports.ProductFilter{}},
		{"newest", "?new=true", ports.ProductFilter{Newest: true}},
		{"category", "?category=coffee", ports.ProductFilter{Category: "coffee"}},
		{"tag", "?tag=sale", ports.ProductFilter{Tag: "sale"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			svc := &stubProductService{products: []domain.Product{{Title: "beans"}}}
			h := NewProductHandler(svc)

			req := httptest.NewRequest(http.MethodGet, "/products"+tt.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := h.List(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if svc.lastFilter != tt.want {
				t.Errorf("filter = %+v, want %+v", svc.lastFilter, tt.want)
			}
		})
	}
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	e := echo.New()
	h := NewProductHandler(&stubProductService{err: domain.ErrProductNotFound})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestProductHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		e := echo.New()
		h := NewProductHandler(&stubProductService{
			product: &domain.Product{ID: "p1", Title: "beans", Price: 9.99},
		})

		c, rec := postJSON(e, "/products", `{"title":"beans","description":"dark roast","price":9.99}`)
		if err := h.Create(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", rec.Code)
		}

		var got domain.Product
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if got.Title != "beans" {
			t.Errorf("title = %q, want %q", got.Title, "beans")
		}
	})

	t.Run("duplicate title", func(t *testing.T) {
		e := echo.New()
		h := NewProductHandler(&stubProductService{err: domain.ErrProductExists})

		c, rec := postJSON(e, "/products", `{"title":"beans","description":"dark roast","price":9.99}`)
		if err := h.Create(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusConflict {
			t.Fatalf("status = %d, want 409", rec.Code)
		}
	})
}
