package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	apimw "github.com/electriclarrys/shop-api/internal/api/middleware"
	"github.com/electriclarrys/shop-api/internal/core/domain"
	"github.com/electriclarrys/shop-api/internal/core/ports"
)

type stubCartService struct {
	cart    *domain.Cart
	err     error
	lastIn  ports.CartInput
	deleted string
}

func (s *stubCartService) List(_ context.Context) ([]domain.Cart, error) {
	if s.cart == nil {
		return nil, s.err
	}
	return []domain.Cart{*s.cart}, s.err
}

func (s *stubCartService) GetByID(_ context.Context, _ string) (*domain.Cart, error) {
	if s.cart == nil {
		return nil, domain.ErrCartNotFound
	}
	return s.cart, nil
}

func (s *stubCartService) GetByUserID(_ context.Context, _ string) (*domain.Cart, error) {
	return s.cart, s.err
}

func (s *stubCartService) Create(_ context.Context, in ports.CartInput) (*domain.Cart, error) {
	s.lastIn = in
	return s.cart, s.err
}

func (s *stubCartService) Update(_ context.Context, _ string, in ports.CartInput) (*domain.Cart, error) {
	s.lastIn = in
	return s.cart, s.err
}

func (s *stubCartService) Delete(_ context.Context, id string) error {
	s.deleted = id
	return s.err
}

func setClaims(c echo.Context, userID, username string, isAdmin bool) {
	c.Set(apimw.CtxUserID, userID)
	c.Set(apimw.CtxUsername, username)
	c.Set(apimw.CtxIsAdmin, isAdmin)
}

func TestCartHandler_Create_ForcesOwner(t *testing.T) {
	e := echo.New()
	svc := &stubCartService{cart: &domain.Cart{ID: "c1", UserID: "u1"}}
	h := NewCartHandler(svc)

	// A customer naming someone else's user id still gets a cart of
	// their own.
	c, rec := postJSON(e, "/carts", `{"user_id":"someone-else","products":[{"product_id":"p1","quantity":2}]}`)
	setClaims(c, "u1", "larry", false)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if svc.lastIn.UserID != "u1" {
		t.Errorf("cart owner = %q, want caller's id", svc.lastIn.UserID)
	}
}

func TestCartHandler_Create_AdminMayActForOthers(t *testing.T) {
	e := echo.New()
	svc := &stubCartService{cart: &domain.Cart{ID: "c1", UserID: "u2"}}
	h := NewCartHandler(svc)

	c, _ := postJSON(e, "/carts", `{"user_id":"u2","products":[]}`)
	setClaims(c, "admin-id", "root", true)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.lastIn.UserID != "u2" {
		t.Errorf("cart owner = %q, want u2", svc.lastIn.UserID)
	}
}

func TestCartHandler_Update_OwnershipGate(t *testing.T) {
	tests := []struct {
		name       string
		callerID   string
		isAdmin    bool
		wantStatus int
	}{
		{"owner allowed", "u1", false, http.StatusOK},
		{"admin allowed", "other", true, http.StatusOK},
		{"stranger denied", "other", false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			svc := &stubCartService{cart: &domain.Cart{ID: "c1", UserID: "u1"}}
			h := NewCartHandler(svc)

			c, rec := postJSON(e, "/", `{"products":[]}`)
			c.SetPath("/carts/:id")
			c.SetParamNames("id")
			c.SetParamValues("c1")
			setClaims(c, tt.callerID, "someone", tt.isAdmin)

			err := h.Update(c)
			status := rec.Code
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			} else if err != nil {
				t.Fatalf("handler error: %v", err)
			}

			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
		})
	}
}

func TestCartHandler_Delete_StrangerDenied(t *testing.T) {
	e := echo.New()
	svc := &stubCartService{cart: &domain.Cart{ID: "c1", UserID: "u1"}}
	h := NewCartHandler(svc)

	c, _ := postJSON(e, "/", ``)
	c.SetPath("/carts/:id")
	c.SetParamNames("id")
	c.SetParamValues("c1")
	setClaims(c, "intruder", "someone", false)

	err := h.Delete(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401 HTTPError", err)
	}
	if svc.deleted != "" {
		t.Errorf("delete reached the service for id %q", svc.deleted)
	}
}
