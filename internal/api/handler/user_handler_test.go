package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/electriclarrys/shop-api/internal/core/domain"
	"github.com/electriclarrys/shop-api/internal/core/ports"
)

type stubUserService struct {
	user       *domain.User
	err        error
	lastUpdate ports.UpdateUserInput
}

func (s *stubUserService) List(_ context.Context, _ bool) ([]domain.User, error) {
	if s.user == nil {
		return nil, s.err
	}
	return []domain.User{*s.user}, s.err
}

func (s *stubUserService) GetByID(_ context.Context, _ string) (*domain.User, error) {
	if s.user == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.user, nil
}

func (s *stubUserService) GetByUsername(_ context.Context, _ string) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubUserService) Create(_ context.Context, _ ports.CreateUserInput) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubUserService) Update(_ context.Context, _ string, in ports.UpdateUserInput) (*domain.User, error) {
	s.lastUpdate = in
	updated := *s.user
	updated.Username = in.Username
	updated.IsAdmin = in.IsAdmin
	updated.IsEmployee = in.IsEmployee
	updated.IsDeleted = in.IsDeleted
	return &updated, s.err
}

func (s *stubUserService) Delete(_ context.Context, _ string) error {
	return s.err
}

func (s *stubUserService) RegistrationStats(_ context.Context) ([]domain.MonthlyCount, error) {
	return nil, s.err
}

func putJSON(e *echo.Echo, id, body string) (echo.Context, func() int) {
	c, rec := postJSON(e, "/", body)
	c.SetPath("/users/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, func() int { return rec.Code }
}

func TestUserHandler_Update_RoleFlagsRequireAdmin(t *testing.T) {
	body := `{"username":"larry","email":"larry@example.com","is_admin":true,"is_employee":true}`

	t.Run("self-service update cannot grant roles", func(t *testing.T) {
		e := echo.New()
		svc := &stubUserService{user: &domain.User{
			ID: "u1", Username: "larry", IsAdmin: false, IsEmployee: false,
		}}
		h := NewUserHandler(svc, nil, nil)

		c, status := putJSON(e, "u1", body)
		setClaims(c, "u1", "larry", false)

		if err := h.Update(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if status() != http.StatusOK {
			t.Fatalf("status = %d, want 200", status())
		}
		if svc.lastUpdate.IsAdmin || svc.lastUpdate.IsEmployee {
			t.Errorf("stored flags = admin:%v employee:%v, want both preserved false",
				svc.lastUpdate.IsAdmin, svc.lastUpdate.IsEmployee)
		}
		if svc.lastUpdate.Email != "larry@example.com" {
			t.Errorf("email = %q, profile fields should still update", svc.lastUpdate.Email)
		}
	})

	t.Run("self-service update cannot undelete", func(t *testing.T) {
		e := echo.New()
		svc := &stubUserService{user: &domain.User{
			ID: "u1", Username: "larry", IsDeleted: true,
		}}
		h := NewUserHandler(svc, nil, nil)

		c, _ := putJSON(e, "u1", `{"username":"larry","is_deleted":false}`)
		setClaims(c, "u1", "larry", false)

		if err := h.Update(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if !svc.lastUpdate.IsDeleted {
			t.Error("is_deleted cleared by a non-admin caller")
		}
	})

	t.Run("admin update honors role flags", func(t *testing.T) {
		e := echo.New()
		svc := &stubUserService{user: &domain.User{
			ID: "u1", Username: "larry",
		}}
		h := NewUserHandler(svc, nil, nil)

		c, status := putJSON(e, "u1", body)
		setClaims(c, "admin-id", "root", true)

		if err := h.Update(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if status() != http.StatusOK {
			t.Fatalf("status = %d, want 200", status())
		}
		if !svc.lastUpdate.IsAdmin || !svc.lastUpdate.IsEmployee {
			t.Errorf("stored flags = admin:%v employee:%v, want both true",
				svc.lastUpdate.IsAdmin, svc.lastUpdate.IsEmployee)
		}
	})
}
