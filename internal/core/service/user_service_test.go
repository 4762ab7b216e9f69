package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/electriclarrys/shop-api/internal/core/domain"
	"github.com/electriclarrys/shop-api/internal/core/ports"
)

type stubCartRepo struct {
	carts map[string]*domain.Cart // keyed by cart id
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{carts: make(map[string]*domain.Cart)}
}

func (r *stubCartRepo) Create(_ context.Context, cart *domain.Cart) (*domain.Cart, error) {
	clone := *cart
	if clone.ID == "" {
		clone.ID = "cart-" + cart.UserID
	}
	r.carts[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCartRepo) FindByID(_ context.Context, id string) (*domain.Cart, error) {
	if c, ok := r.carts[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrCartNotFound
}

func (r *stubCartRepo) FindByUserID(_ context.Context, userID string) (*domain.Cart, error) {
	for _, c := range r.carts {
		if c.UserID == userID {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCartNotFound
}

func (r *stubCartRepo) List(_ context.Context) ([]domain.Cart, error) {
	out := make([]domain.Cart, 0, len(r.carts))
	for _, c := range r.carts {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCartRepo) Update(_ context.Context, cart *domain.Cart) (*domain.Cart, error) {
	if _, ok := r.carts[cart.ID]; !ok {
		return nil, domain.ErrCartNotFound
	}
	clone := *cart
	r.carts[cart.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCartRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.carts[id]; !ok {
		return domain.ErrCartNotFound
	}
	delete(r.carts, id)
	return nil
}

func (r *stubCartRepo) DeleteByUserID(_ context.Context, userID string) error {
	for id, c := range r.carts {
		if c.UserID == userID {
			delete(r.carts, id)
			return nil
		}
	}
	return domain.ErrCartNotFound
}

func TestUserService_Create_GrantsRoleFlags(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, newStubCartRepo(), bcrypt.MinCost, zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "clerk", Password: "pw", IsEmployee: true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !user.IsEmployee || user.IsAdmin {
		t.Fatalf("unexpected role flags: %+v", user)
	}
}

func TestUserService_Update_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, newStubCartRepo(), bcrypt.MinCost, zerolog.Nop())

	a, _ := repo.Create(context.Background(), &domain.User{Username: "alice", PasswordHash: "x"})
	_, _ = repo.Create(context.Background(), &domain.User{Username: "bob", PasswordHash: "x"})

	_, err := svc.Update(context.Background(), a.ID, ports.UpdateUserInput{Username: "bob"})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, newStubCartRepo(), bcrypt.MinCost, zerolog.Nop())

	created, _ := repo.Create(context.Background(), &domain.User{Username: "alice", PasswordHash: "old"})

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{
		Username: "alice", Password: "newpw",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpw")); err != nil {
		t.Fatalf("password was not re-hashed: %v", err)
	}
}

func TestUserService_Delete_SoftDeletesAndDropsCart(t *testing.T) {
	repo := newStubUserRepo()
	carts := newStubCartRepo()
	svc := NewUserService(repo, carts, bcrypt.MinCost, zerolog.Nop())

	created, _ := repo.Create(context.Background(), &domain.User{Username: "alice", PasswordHash: "x"})
	_, _ = carts.Create(context.Background(), &domain.Cart{UserID: created.ID})

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	user, err := repo.FindByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("record must survive soft delete: %v", err)
	}
	if !user.IsDeleted {
		t.Fatalf("expected is_deleted to be set")
	}
	if _, err := carts.FindByUserID(context.Background(), created.ID); !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected cart to be removed, got %v", err)
	}
}
