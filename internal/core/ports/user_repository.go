package ports

import (
	"context"
	"time"

	"github.com/electriclarrys/shop-api/internal/core/domain"
)

// UserRepository defines persistence for store accounts. Username
// uniqueness is enforced by the store's unique index; Create must
// surface a late duplicate-key failure as domain.ErrUserExists so the
// registration race resolves to a Conflict, not a 500.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, newestOnly bool) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	SoftDelete(ctx context.Context, id string) error
	RegistrationStats(ctx context.Context, since time.Time) ([]domain.MonthlyCount, error)
}
