package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/electriclarrys/shop-api/internal/core/domain"
	"github.com/electriclarrys/shop-api/internal/core/ports"
)

// UserService implements account administration. Deletion is a soft
// delete: the record stays for order history, the cart is dropped.
type UserService struct {
	repo       ports.UserRepository
	carts      ports.CartRepository
	bcryptCost int
	logger     zerolog.Logger
}

func NewUserService(repo ports.UserRepository, carts ports.CartRepository, bcryptCost int, logger zerolog.Logger) *UserService {
	if bcryptCost <= 0 {
		bcryptCost = 10
	}
	return &UserService{repo: repo, carts: carts, bcryptCost: bcryptCost, logger: logger}
}

func (s *UserService) List(ctx context.Context, newestOnly bool) ([]domain.User, error) {
	return s.repo.List(ctx, newestOnly)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		IsAdmin:      in.IsAdmin,
		IsEmployee:   in.IsEmployee,
		IsDeleted:    in.IsDeleted,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Bool("is_admin", created.IsAdmin).Msg("user created")
	return created, nil
}

func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	if in.Username == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Renaming onto a taken username is a conflict.
	if in.Username != user.Username {
		if existing, err := s.repo.FindByUsername(ctx, in.Username); err == nil && existing.ID != id {
			return nil, domain.ErrUserExists
		} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}

	user.Username = in.Username
	if in.Email != "" {
		user.Email = in.Email
	}
	user.IsAdmin = in.IsAdmin
	user.IsEmployee = in.IsEmployee
	user.IsDeleted = in.IsDeleted
	user.UpdatedAt = time.Now().UTC()

	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	return s.repo.Update(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	// Carts are ephemeral; orders stay so sales aggregations hold up.
	if err := s.carts.DeleteByUserID(ctx, id); err != nil && !errors.Is(err, domain.ErrCartNotFound) {
		s.logger.Warn().Err(err).Str("user_id", id).Msg("failed to drop cart for deleted user")
	}
	s.logger.Info().Str("user_id", id).Msg("user soft-deleted")
	return nil
}

func (s *UserService) RegistrationStats(ctx context.Context) ([]domain.MonthlyCount, error) {
	since := time.Now().UTC().AddDate(-1, 0, 0)
	return s.repo.RegistrationStats(ctx, since)
}
