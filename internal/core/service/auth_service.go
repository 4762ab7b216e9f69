package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/electriclarrys/shop-api/internal/core/domain"
	"github.com/electriclarrys/shop-api/internal/core/ports"
	"github.com/electriclarrys/shop-api/internal/token"
)

// AuthConfig bundles the token lifetimes and hashing cost. The two
// access TTLs are intentionally independent: login mints a 15 minute
// token, redeeming a refresh token mints a much shorter one.
type AuthConfig struct {
	AccessTTL        time.Duration
	RefreshAccessTTL time.Duration
	RefreshTTL       time.Duration
	BcryptCost       int
}

// AuthService implements login, registration and token refresh. It is
// stateless: all session state lives in the signed tokens themselves.
type AuthService struct {
	repo   ports.UserRepository
	codec  *token.Codec
	cfg    AuthConfig
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *token.Codec, cfg AuthConfig, logger zerolog.Logger) *AuthService {
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 15 * time.Minute
	}
	if cfg.RefreshAccessTTL <= 0 {
		cfg.RefreshAccessTTL = 10 * time.Second
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 24 * time.Hour
	}
	if cfg.BcryptCost <= 0 {
		cfg.BcryptCost = 10
	}
	return &AuthService{repo: repo, codec: codec, cfg: cfg, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if user.IsDeleted {
		// Deleted accounts must look exactly like missing ones.
		return nil, domain.ErrUnauthorized
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.codec.MintAccess(identityOf(user), s.cfg.AccessTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.codec.MintRefresh(user.Username, s.cfg.RefreshTTL)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("login succeeded")

	return &ports.LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		RefreshTTL:   s.cfg.RefreshTTL,
	}, nil
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	// Pre-check for a friendly Conflict. The unique index remains the
	// authority: a concurrent registration slipping past this check
	// still surfaces as ErrUserExists from Create.
	if _, err := s.repo.FindByUsername(ctx, in.Username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	username, err := s.codec.VerifyRefresh(refreshToken)
	if err != nil {
		s.logger.Debug().Err(err).Msg("refresh token rejected")
		return "", err
	}

	// Role flags may have changed since the refresh token was minted;
	// derive the new access claims from current stored state.
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", err
	}
	if user.IsDeleted {
		return "", domain.ErrUnauthorized
	}

	return s.codec.MintAccess(identityOf(user), s.cfg.RefreshAccessTTL)
}

func identityOf(u *domain.User) token.Identity {
	return token.Identity{
		UserID:     u.ID,
		Username:   u.Username,
		IsAdmin:    u.IsAdmin,
		IsEmployee: u.IsEmployee,
		IsDeleted:  u.IsDeleted,
	}
}
