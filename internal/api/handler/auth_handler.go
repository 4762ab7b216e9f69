package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/electriclarrys/shop-api/internal/api/metrics"
	"github.com/electriclarrys/shop-api/internal/core/domain"
	"github.com/electriclarrys/shop-api/internal/core/ports"
)

// RefreshCookieName is the cookie carrying the refresh token. It is the
// only server-set cookie; the access token is bearer-only.
const RefreshCookieName = "electriclarry"

// AuthHandler owns the /auth routes and the refresh-cookie lifecycle.
// The refresh token never appears in a response body: it travels
// exclusively as an HttpOnly, Secure, SameSite=None cookie so the
// storefront (served from another origin) can use it while scripts
// cannot read it.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type accessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type registerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Login authenticates a user and returns an access token; the refresh
// token is set as a cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  accessTokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			metrics.LoginsTotal.WithLabelValues("bad_request").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "please enter all fields"})
		case errors.Is(err, domain.ErrUnauthorized):
			metrics.LoginsTotal.WithLabelValues("unauthorized").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("unauthorized").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.SetCookie(refreshCookie(result.RefreshToken, int(result.RefreshTTL/time.Second)))
	return c.JSON(http.StatusOK, accessTokenResponse{AccessToken: result.AccessToken})
}

// Register creates a new customer account. Role flags can only be
// granted through the admin user endpoints, never at self-registration.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "please enter all fields"})
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusConflict, errorResponse{Error: "user already exists"})
		}
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, registerResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

// Refresh redeems the refresh cookie for a new short-lived access token.
//
// @Summary      Refresh the access token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  accessTokenResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /auth/refresh [get]
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(RefreshCookieName)
	if err != nil || cookie.Value == "" {
		metrics.TokenRefreshesTotal.WithLabelValues("unauthorized").Inc()
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "missing refresh cookie"})
	}

	accessToken, err := h.authService.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		// All verify failures collapse to one 403; a valid token for a
		// vanished account is a 401 instead.
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrUserNotFound) {
			metrics.TokenRefreshesTotal.WithLabelValues("unauthorized").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		}
		metrics.TokenRefreshesTotal.WithLabelValues("rejected").Inc()
		return c.JSON(http.StatusForbidden, errorResponse{Error: "invalid refresh token"})
	}

	metrics.TokenRefreshesTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, accessTokenResponse{AccessToken: accessToken})
}

// Logout clears the refresh cookie. Purely advisory: there is no
// server-side revocation, so an already-captured refresh token stays
// valid until its natural expiry.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Success      204  "no cookie was present"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(RefreshCookieName); err != nil || cookie.Value == "" {
		return c.NoContent(http.StatusNoContent)
	}

	// Clearing requires the same flags the cookie was set with.
	c.SetCookie(refreshCookie("", -1))
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

func refreshCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     RefreshCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}
