package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/electriclarrys/shop-api/internal/core/domain"
	"github.com/electriclarrys/shop-api/internal/core/ports"
)

type CartHandler struct {
	carts ports.CartService
}

func NewCartHandler(carts ports.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

type cartRequest struct {
	UserID   string            `json:"user_id"`
	Products []domain.CartItem `json:"products"`
}

// List handles GET /carts.
func (h *CartHandler) List(c echo.Context) error {
	carts, err := h.carts.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, carts)
}

// Get handles GET /carts/:id.
func (h *CartHandler) Get(c echo.Context) error {
	cart, err := h.carts.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "cart not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// GetByUser handles GET /carts/user/:userId.
func (h *CartHandler) GetByUser(c echo.Context) error {
	cart, err := h.carts.GetByUserID(c.Request().Context(), c.Param("userId"))
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "cart not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// Create handles POST /carts. The cart is created for the caller; the
// user id comes from the verified claims, not the body, so a customer
// cannot open a cart in someone else's name.
func (h *CartHandler) Create(c echo.Context) error {
	var req cartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	userID, _, isAdmin, err := callerIdentity(c)
	if err != nil {
		return err
	}
	// Admins may create carts on behalf of other users.
	if !isAdmin || req.UserID == "" {
		req.UserID = userID
	}

	cart, err := h.carts.Create(c.Request().Context(), ports.CartInput{
		UserID:   req.UserID,
		Products: req.Products,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "please enter all fields"})
		}
		return err
	}
	return c.JSON(http.StatusCreated, cart)
}

// Update handles PUT /carts/:id. Only the cart owner or an admin may
// modify a cart.
func (h *CartHandler) Update(c echo.Context) error {
	var req cartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	if err := h.requireOwner(c); err != nil {
		return err
	}

	cart, err := h.carts.Update(c.Request().Context(), c.Param("id"), ports.CartInput{
		UserID:   req.UserID,
		Products: req.Products,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "cart not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// Delete handles DELETE /carts/:id. Same ownership rule as Update.
func (h *CartHandler) Delete(c echo.Context) error {
	if err := h.requireOwner(c); err != nil {
		return err
	}
	if err := h.carts.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "cart not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "cart removed"})
}

// requireOwner loads the cart named by :id and rejects the request with
// 401 unless the caller owns it or is an admin.
func (h *CartHandler) requireOwner(c echo.Context) error {
	userID, _, isAdmin, err := callerIdentity(c)
	if err != nil {
		return err
	}
	if isAdmin {
		return nil
	}

	cart, err := h.carts.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "cart not found"})
		}
		return err
	}
	if cart.UserID != userID {
		return echo.NewHTTPError(http.StatusUnauthorized, "you are not allowed to do that")
	}
	return nil
}
