package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/electriclarrys/shop-api/internal/core/domain"
	"github.com/electriclarrys/shop-api/internal/core/ports"
)

// UserHandler handles account administration. The fine-grained gates
// (employee / admin / same-user-or-admin) are applied per route in the
// router; handlers only deal with the operation itself.
type UserHandler struct {
	users  ports.UserService
	orders ports.OrderService
	carts  ports.CartService
}

func NewUserHandler(users ports.UserService, orders ports.OrderService, carts ports.CartService) *UserHandler {
	return &UserHandler{users: users, orders: orders, carts: carts}
}

type userRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	IsAdmin    bool   `json:"is_admin"`
	IsEmployee bool   `json:"is_employee"`
	IsDeleted  bool   `json:"is_deleted"`
}

// List handles GET /users. `?new=true` returns only the five most
// recent registrations, for the dashboard.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        new  query     bool  false  "Only the five newest accounts"
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	newestOnly := c.QueryParam("new") != ""
	users, err := h.users.List(c.Request().Context(), newestOnly)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.users.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// GetByUsername handles GET /users/username/:username.
func (h *UserHandler) GetByUsername(c echo.Context) error {
	user, err := h.users.GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Orders handles GET /users/:id/orders.
func (h *UserHandler) Orders(c echo.Context) error {
	id := c.Param("id")
	if _, err := h.users.GetByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		}
		return err
	}
	orders, err := h.orders.GetByUserID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Cart handles GET /users/:id/cart.
func (h *UserHandler) Cart(c echo.Context) error {
	id := c.Param("id")
	if _, err := h.users.GetByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		}
		return err
	}
	cart, err := h.carts.GetByUserID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "cart not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// Stats handles GET /users/stats — registrations per month over the
// trailing year.
func (h *UserHandler) Stats(c echo.Context) error {
	stats, err := h.users.RegistrationStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Create handles POST /users — admin-only account creation with role flags.
func (h *UserHandler) Create(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	user, err := h.users.Create(c.Request().Context(), ports.CreateUserInput{
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
		IsAdmin:    req.IsAdmin,
		IsEmployee: req.IsEmployee,
		IsDeleted:  req.IsDeleted,
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
	return c.JSON(http.StatusCreated, user)
}

// Update handles PUT /users/:id. The route is open to the account owner
// for self-service profile edits, so the role and lifecycle flags in the
// body are honored only for admin callers; for everyone else the stored
// flags are carried over untouched. Without this a customer could PUT
// their own profile with is_admin set and mint admin claims on the next
// refresh.
func (h *UserHandler) Update(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	_, _, isAdmin, err := callerIdentity(c)
	if err != nil {
		return err
	}
	if !isAdmin {
		current, err := h.users.GetByID(c.Request().Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
			}
			return err
		}
		req.IsAdmin = current.IsAdmin
		req.IsEmployee = current.IsEmployee
		req.IsDeleted = current.IsDeleted
	}

	user, err := h.users.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
		IsAdmin:    req.IsAdmin,
		IsEmployee: req.IsEmployee,
		IsDeleted:  req.IsDeleted,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "please enter all fields"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusConflict, errorResponse{Error: "user already exists"})
		}
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /users/:id — soft delete.
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.users.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user removed"})
}
