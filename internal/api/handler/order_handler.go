package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/electriclarrys/shop-api/internal/api/metrics"
	"github.com/electriclarrys/shop-api/internal/core/domain"
	"github.com/electriclarrys/shop-api/internal/core/ports"
)

type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type orderRequest struct {
	UserID     string            `json:"user_id"`
	Products   []domain.CartItem `json:"products"`
	TotalPrice float64           `json:"total_price"`
	Status     string            `json:"status"`
}

type totalSalesResponse struct {
	TotalSales float64 `json:"total_sales"`
}

// List handles GET /orders.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orders.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Get handles GET /orders/:id.
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.orders.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "order not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// GetByUser handles GET /orders/user/:userId.
func (h *OrderHandler) GetByUser(c echo.Context) error {
	orders, err := h.orders.GetByUserID(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// MonthlySales handles GET /orders/sales/month.
func (h *OrderHandler) MonthlySales(c echo.Context) error {
	sales, err := h.orders.MonthlySales(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sales)
}

// TotalSales handles GET /orders/sales/total.
func (h *OrderHandler) TotalSales(c echo.Context) error {
	total, err := h.orders.TotalSales(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, totalSalesResponse{TotalSales: total})
}

// Create handles POST /orders. Like carts, the order is placed for the
// caller unless an admin names another user.
func (h *OrderHandler) Create(c echo.Context) error {
	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	userID, _, isAdmin, err := callerIdentity(c)
	if err != nil {
		return err
	}
	if !isAdmin || req.UserID == "" {
		req.UserID = userID
	}

	order, err := h.orders.Create(c.Request().Context(), ports.OrderInput{
		UserID:     req.UserID,
		Products:   req.Products,
		TotalPrice: req.TotalPrice,
		Status:     req.Status,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "please enter all fields"})
		}
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, order)
}

// Update handles PUT /orders/:id. Customers may only touch their own
// orders; employees and admins may update any order.
func (h *OrderHandler) Update(c echo.Context) error {
	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	userID, _, isAdmin, err := callerIdentity(c)
	if err != nil {
		return err
	}
	if !isAdmin {
		existing, err := h.orders.GetByID(c.Request().Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrOrderNotFound) {
				return c.JSON(http.StatusNotFound, errorResponse{Error: "order not found"})
			}
			return err
		}
		if existing.UserID != userID {
			return echo.NewHTTPError(http.StatusUnauthorized, "you are not allowed to do that")
		}
	}

	order, err := h.orders.Update(c.Request().Context(), c.Param("id"), ports.OrderInput{
		UserID:     req.UserID,
		Products:   req.Products,
		TotalPrice: req.TotalPrice,
		Status:     req.Status,
	})
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "order not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Delete handles DELETE /orders/:id.
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.orders.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "order not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "order removed"})
}
