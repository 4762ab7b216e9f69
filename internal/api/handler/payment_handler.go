package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/electriclarrys/shop-api/internal/api/metrics"
	"github.com/electriclarrys/shop-api/internal/core/ports"
)

// PaymentHandler initiates payments against the external gateway. The
// API does not hold card data; the client-side SDK tokenizes the card
// into a one-time source id.
type PaymentHandler struct {
	gateway ports.PaymentGateway
}

func NewPaymentHandler(gateway ports.PaymentGateway) *PaymentHandler {
	return &PaymentHandler{gateway: gateway}
}

type paymentRequest struct {
	SourceID string `json:"source_id" validate:"required"`
	Amount   int64  `json:"amount"    validate:"required,gt=0"`
	Currency string `json:"currency"`
}

type paymentResponse struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
}

// Create handles POST /pay.
//
// @Summary      Initiate a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      paymentRequest  true  "Payment details (amount in cents)"
// @Success      200   {object}  paymentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /pay [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	result, err := h.gateway.CreatePayment(c.Request().Context(), ports.PaymentInput{
		SourceID: req.SourceID,
		Amount:   req.Amount,
		Currency: currency,
	})
	if err != nil {
		metrics.PaymentsTotal.WithLabelValues("error").Inc()
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "payment failed"})
	}

	metrics.PaymentsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, paymentResponse{
		PaymentID: result.PaymentID,
		Status:    result.Status,
		Amount:    result.Amount,
		Currency:  result.Currency,
	})
}
