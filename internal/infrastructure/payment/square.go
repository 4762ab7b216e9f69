package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/electriclarrys/shop-api/internal/core/domain"
	"github.com/electriclarrys/shop-api/internal/core/ports"
)

const (
	sandboxHost    = "https://connect.squareupsandbox.com"
	productionHost = "https://connect.squareup.com"

	squareVersion = "2024-01-18"
)

// SquareClient implements ports.PaymentGateway against the Square
// Payments API. The client never sees card data; it exchanges the
// tokenized source id produced by Square's web SDK for a payment.
type SquareClient struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
}

func NewSquareClient(accessToken, environment string) *SquareClient {
	baseURL := sandboxHost
	if environment == "production" {
		baseURL = productionHost
	}
	return &SquareClient{
		accessToken: accessToken,
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

type squareMoney struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type createPaymentRequest struct {
	SourceID       string      `json:"source_id"`
	IdempotencyKey string      `json:"idempotency_key"`
	AmountMoney    squareMoney `json:"amount_money"`
}

type createPaymentResponse struct {
	Payment struct {
		ID          string      `json:"id"`
		Status      string      `json:"status"`
		AmountMoney squareMoney `json:"amount_money"`
	} `json:"payment"`
	Errors []struct {
		Category string `json:"category"`
		Code     string `json:"code"`
		Detail   string `json:"detail"`
	} `json:"errors"`
}

// CreatePayment charges the tokenized source for the given amount. Each
// call carries a fresh idempotency key; retries are the caller's
// responsibility and get a new charge.
func (c *SquareClient) CreatePayment(ctx context.Context, input ports.PaymentInput) (*ports.PaymentResult, error) {
	body, err := json.Marshal(createPaymentRequest{
		SourceID:       input.SourceID,
		IdempotencyKey: uuid.NewString(),
		AmountMoney: squareMoney{
			Amount:   input.Amount,
			Currency: input.Currency,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal payment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v2/payments", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build payment request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Square-Version", squareVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentGateway, err)
	}
	defer resp.Body.Close()

	var decoded createPaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrPaymentGateway, err)
	}

	if resp.StatusCode != http.StatusOK || len(decoded.Errors) > 0 {
		detail := "unknown error"
		if len(decoded.Errors) > 0 {
			detail = decoded.Errors[0].Code
		}
		return nil, fmt.Errorf("%w: %s (http %d)", domain.ErrPaymentGateway, detail, resp.StatusCode)
	}

	return &ports.PaymentResult{
		PaymentID: decoded.Payment.ID,
		Status:    decoded.Payment.Status,
		Amount:    decoded.Payment.AmountMoney.Amount,
		Currency:  decoded.Payment.AmountMoney.Currency,
	}, nil
}
