package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"goatgrids/internal/config"
)

type YocoClient interface {
	CreateCheckout(ctx context.Context, req *CheckoutRequest) (*Checkout, error)
}

// CheckoutRequest creates a hosted payment page. Amount is in cents.
type CheckoutRequest struct {
	Amount     int64             `json:"amount"`
	Currency   string            `json:"currency"`
	Metadata   map[string]string `json:"metadata"`
	SuccessURL string            `json:"successUrl"`
	CancelURL  string            `json:"cancelUrl"`
	FailureURL string            `json:"failureUrl"`
}

type Checkout struct {
	ID          string `json:"id"`
	RedirectURL string `json:"redirectUrl"`
}

type yocoClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	secretKey  string
}

func NewYocoClient(cfg *config.Yoco) YocoClient {
	return &yocoClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: cfg.BaseApiURL,
		secretKey:  cfg.SecretKey,
	}
}

func (c *yocoClientImpl) CreateCheckout(ctx context.Context, checkoutReq *CheckoutRequest) (*Checkout, error) {
	body, err := json.Marshal(checkoutReq)
	if err != nil {
		return nil, fmt.Errorf("marshal checkout request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+"/api/checkouts", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("yoco error %d: %s", resp.StatusCode, string(b))
	}

	var checkout Checkout
	if err := json.NewDecoder(resp.Body).Decode(&checkout); err != nil {
		return nil, fmt.Errorf("decode yoco response: %w", err)
	}
	return &checkout, nil
}
