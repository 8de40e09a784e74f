package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"goatgrids/internal/config"
	"goatgrids/internal/model"
)

// ErrShipmentNotFound is returned by TrackShipment for unknown waybills.
var ErrShipmentNotFound = errors.New("shipment not found")

type CourierClient interface {
	GetRates(ctx context.Context, req *model.TCGRateRequest) ([]model.TCGRate, error)
	CreateShipment(ctx context.Context, req *model.TCGShipmentRequest) (*model.TCGShipment, error)
	TrackShipment(ctx context.Context, waybill string) (*model.TCGTracking, error)
}

type courierClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	apiKey     string
}

func NewCourierClient(cfg *config.Courier) CourierClient {
	return &courierClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: cfg.BaseApiURL,
		apiKey:     cfg.APIKey,
	}
}

func (c *courierClientImpl) GetRates(ctx context.Context, rateReq *model.TCGRateRequest) ([]model.TCGRate, error) {
	var rateResp model.TCGRateResponse
	if err := c.post(ctx, "/rates", rateReq, &rateResp); err != nil {
		return nil, err
	}
	return rateResp.Rates, nil
}

func (c *courierClientImpl) CreateShipment(ctx context.Context, shipmentReq *model.TCGShipmentRequest) (*model.TCGShipment, error) {
	var shipment model.TCGShipment
	if err := c.post(ctx, "/shipments", shipmentReq, &shipment); err != nil {
		return nil, err
	}
	return &shipment, nil
}

func (c *courierClientImpl) TrackShipment(ctx context.Context, waybill string) (*model.TCGTracking, error) {
	trackURL := fmt.Sprintf("%s/tracking/shipments/public?waybill=%s&api_key=%s",
		c.baseApiURL, url.QueryEscape(waybill), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, trackURL, nil)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, ErrShipmentNotFound
	}

	var tracking model.TCGTracking
	if err := json.NewDecoder(resp.Body).Decode(&tracking); err != nil {
		return nil, fmt.Errorf("decode tracking response: %w", err)
	}
	return &tracking, nil
}

func (c *courierClientImpl) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+path, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("shiplogic error %d: %s", resp.StatusCode, string(b))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode shiplogic response: %w", err)
	}
	return nil
}
