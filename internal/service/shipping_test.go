package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goatgrids/internal/client"
	"goatgrids/internal/config"
	"goatgrids/internal/dto"
	"goatgrids/internal/model"
)

func TestProvinceCode(t *testing.T) {
	tests := []struct {
		name     string
		province string
		want     string
	}{
		{"known_lowercase", "western cape", "WC"},
		{"known_mixed_case", "Western Cape", "WC"},
		{"known_uppercase", "WESTERN CAPE", "WC"},
		{"kzn_alias", "kzn", "KZN"},
		{"hyphenated", "KwaZulu-Natal", "KZN"},
		{"gauteng", "gauteng", "GP"},
		{"unknown_fallback", "Narnia", "NA"},
		{"empty_defaults_gauteng", "", "GP"},
		{"whitespace_trimmed", "  free state ", "FS"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, ProvinceCode(testCase.province))
		})
	}
}

func newCourierTestServer(t *testing.T, handler http.HandlerFunc) client.CourierClient {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return client.NewCourierClient(&config.Courier{BaseApiURL: ts.URL, APIKey: "tcg_test"})
}

func TestShippingService_quoteNormalizesAndSortsRates(t *testing.T) {
	var gotReq model.TCGRateRequest
	courier := newCourierTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rates", r.URL.Path)
		require.Equal(t, "Bearer tcg_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(model.TCGRateResponse{Rates: []model.TCGRate{
			{Rate: 150, RateExcludingVat: 130.43, ServiceLevel: model.TCGServiceLevel{
				Code: "ECO", Name: "Economy", DeliveryDateFrom: "2026-09-04T00:00:00Z"}},
			{Rate: 95, RateExcludingVat: 82.61, ServiceLevel: model.TCGServiceLevel{
				Code: "LOF", Name: "Local Overnight Flyer"}},
			{Rate: 120, ServiceLevel: model.TCGServiceLevel{}},
		}})
	})

	svc := NewShippingService(courier, "tcg_test")
	quote, err := svc.GetQuote(context.Background(), &dto.QuoteRequest{
		StreetAddress: "1 Kloof St",
		Suburb:        "Gardens",
		City:          "Cape Town",
		PostalCode:    "8001",
		Province:      "western cape",
		ItemCount:     2,
	})
	require.NoError(t, err)

	// parcels: weight scales with item count, 3kg per grid
	require.Len(t, gotReq.Parcels, 1)
	assert.Equal(t, 6.0, gotReq.Parcels[0].SubmittedWeightKg)
	assert.Equal(t, "WC", gotReq.DeliveryAddress.Zone)

	require.Len(t, quote.Rates, 3)
	assert.Equal(t, []float64{95, 120, 150}, []float64{
		quote.Rates[0].Price, quote.Rates[1].Price, quote.Rates[2].Price,
	})
	assert.Equal(t, "LOF", quote.Rates[0].ServiceCode)
	// missing service level falls back to Standard
	assert.Equal(t, "STD", quote.Rates[1].ServiceCode)
	assert.Equal(t, "Standard", quote.Rates[1].ServiceName)
	assert.Equal(t, "TBC", quote.Rates[1].EstimatedDelivery)
	assert.Equal(t, "Fri, 4 Sep", quote.Rates[2].EstimatedDelivery)
	assert.Equal(t, "WC", quote.DeliveryAddress.Province)
}

func TestShippingService_quoteMinimumWeight(t *testing.T) {
	var gotReq model.TCGRateRequest
	courier := newCourierTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(model.TCGRateResponse{})
	})

	svc := NewShippingService(courier, "tcg_test")
	_, err := svc.GetQuote(context.Background(), &dto.QuoteRequest{
		StreetAddress: "1 Kloof St",
		City:          "Cape Town",
		PostalCode:    "8001",
	})
	require.NoError(t, err)
	assert.Equal(t, 3.0, gotReq.Parcels[0].SubmittedWeightKg)
}

func TestShippingService_quoteValidation(t *testing.T) {
	svc := NewShippingService(nil, "tcg_test")

	_, err := svc.GetQuote(context.Background(), &dto.QuoteRequest{City: "Cape Town"})

	var validation *ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestShippingService_notConfigured(t *testing.T) {
	svc := NewShippingService(nil, "")

	_, err := svc.GetQuote(context.Background(), &dto.QuoteRequest{
		StreetAddress: "1 Kloof St", City: "Cape Town", PostalCode: "8001",
	})
	assert.ErrorIs(t, err, ErrCourierNotConfigured)

	_, err = svc.Track(context.Background(), "WB123")
	assert.ErrorIs(t, err, ErrCourierNotConfigured)
}

func TestShippingService_quoteUpstreamFailure(t *testing.T) {
	courier := newCourierTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	})

	svc := NewShippingService(courier, "tcg_test")
	_, err := svc.GetQuote(context.Background(), &dto.QuoteRequest{
		StreetAddress: "1 Kloof St", City: "Cape Town", PostalCode: "8001",
	})
	assert.Error(t, err)
}

func TestShippingService_createShipment(t *testing.T) {
	var gotReq model.TCGShipmentRequest
	courier := newCourierTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/shipments", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(model.TCGShipment{
			ID:                      981,
			Status:                  "submitted",
			CustomTrackingReference: "GG-WB-981",
		})
	})

	svc := NewShippingService(courier, "tcg_test")
	resp, err := svc.CreateShipment(context.Background(), &dto.CreateShipmentRequest{
		OrderNumber: "GG-TEST1",
		ServiceCode: "LOF",
		DeliveryAddress: &model.Address{
			StreetAddress: "1 Kloof St",
			City:          "Cape Town",
			PostalCode:    "8001",
			Province:      "western cape",
		},
		DeliveryContact: &dto.ShipmentContact{Name: "Jo", Email: "jo@example.com", Phone: "+27000000000"},
		Items:           []model.OrderItem{{Name: "Grid L", Price: 100}, {Name: "Grid S", Price: 50}},
	})
	require.NoError(t, err)

	assert.Equal(t, "LOF", gotReq.ServiceLevelCode)
	assert.Equal(t, "Order: GG-TEST1", gotReq.SpecialInstructionsCollection)
	assert.Equal(t, "Grid L, Grid S", gotReq.Parcels[0].ParcelDescription)
	assert.Equal(t, 6.0, gotReq.Parcels[0].SubmittedWeightKg)

	assert.Equal(t, int64(981), resp.ShipmentID)
	assert.Equal(t, "GG-WB-981", resp.TrackingReference)
	assert.Equal(t, "GG-WB-981", resp.WaybillNumber)
}

func TestShippingService_createShipmentValidation(t *testing.T) {
	svc := NewShippingService(nil, "tcg_test")

	_, err := svc.CreateShipment(context.Background(), &dto.CreateShipmentRequest{})

	var validation *ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestShippingService_trackNotFound(t *testing.T) {
	courier := newCourierTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	svc := NewShippingService(courier, "tcg_test")
	_, err := svc.Track(context.Background(), "WB-MISSING")
	assert.ErrorIs(t, err, client.ErrShipmentNotFound)
}

func TestShippingService_track(t *testing.T) {
	courier := newCourierTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tracking/shipments/public", r.URL.Path)
		require.Equal(t, "WB123", r.URL.Query().Get("waybill"))
		json.NewEncoder(w).Encode(model.TCGTracking{
			Status:                  "in-transit",
			CustomTrackingReference: "WB123",
			TrackingEvents:          []model.TCGTrackingEvent{{Date: "2026-09-01", Status: "collected"}},
		})
	})

	svc := NewShippingService(courier, "tcg_test")
	tracking, err := svc.Track(context.Background(), "WB123")
	require.NoError(t, err)
	assert.Equal(t, "in-transit", tracking.Status)
	require.Len(t, tracking.Events, 1)
}
