package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"goatgrids/internal/client"
	"goatgrids/internal/dto"
	"goatgrids/internal/model"
)

// Orders ship from the Cape Town workshop.
var collectionAddress = model.TCGAddress{
	Type:          "business",
	Company:       "GOAT Grids",
	StreetAddress: "Cape Town",
	LocalArea:     "Cape Town",
	City:          "Cape Town",
	Code:          "8001",
	Zone:          "WC",
	Country:       "ZA",
}

var collectionContact = model.TCGContact{
	Name:         "GOAT Grids",
	Email:        "goatgrids@gmail.com",
	MobileNumber: "+27674077001",
}

// Default parcel dimensions for a braai grid; weight scales with item count.
const (
	parcelLengthCm  = 60
	parcelWidthCm   = 45
	parcelHeightCm  = 10
	parcelUnitKg    = 3
	parcelMinimumKg = 3
)

var provinceCodes = map[string]string{
	"gauteng":       "GP",
	"western cape":  "WC",
	"eastern cape":  "EC",
	"kwazulu-natal": "KZN",
	"kzn":           "KZN",
	"free state":    "FS",
	"north west":    "NW",
	"mpumalanga":    "MP",
	"limpopo":       "LP",
	"northern cape": "NC",
}

// ProvinceCode maps a free-text province name to its short code. Unknown
// names fall back to the first two characters uppercased; empty defaults to
// GP.
func ProvinceCode(province string) string {
	if province == "" {
		return "GP"
	}
	normalized := strings.ToLower(strings.TrimSpace(province))
	if code, ok := provinceCodes[normalized]; ok {
		return code
	}
	upper := strings.ToUpper(province)
	if len(upper) > 2 {
		upper = upper[:2]
	}
	return upper
}

type ShippingService interface {
	GetQuote(ctx context.Context, req *dto.QuoteRequest) (*dto.QuoteResponse, error)
	CreateShipment(ctx context.Context, req *dto.CreateShipmentRequest) (*dto.CreateShipmentResponse, error)
	Track(ctx context.Context, waybill string) (*dto.TrackingResponse, error)
}

type shippingServiceImpl struct {
	courierClient client.CourierClient
	apiKey        string
}

func NewShippingService(courierClient client.CourierClient, apiKey string) ShippingService {
	return &shippingServiceImpl{
		courierClient: courierClient,
		apiKey:        apiKey,
	}
}

func (s *shippingServiceImpl) GetQuote(ctx context.Context, req *dto.QuoteRequest) (*dto.QuoteResponse, error) {
	if s.apiKey == "" {
		return nil, ErrCourierNotConfigured
	}
	if req.StreetAddress == "" || req.City == "" || req.PostalCode == "" {
		return nil, Validationf("Address details required (streetAddress, city, postalCode)")
	}

	itemCount := req.ItemCount
	if itemCount < 1 {
		itemCount = 1
	}

	localArea := req.Suburb
	if localArea == "" {
		localArea = req.City
	}

	rateReq := &model.TCGRateRequest{
		CollectionAddress: collectionAddress,
		DeliveryAddress: model.TCGAddress{
			Type:          "residential",
			StreetAddress: req.StreetAddress,
			LocalArea:     localArea,
			City:          req.City,
			Code:          req.PostalCode,
			Zone:          ProvinceCode(req.Province),
			Country:       "ZA",
		},
		Parcels: []model.TCGParcel{{
			SubmittedLengthCm: parcelLengthCm,
			SubmittedWidthCm:  parcelWidthCm,
			SubmittedHeightCm: parcelHeightCm,
			SubmittedWeightKg: parcelWeight(itemCount),
		}},
	}

	tcgRates, err := s.courierClient.GetRates(ctx, rateReq)
	if err != nil {
		return nil, fmt.Errorf("courier rates: %w", err)
	}

	rates := make([]dto.Rate, 0, len(tcgRates))
	for _, r := range tcgRates {
		rates = append(rates, normalizeRate(r))
	}
	sort.SliceStable(rates, func(i, j int) bool { return rates[i].Price < rates[j].Price })

	return &dto.QuoteResponse{
		Success:   true,
		Rates:     rates,
		ItemCount: itemCount,
		DeliveryAddress: model.Address{
			StreetAddress: req.StreetAddress,
			Suburb:        req.Suburb,
			City:          req.City,
			PostalCode:    req.PostalCode,
			Province:      ProvinceCode(req.Province),
		},
	}, nil
}

func (s *shippingServiceImpl) CreateShipment(ctx context.Context, req *dto.CreateShipmentRequest) (*dto.CreateShipmentResponse, error) {
	if s.apiKey == "" {
		return nil, ErrCourierNotConfigured
	}
	if req.DeliveryAddress == nil || req.DeliveryContact == nil || req.ServiceCode == "" {
		return nil, Validationf("Missing required shipment details")
	}

	addr := req.DeliveryAddress

	lat, lng := req.Lat, req.Lng
	if lat == 0 && lng == 0 {
		lat, lng = -26.2041, 28.0473
	}

	localArea := addr.Suburb
	if localArea == "" {
		localArea = addr.City
	}

	orderRef := req.OrderNumber
	if orderRef == "" {
		orderRef = req.OrderID
	}

	descriptions := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		descriptions = append(descriptions, item.Name)
	}
	parcelDescription := strings.Join(descriptions, ", ")
	if parcelDescription == "" {
		parcelDescription = "Braai Grid"
	}

	itemCount := len(req.Items)
	if itemCount < 1 {
		itemCount = 1
	}

	now := time.Now().UTC()
	shipmentReq := &model.TCGShipmentRequest{
		CollectionMinDate:             now.Format(time.RFC3339),
		CollectionAddress:             collectionAddress,
		SpecialInstructionsCollection: "Order: " + orderRef,
		CollectionContact:             collectionContact,
		DeliveryMinDate:               now.Add(2 * 24 * time.Hour).Format(time.RFC3339),
		DeliveryAddress: model.TCGAddress{
			Type:          "residential",
			Lat:           lat,
			Lng:           lng,
			StreetAddress: addr.StreetAddress,
			LocalArea:     localArea,
			Suburb:        localArea,
			City:          addr.City,
			Code:          addr.PostalCode,
			Zone:          ProvinceCode(addr.Province),
			Country:       "South Africa",
			EnteredAddress: fmt.Sprintf("%s, %s, %s, %s, South Africa",
				addr.StreetAddress, localArea, addr.City, addr.PostalCode),
		},
		DeliveryContact: model.TCGContact{
			Name:         req.DeliveryContact.Name,
			Email:        req.DeliveryContact.Email,
			MobileNumber: req.DeliveryContact.Phone,
		},
		Parcels: []model.TCGParcel{{
			SubmittedLengthCm: parcelLengthCm,
			SubmittedWidthCm:  parcelWidthCm,
			SubmittedHeightCm: parcelHeightCm,
			SubmittedWeightKg: parcelWeight(itemCount),
			ParcelDescription: parcelDescription,
		}},
		OptInRates:          []string{},
		OptInTimeBasedRates: []string{},
		ServiceLevelCode:    req.ServiceCode,
	}

	shipment, err := s.courierClient.CreateShipment(ctx, shipmentReq)
	if err != nil {
		return nil, fmt.Errorf("courier create shipment: %w", err)
	}

	return &dto.CreateShipmentResponse{
		Success:             true,
		ShipmentID:          shipment.ID,
		TrackingReference:   shipment.CustomTrackingReference,
		WaybillNumber:       shipment.CustomTrackingReference,
		Status:              shipment.Status,
		EstimatedCollection: shipment.EstimatedCollection,
		EstimatedDelivery:   shipment.EstimatedDeliveryFrom,
	}, nil
}

func (s *shippingServiceImpl) Track(ctx context.Context, waybill string) (*dto.TrackingResponse, error) {
	if s.apiKey == "" {
		return nil, ErrCourierNotConfigured
	}

	tracking, err := s.courierClient.TrackShipment(ctx, waybill)
	if err != nil {
		if errors.Is(err, client.ErrShipmentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("courier tracking: %w", err)
	}

	events := tracking.TrackingEvents
	if events == nil {
		events = []model.TCGTrackingEvent{}
	}

	return &dto.TrackingResponse{
		Success:           true,
		TrackingReference: tracking.CustomTrackingReference,
		Status:            tracking.Status,
		Events:            events,
	}, nil
}

func parcelWeight(itemCount int) float64 {
	weight := float64(itemCount * parcelUnitKg)
	if weight < parcelMinimumKg {
		return parcelMinimumKg
	}
	return weight
}

func normalizeRate(r model.TCGRate) dto.Rate {
	rate := dto.Rate{
		ServiceCode:       r.ServiceLevel.Code,
		ServiceName:       r.ServiceLevel.Name,
		Description:       r.ServiceLevel.Description,
		Price:             r.Rate,
		PriceExVat:        r.RateExcludingVat,
		EstimatedDelivery: "TBC",
		DeliveryDateFrom:  r.ServiceLevel.DeliveryDateFrom,
		DeliveryDateTo:    r.ServiceLevel.DeliveryDateTo,
	}
	if rate.ServiceCode == "" {
		rate.ServiceCode = "STD"
	}
	if rate.ServiceName == "" {
		rate.ServiceName = "Standard"
	}
	if r.ServiceLevel.DeliveryDateFrom != "" {
		if t, err := time.Parse(time.RFC3339, r.ServiceLevel.DeliveryDateFrom); err == nil {
			rate.EstimatedDelivery = t.Format("Mon, 2 Jan")
		}
	}
	return rate
}
