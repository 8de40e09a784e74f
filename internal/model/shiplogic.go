package model

// ShipLogic (The Courier Guy) wire shapes.

type TCGAddress struct {
	Type           string  `json:"type"`
	Company        string  `json:"company,omitempty"`
	StreetAddress  string  `json:"street_address"`
	LocalArea      string  `json:"local_area"`
	Suburb         string  `json:"suburb,omitempty"`
	City           string  `json:"city"`
	Code           string  `json:"code"`
	Zone           string  `json:"zone"`
	Country        string  `json:"country"`
	Lat            float64 `json:"lat,omitempty"`
	Lng            float64 `json:"lng,omitempty"`
	EnteredAddress string  `json:"entered_address,omitempty"`
}

type TCGContact struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
}

type TCGParcel struct {
	SubmittedLengthCm float64 `json:"submitted_length_cm"`
	SubmittedWidthCm  float64 `json:"submitted_width_cm"`
	SubmittedHeightCm float64 `json:"submitted_height_cm"`
	SubmittedWeightKg float64 `json:"submitted_weight_kg"`
	ParcelDescription string  `json:"parcel_description,omitempty"`
}

type TCGServiceLevel struct {
	Code             string `json:"code"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	DeliveryDateFrom string `json:"delivery_date_from"`
	DeliveryDateTo   string `json:"delivery_date_to"`
}

type TCGRate struct {
	Rate             float64         `json:"rate"`
	RateExcludingVat float64         `json:"rate_excluding_vat"`
	ServiceLevel     TCGServiceLevel `json:"service_level"`
}

type TCGRateRequest struct {
	CollectionAddress TCGAddress  `json:"collection_address"`
	DeliveryAddress   TCGAddress  `json:"delivery_address"`
	Parcels           []TCGParcel `json:"parcels"`
}

type TCGRateResponse struct {
	Rates []TCGRate `json:"rates"`
}

type TCGShipmentRequest struct {
	CollectionMinDate             string      `json:"collection_min_date"`
	CollectionAddress             TCGAddress  `json:"collection_address"`
	SpecialInstructionsCollection string      `json:"special_instructions_collection,omitempty"`
	CollectionContact             TCGContact  `json:"collection_contact"`
	DeliveryMinDate               string      `json:"delivery_min_date"`
	DeliveryAddress               TCGAddress  `json:"delivery_address"`
	DeliveryContact               TCGContact  `json:"delivery_contact"`
	Parcels                       []TCGParcel `json:"parcels"`
	OptInRates                    []string    `json:"opt_in_rates"`
	OptInTimeBasedRates           []string    `json:"opt_in_time_based_rates"`
	ServiceLevelCode              string      `json:"service_level_code"`
}

type TCGShipment struct {
	ID                      int64  `json:"id"`
	Status                  string `json:"status"`
	CustomTrackingReference string `json:"custom_tracking_reference"`
	EstimatedCollection     string `json:"estimated_collection"`
	EstimatedDeliveryFrom   string `json:"estimated_delivery_from"`
}

type TCGTrackingEvent struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Source string `json:"source,omitempty"`
}

type TCGTracking struct {
	Status                  string             `json:"status"`
	CustomTrackingReference string             `json:"custom_tracking_reference"`
	TrackingEvents          []TCGTrackingEvent `json:"tracking_events"`
}
