package model

import "time"

// Order statuses settable by staff. Any status may follow any other; there
// is no transition graph.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is one unit of a product; quantity is implicit, one entry per
// unit purchased.
type OrderItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Address struct {
	StreetAddress string `json:"streetAddress"`
	Suburb        string `json:"suburb"`
	City          string `json:"city"`
	PostalCode    string `json:"postalCode"`
	Province      string `json:"province"`
}

// ShippingService is the rate the customer picked at checkout.
type ShippingService struct {
	ServiceCode       string  `json:"serviceCode"`
	ServiceName       string  `json:"serviceName"`
	Price             float64 `json:"price"`
	EstimatedDelivery string  `json:"estimatedDelivery"`
}

type Order struct {
	ID              string           `json:"id"`
	OrderNumber     string           `json:"orderNumber"`
	Items           []OrderItem      `json:"items"`
	Subtotal        float64          `json:"subtotal"`
	ShippingCost    float64          `json:"shippingCost"`
	Total           float64          `json:"total"`
	CustomerName    string           `json:"customerName"`
	CustomerEmail   string           `json:"customerEmail"`
	CustomerPhone   string           `json:"customerPhone"`
	ShippingAddress *Address         `json:"shippingAddress"`
	ShippingService *ShippingService `json:"shippingService"`
	ShipmentID      string           `json:"shipmentId,omitempty"`
	TrackingNumber  string           `json:"trackingNumber,omitempty"`
	Notes           string           `json:"notes"`
	Status          string           `json:"status"`
	PaymentStatus   string           `json:"paymentStatus"`
	YocoCheckoutID  string           `json:"yocoCheckoutId,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       *time.Time       `json:"updatedAt,omitempty"`
	PaidAt          *time.Time       `json:"paidAt,omitempty"`
}

type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Tag         string     `json:"tag"`
	TagIcon     string     `json:"tagIcon"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Image       string     `json:"image"`
	Specs       []string   `json:"specs"`
	Badge       string     `json:"badge"`
	BadgeType   string     `json:"badgeType"`
	InStock     bool       `json:"inStock"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// GalleryImage order values stay contiguous 0..n-1; deletes renumber the
// remaining images.
type GalleryImage struct {
	ID    string `json:"id"`
	Image string `json:"image"`
	Alt   string `json:"alt"`
	Order int    `json:"order"`
}

// User is a staff (admin dashboard) account.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"` // bcrypt hash
}

type Member struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"` // stored lowercased, unique
	Password    string    `json:"password"`
	DisplayName string    `json:"displayName"`
	Bio         string    `json:"bio"`
	AvatarImage string    `json:"avatarImage,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Location struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	PlaceName        string  `json:"placeName"`
	FormattedAddress string  `json:"formattedAddress"`
}

type TravelPost struct {
	ID          string    `json:"id"`
	MemberID    string    `json:"memberId"`
	Description string    `json:"description"`
	Photos      []string  `json:"photos"`
	Location    Location  `json:"location"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
