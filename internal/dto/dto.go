package dto

import (
	"time"

	"goatgrids/internal/model"
)

// -------- orders --------

type CreateOrderRequest struct {
	Items           []model.OrderItem      `json:"items"`
	Subtotal        float64                `json:"subtotal"`
	ShippingCost    float64                `json:"shippingCost"`
	Total           float64                `json:"total"`
	CustomerName    string                 `json:"customerName"`
	CustomerEmail   string                 `json:"customerEmail"`
	CustomerPhone   string                 `json:"customerPhone"`
	ShippingAddress *model.Address         `json:"shippingAddress"`
	ShippingService *model.ShippingService `json:"shippingService"`
	Notes           string                 `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderStatusResponse is the public confirmation-page subset of an order.
type OrderStatusResponse struct {
	ID            string            `json:"id"`
	OrderNumber   string            `json:"orderNumber"`
	Items         []model.OrderItem `json:"items"`
	Total         float64           `json:"total"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"paymentStatus"`
	CreatedAt     time.Time         `json:"createdAt"`
}

type PaymentLinkResponse struct {
	PaymentURL string `json:"paymentUrl"`
}

// -------- shipping --------

type QuoteRequest struct {
	StreetAddress string  `json:"streetAddress"`
	Suburb        string  `json:"suburb"`
	City          string  `json:"city"`
	PostalCode    string  `json:"postalCode"`
	Province      string  `json:"province"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	ItemCount     int     `json:"itemCount"`
}

type Rate struct {
	ServiceCode       string  `json:"serviceCode"`
	ServiceName       string  `json:"serviceName"`
	Description       string  `json:"description"`
	Price             float64 `json:"price"`
	PriceExVat        float64 `json:"priceExVat"`
	EstimatedDelivery string  `json:"estimatedDelivery"`
	DeliveryDateFrom  string  `json:"deliveryDateFrom,omitempty"`
	DeliveryDateTo    string  `json:"deliveryDateTo,omitempty"`
}

type QuoteResponse struct {
	Success         bool          `json:"success"`
	Rates           []Rate        `json:"rates"`
	ItemCount       int           `json:"itemCount"`
	DeliveryAddress model.Address `json:"deliveryAddress"`
}

type ShipmentContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CreateShipmentRequest struct {
	OrderID         string            `json:"orderId"`
	OrderNumber     string            `json:"orderNumber"`
	ServiceCode     string            `json:"serviceCode"`
	DeliveryAddress *model.Address    `json:"deliveryAddress"`
	DeliveryContact *ShipmentContact  `json:"deliveryContact"`
	Lat             float64           `json:"lat"`
	Lng             float64           `json:"lng"`
	Items           []model.OrderItem `json:"items"`
}

type CreateShipmentResponse struct {
	Success             bool   `json:"success"`
	ShipmentID          int64  `json:"shipmentId"`
	TrackingReference   string `json:"trackingReference"`
	WaybillNumber       string `json:"waybillNumber"`
	Status              string `json:"status"`
	EstimatedCollection string `json:"estimatedCollection"`
	EstimatedDelivery   string `json:"estimatedDelivery"`
}

type TrackingResponse struct {
	Success           bool                     `json:"success"`
	TrackingReference string                   `json:"trackingReference"`
	Status            string                   `json:"status"`
	Events            []model.TCGTrackingEvent `json:"events"`
}

// -------- auth --------

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type StaffUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  StaffUser `json:"user"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// -------- members --------

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type MemberLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MemberProfile is a member without the password hash.
type MemberProfile struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Bio         string    `json:"bio"`
	AvatarImage string    `json:"avatarImage,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type MemberLoginResponse struct {
	Token  string        `json:"token"`
	Member MemberProfile `json:"member"`
}

type RegisterResponse struct {
	Message string        `json:"message"`
	Member  MemberProfile `json:"member"`
}

type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName"`
	Bio         *string `json:"bio"`
}

// MemberPublic is the subset of a member profile attached to feed posts.
type MemberPublic struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	AvatarImage string `json:"avatarImage,omitempty"`
}

// MemberPublicProfile is the public profile page payload.
type MemberPublicProfile struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Bio         string    `json:"bio"`
	AvatarImage string    `json:"avatarImage,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// -------- travel posts --------

type TravelPostResponse struct {
	model.TravelPost
	Member *MemberPublic `json:"member"`
}

type UpdateTravelPostRequest struct {
	Description      string   `json:"description"`
	Lat              *float64 `json:"lat"`
	Lng              *float64 `json:"lng"`
	PlaceName        string   `json:"placeName"`
	FormattedAddress string   `json:"formattedAddress"`
}

type TravelMapPin struct {
	ID         string         `json:"id"`
	Location   model.Location `json:"location"`
	Thumbnail  string         `json:"thumbnail,omitempty"`
	MemberName string         `json:"memberName"`
}

type MemberPostsResponse struct {
	Member *MemberPublic      `json:"member"`
	Posts  []model.TravelPost `json:"posts"`
}

// -------- gallery --------

type ReorderItem struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

type ReorderRequest struct {
	Items []ReorderItem `json:"items"`
}
