package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"goatgrids/internal/client"
	"goatgrids/internal/dto"
	"goatgrids/internal/model"
	"goatgrids/internal/repository"
)

type OrderService interface {
	Create(req *dto.CreateOrderRequest) (*model.Order, error)
	List() ([]model.Order, error)
	Get(id string) (*model.Order, error)
	PublicStatus(id string) (*dto.OrderStatusResponse, error)
	UpdateStatus(id, status string) (*model.Order, error)
	Delete(id string) (*model.Order, error)
	CreatePaymentLink(ctx context.Context, id, baseURL string) (string, error)
	HandleWebhook(ctx context.Context, body []byte) error
}

type orderServiceImpl struct {
	orders     repository.OrderRepository
	yocoClient client.YocoClient
	yocoSecret string
}

func NewOrderService(orders repository.OrderRepository, yocoClient client.YocoClient, yocoSecret string) OrderService {
	return &orderServiceImpl{
		orders:     orders,
		yocoClient: yocoClient,
		yocoSecret: yocoSecret,
	}
}

func (s *orderServiceImpl) Create(req *dto.CreateOrderRequest) (*model.Order, error) {
	if len(req.Items) == 0 {
		return nil, Validationf("Order items required")
	}

	itemsTotal := decimal.Zero
	for _, item := range req.Items {
		itemsTotal = itemsTotal.Add(decimal.NewFromFloat(item.Price))
	}

	shipping := decimal.NewFromFloat(req.ShippingCost)

	subtotal := itemsTotal
	if req.Subtotal > 0 {
		subtotal = decimal.NewFromFloat(req.Subtotal)
	}

	total := subtotal.Add(shipping)
	if req.Total > 0 {
		total = decimal.NewFromFloat(req.Total)
	}

	customerName := req.CustomerName
	if customerName == "" {
		customerName = "Customer"
	}

	now := time.Now().UTC()
	order := &model.Order{
		ID:              uuid.NewString(),
		OrderNumber:     orderNumber(now),
		Items:           req.Items,
		Subtotal:        subtotal.InexactFloat64(),
		ShippingCost:    shipping.InexactFloat64(),
		Total:           total.InexactFloat64(),
		CustomerName:    customerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		ShippingService: req.ShippingService,
		Notes:           req.Notes,
		Status:          model.OrderStatusPending,
		PaymentStatus:   model.PaymentStatusUnpaid,
		CreatedAt:       now,
	}

	if err := s.orders.Create(order); err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}

	log.Printf("Order created: %s - Total: R%v (incl. R%v shipping)",
		order.OrderNumber, order.Total, order.ShippingCost)

	return order, nil
}

func (s *orderServiceImpl) List() ([]model.Order, error) {
	orders, err := s.orders.All()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (s *orderServiceImpl) Get(id string) (*model.Order, error) {
	return s.orders.FindByID(id)
}

func (s *orderServiceImpl) PublicStatus(id string) (*dto.OrderStatusResponse, error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		return nil, err
	}
	return &dto.OrderStatusResponse{
		ID:            order.ID,
		OrderNumber:   order.OrderNumber,
		Items:         order.Items,
		Total:         order.Total,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		CreatedAt:     order.CreatedAt,
	}, nil
}

func (s *orderServiceImpl) UpdateStatus(id, status string) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.orders.Update(id, func(order *model.Order) {
		now := time.Now().UTC()
		order.Status = status
		order.UpdatedAt = &now
	})
}

func (s *orderServiceImpl) Delete(id string) (*model.Order, error) {
	return s.orders.Delete(id)
}

// CreatePaymentLink creates a hosted Yoco checkout for the order and
// persists the checkout id for later webhook correlation. The already-paid
// check happens before any provider call.
func (s *orderServiceImpl) CreatePaymentLink(ctx context.Context, id, baseURL string) (string, error) {
	if s.yocoSecret == "" {
		return "", ErrPaymentNotConfigured
	}

	order, err := s.orders.FindByID(id)
	if err != nil {
		return "", err
	}

	if order.PaymentStatus == model.PaymentStatusPaid {
		return "", ErrAlreadyPaid
	}

	amountInCents := decimal.NewFromFloat(order.Total).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()

	confirmationURL := func(status string) string {
		return fmt.Sprintf("%s/order-confirmation.html?orderId=%s&status=%s", baseURL, order.ID, status)
	}

	checkout, err := s.yocoClient.CreateCheckout(ctx, &client.CheckoutRequest{
		Amount:   amountInCents,
		Currency: "ZAR",
		Metadata: map[string]string{
			"orderId":     order.ID,
			"orderNumber": order.OrderNumber,
		},
		SuccessURL: confirmationURL("success"),
		CancelURL:  confirmationURL("cancelled"),
		FailureURL: confirmationURL("failed"),
	})
	if err != nil {
		return "", fmt.Errorf("yoco create checkout: %w", err)
	}

	if _, err := s.orders.Update(order.ID, func(o *model.Order) {
		o.YocoCheckoutID = checkout.ID
	}); err != nil {
		return "", fmt.Errorf("store checkout id: %w", err)
	}

	return checkout.RedirectURL, nil
}

// HandleWebhook reconciles a Yoco event against stored orders. The order is
// looked up by the metadata order id first, then by the stored checkout
// reference. An event matching nothing is logged and dropped; the caller
// acknowledges regardless.
func (s *orderServiceImpl) HandleWebhook(ctx context.Context, body []byte) error {
	var event model.YocoWebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("decode webhook payload: %w", err)
	}

	log.Println("Yoco webhook received:", event.Type)

	if event.Type != model.YocoEventCheckoutSucceeded {
		return nil
	}

	checkoutID := event.Payload.ID
	orderID := event.Payload.Metadata.OrderID

	order, err := s.findWebhookOrder(orderID, checkoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Printf("No order found for webhook (orderId=%q, checkoutId=%q)", orderID, checkoutID)
			return nil
		}
		return err
	}

	if _, err := s.orders.Update(order.ID, func(o *model.Order) {
		now := time.Now().UTC()
		o.PaymentStatus = model.PaymentStatusPaid
		o.PaidAt = &now
	}); err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}

	log.Printf("Order %s marked as paid", order.ID)
	return nil
}

func (s *orderServiceImpl) findWebhookOrder(orderID, checkoutID string) (*model.Order, error) {
	if orderID != "" {
		order, err := s.orders.FindByID(orderID)
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}
	return s.orders.FindByCheckoutID(checkoutID)
}

// orderNumber derives the human-readable order number from the creation
// time, e.g. GG-M2X9K1F0.
func orderNumber(t time.Time) string {
	return "GG-" + strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
}
