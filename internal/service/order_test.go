package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goatgrids/internal/client"
	"goatgrids/internal/dto"
	"goatgrids/internal/model"
	"goatgrids/internal/repository"
)

type fakeYocoClient struct {
	calls    int
	checkout *client.Checkout
	err      error
}

func (f *fakeYocoClient) CreateCheckout(ctx context.Context, req *client.CheckoutRequest) (*client.Checkout, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.checkout, nil
}

func newOrderService(t *testing.T, yoco *fakeYocoClient) (OrderService, repository.OrderRepository) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, repository.EnsureDataFiles(dir))
	orders := repository.NewOrderRepository(dir)
	return NewOrderService(orders, yoco, "sk_test_secret"), orders
}

func TestOrderService_createComputesTotals(t *testing.T) {
	svc, _ := newOrderService(t, &fakeYocoClient{})

	order, err := svc.Create(&dto.CreateOrderRequest{
		Items: []model.OrderItem{{Name: "Grid S", Price: 100}, {Name: "Grid L", Price: 250}},
	})
	require.NoError(t, err)

	assert.Equal(t, 350.0, order.Subtotal)
	assert.Equal(t, 350.0, order.Total)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, model.PaymentStatusUnpaid, order.PaymentStatus)
	assert.NotEmpty(t, order.ID)
	assert.Contains(t, order.OrderNumber, "GG-")
}

func TestOrderService_createAddsShippingToTotal(t *testing.T) {
	svc, _ := newOrderService(t, &fakeYocoClient{})

	order, err := svc.Create(&dto.CreateOrderRequest{
		Items:        []model.OrderItem{{Name: "Grid S", Price: 100}},
		ShippingCost: 95.5,
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, order.Subtotal)
	assert.Equal(t, 95.5, order.ShippingCost)
	assert.Equal(t, 195.5, order.Total)
}

func TestOrderService_createRequiresItems(t *testing.T) {
	svc, _ := newOrderService(t, &fakeYocoClient{})

	_, err := svc.Create(&dto.CreateOrderRequest{})

	var validation *ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestOrderService_updateStatus(t *testing.T) {
	svc, _ := newOrderService(t, &fakeYocoClient{})
	order, err := svc.Create(&dto.CreateOrderRequest{Items: []model.OrderItem{{Price: 100}}})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(order.ID, model.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusShipped, updated.Status)

	_, err = svc.UpdateStatus(order.ID, "exploded")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestOrderService_paymentLinkConflictSkipsProvider(t *testing.T) {
	yoco := &fakeYocoClient{checkout: &client.Checkout{ID: "ch_1", RedirectURL: "https://pay.example/ch_1"}}
	svc, orders := newOrderService(t, yoco)

	order, err := svc.Create(&dto.CreateOrderRequest{Items: []model.OrderItem{{Price: 100}}})
	require.NoError(t, err)

	_, err = orders.Update(order.ID, func(o *model.Order) {
		o.PaymentStatus = model.PaymentStatusPaid
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = svc.CreatePaymentLink(context.Background(), order.ID, "https://shop.example")
		assert.ErrorIs(t, err, ErrAlreadyPaid)
	}
	assert.Zero(t, yoco.calls, "provider must not be called for a paid order")
}

func TestOrderService_paymentLinkStoresCheckoutID(t *testing.T) {
	yoco := &fakeYocoClient{checkout: &client.Checkout{ID: "ch_1", RedirectURL: "https://pay.example/ch_1"}}
	svc, orders := newOrderService(t, yoco)

	order, err := svc.Create(&dto.CreateOrderRequest{Items: []model.OrderItem{{Price: 249.99}}})
	require.NoError(t, err)

	url, err := svc.CreatePaymentLink(context.Background(), order.ID, "https://shop.example")
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/ch_1", url)

	stored, err := orders.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "ch_1", stored.YocoCheckoutID)
}

func TestOrderService_paymentLinkNotConfigured(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, repository.EnsureDataFiles(dir))
	svc := NewOrderService(repository.NewOrderRepository(dir), &fakeYocoClient{}, "")

	_, err := svc.CreatePaymentLink(context.Background(), "any", "https://shop.example")
	assert.ErrorIs(t, err, ErrPaymentNotConfigured)
}

func TestOrderService_paymentLinkUpstreamFailure(t *testing.T) {
	yoco := &fakeYocoClient{err: errors.New("yoco error 502: bad gateway")}
	svc, _ := newOrderService(t, yoco)

	order, err := svc.Create(&dto.CreateOrderRequest{Items: []model.OrderItem{{Price: 100}}})
	require.NoError(t, err)

	_, err = svc.CreatePaymentLink(context.Background(), order.ID, "https://shop.example")
	assert.Error(t, err)
}

func webhookBody(t *testing.T, orderID, checkoutID string) []byte {
	t.Helper()
	event := model.YocoWebhookEvent{
		Type: model.YocoEventCheckoutSucceeded,
		Payload: model.YocoPayload{
			ID:       checkoutID,
			Metadata: model.YocoMetadata{OrderID: orderID},
		},
	}
	body, err := json.Marshal(event)
	require.NoError(t, err)
	return body
}

func TestOrderService_webhookMarksPaidByMetadata(t *testing.T) {
	svc, orders := newOrderService(t, &fakeYocoClient{})
	order, err := svc.Create(&dto.CreateOrderRequest{Items: []model.OrderItem{{Price: 100}}})
	require.NoError(t, err)

	require.NoError(t, svc.HandleWebhook(context.Background(), webhookBody(t, order.ID, "ch_x")))

	stored, err := orders.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPaid, stored.PaymentStatus)
	require.NotNil(t, stored.PaidAt)
}

func TestOrderService_webhookFallsBackToCheckoutReference(t *testing.T) {
	yoco := &fakeYocoClient{checkout: &client.Checkout{ID: "ch_42", RedirectURL: "https://pay.example/ch_42"}}
	svc, orders := newOrderService(t, yoco)

	order, err := svc.Create(&dto.CreateOrderRequest{Items: []model.OrderItem{{Price: 100}}})
	require.NoError(t, err)
	_, err = svc.CreatePaymentLink(context.Background(), order.ID, "https://shop.example")
	require.NoError(t, err)

	// metadata order id matches nothing, checkout reference does
	require.NoError(t, svc.HandleWebhook(context.Background(), webhookBody(t, "unknown-order", "ch_42")))

	stored, err := orders.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPaid, stored.PaymentStatus)
}

func TestOrderService_webhookNoMatchIsAcknowledged(t *testing.T) {
	svc, orders := newOrderService(t, &fakeYocoClient{})
	order, err := svc.Create(&dto.CreateOrderRequest{Items: []model.OrderItem{{Price: 100}}})
	require.NoError(t, err)

	require.NoError(t, svc.HandleWebhook(context.Background(), webhookBody(t, "unknown", "ch_unknown")))

	stored, err := orders.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusUnpaid, stored.PaymentStatus)
	assert.Nil(t, stored.PaidAt)
}

func TestOrderService_webhookIgnoresOtherEvents(t *testing.T) {
	svc, orders := newOrderService(t, &fakeYocoClient{})
	order, err := svc.Create(&dto.CreateOrderRequest{Items: []model.OrderItem{{Price: 100}}})
	require.NoError(t, err)

	body := []byte(fmt.Sprintf(`{"type":"checkout.failed","payload":{"id":"x","metadata":{"orderId":%q}}}`, order.ID))
	require.NoError(t, svc.HandleWebhook(context.Background(), body))

	stored, err := orders.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusUnpaid, stored.PaymentStatus)
}

func TestOrderService_listNewestFirst(t *testing.T) {
	svc, _ := newOrderService(t, &fakeYocoClient{})

	first, err := svc.Create(&dto.CreateOrderRequest{Items: []model.OrderItem{{Price: 1}}})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := svc.Create(&dto.CreateOrderRequest{Items: []model.OrderItem{{Price: 2}}})
	require.NoError(t, err)

	orders, err := svc.List()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}
