package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"goatgrids/internal/dto"
	"goatgrids/internal/service"
)

type OrderHandler struct {
	orderService service.OrderService
	baseURL      string
}

func NewOrderHandler(orderService service.OrderService, baseURL string) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		baseURL:      baseURL,
	}
}

func (h *OrderHandler) Create(c echo.Context) error {
	var req dto.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	order, err := h.orderService.Create(&req)
	if err != nil {
		return httpError(err, "Order not found")
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orderService.List()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.orderService.Get(c.Param("id"))
	if err != nil {
		return httpError(err, "Order not found")
	}
	return c.JSON(http.StatusOK, order)
}

// Status is the public confirmation-page endpoint; it exposes only a subset
// of the order.
func (h *OrderHandler) Status(c echo.Context) error {
	status, err := h.orderService.PublicStatus(c.Param("id"))
	if err != nil {
		return httpError(err, "Order not found")
	}
	return c.JSON(http.StatusOK, status)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req dto.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	order, err := h.orderService.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		return httpError(err, "Order not found")
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c echo.Context) error {
	order, err := h.orderService.Delete(c.Param("id"))
	if err != nil {
		return httpError(err, "Order not found")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Order deleted",
		"order":   order,
	})
}

func (h *OrderHandler) CreatePaymentLink(c echo.Context) error {
	ctx := c.Request().Context()

	paymentURL, err := h.orderService.CreatePaymentLink(ctx, c.Param("id"), h.effectiveBaseURL(c))
	if err != nil {
		return httpError(err, "Order not found")
	}
	return c.JSON(http.StatusOK, dto.PaymentLinkResponse{PaymentURL: paymentURL})
}

// effectiveBaseURL prefers the configured BASE_URL and otherwise derives the
// base from the request, honouring X-Forwarded-Proto behind a proxy.
func (h *OrderHandler) effectiveBaseURL(c echo.Context) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	scheme := c.Request().Header.Get(echo.HeaderXForwardedProto)
	if scheme == "" {
		scheme = c.Scheme()
	}
	return scheme + "://" + c.Request().Host
}
