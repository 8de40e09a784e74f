package handler

import (
	"io"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"goatgrids/internal/service"
)

type WebhookHandler struct {
	orderService service.OrderService
}

func NewWebhookHandler(orderService service.OrderService) *WebhookHandler {
	return &WebhookHandler{orderService: orderService}
}

// Yoco receives payment events. The raw body is read so a signature could be
// verified before parsing. Internal failures are logged but never surfaced:
// a non-2xx response would make the provider retry an event we cannot
// process, so only a transport-level failure may prevent acknowledgment.
func (h *WebhookHandler) Yoco(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.orderService.HandleWebhook(ctx, body); err != nil {
		log.Println("Webhook processing error:", err)
	}

	return c.String(http.StatusOK, "OK")
}
