package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"goatgrids/internal/client"
	"goatgrids/internal/dto"
	"goatgrids/internal/service"
)

type ShippingHandler struct {
	shippingService service.ShippingService
}

func NewShippingHandler(shippingService service.ShippingService) *ShippingHandler {
	return &ShippingHandler{shippingService: shippingService}
}

func (h *ShippingHandler) Quote(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	quote, err := h.shippingService.GetQuote(ctx, &req)
	if err != nil {
		return httpError(err, "Quote not found")
	}
	return c.JSON(http.StatusOK, quote)
}

func (h *ShippingHandler) CreateShipment(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	shipment, err := h.shippingService.CreateShipment(ctx, &req)
	if err != nil {
		return httpError(err, "Shipment not found")
	}
	return c.JSON(http.StatusOK, shipment)
}

func (h *ShippingHandler) Track(c echo.Context) error {
	ctx := c.Request().Context()

	tracking, err := h.shippingService.Track(ctx, c.Param("waybill"))
	if err != nil {
		if errors.Is(err, client.ErrShipmentNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Shipment not found")
		}
		return httpError(err, "Shipment not found")
	}
	return c.JSON(http.StatusOK, tracking)
}
