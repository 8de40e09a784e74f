package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"goatgrids/internal/dto"
	"goatgrids/internal/service"
	"goatgrids/internal/upload"
)

type GalleryHandler struct {
	catalogService service.CatalogService
	saver          *upload.Saver
}

func NewGalleryHandler(catalogService service.CatalogService, saver *upload.Saver) *GalleryHandler {
	return &GalleryHandler{
		catalogService: catalogService,
		saver:          saver,
	}
}

func (h *GalleryHandler) List(c echo.Context) error {
	images, err := h.catalogService.Gallery()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, images)
}

func (h *GalleryHandler) Add(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Image file required")
	}

	path, err := h.saver.SaveImage(file, "", "gallery")
	if err != nil {
		return uploadError(err)
	}

	image, err := h.catalogService.AddGalleryImage(path, c.FormValue("alt"))
	if err != nil {
		return httpError(err, "Gallery image not found")
	}
	return c.JSON(http.StatusCreated, image)
}

func (h *GalleryHandler) Reorder(c echo.Context) error {
	var req dto.ReorderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Items array required")
	}

	images, err := h.catalogService.ReorderGallery(&req)
	if err != nil {
		return httpError(err, "Gallery image not found")
	}
	return c.JSON(http.StatusOK, images)
}

func (h *GalleryHandler) Update(c echo.Context) error {
	var req struct {
		Alt string `json:"alt"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	image, err := h.catalogService.UpdateGalleryAlt(c.Param("id"), req.Alt)
	if err != nil {
		return httpError(err, "Gallery image not found")
	}
	return c.JSON(http.StatusOK, image)
}

func (h *GalleryHandler) Delete(c echo.Context) error {
	image, err := h.catalogService.DeleteGalleryImage(c.Param("id"))
	if err != nil {
		return httpError(err, "Gallery image not found")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Gallery image deleted",
		"image":   image,
	})
}
