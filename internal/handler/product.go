package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"goatgrids/internal/service"
	"goatgrids/internal/upload"
)

type ProductHandler struct {
	catalogService service.CatalogService
	saver          *upload.Saver
}

func NewProductHandler(catalogService service.CatalogService, saver *upload.Saver) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		saver:          saver,
	}
}

func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.catalogService.Products()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.catalogService.Product(c.Param("id"))
	if err != nil {
		return httpError(err, "Product not found")
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c echo.Context) error {
	fields, err := h.productFields(c)
	if err != nil {
		return err
	}

	product, err := h.catalogService.CreateProduct(fields)
	if err != nil {
		return httpError(err, "Product not found")
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c echo.Context) error {
	fields, err := h.productFields(c)
	if err != nil {
		return err
	}

	product, err := h.catalogService.UpdateProduct(c.Param("id"), fields)
	if err != nil {
		return httpError(err, "Product not found")
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	product, err := h.catalogService.DeleteProduct(c.Param("id"))
	if err != nil {
		return httpError(err, "Product not found")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Product deleted",
		"product": product,
	})
}

func (h *ProductHandler) ToggleStock(c echo.Context) error {
	product, err := h.catalogService.ToggleStock(c.Param("id"))
	if err != nil {
		return httpError(err, "Product not found")
	}
	return c.JSON(http.StatusOK, product)
}

// productFields reads the multipart form, storing the uploaded image (if
// any) before handing the field set to the service. Absent fields stay nil
// so updates remain partial.
func (h *ProductHandler) productFields(c echo.Context) (*service.ProductFields, error) {
	fields := &service.ProductFields{}

	formString := func(name string) *string {
		values, err := c.FormParams()
		if err != nil {
			return nil
		}
		if _, ok := values[name]; !ok {
			return nil
		}
		v := c.FormValue(name)
		return &v
	}

	fields.Name = formString("name")
	fields.Tag = formString("tag")
	fields.TagIcon = formString("tagIcon")
	fields.Description = formString("description")
	fields.Badge = formString("badge")
	fields.BadgeType = formString("badgeType")

	if raw := formString("price"); raw != nil {
		price, err := strconv.ParseFloat(*raw, 64)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid price")
		}
		fields.Price = &price
	}
	if raw := formString("specs"); raw != nil {
		var specs []string
		if err := json.Unmarshal([]byte(*raw), &specs); err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid specs")
		}
		fields.Specs = &specs
	}
	if raw := formString("inStock"); raw != nil {
		inStock := *raw == "true"
		fields.InStock = &inStock
	}

	file, err := c.FormFile("image")
	if err == nil {
		path, err := h.saver.SaveImage(file, "", "product")
		if err != nil {
			return nil, uploadError(err)
		}
		fields.Image = &path
	} else if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid upload")
	}

	return fields, nil
}

func uploadError(err error) error {
	if errors.Is(err, upload.ErrUnsupportedType) || errors.Is(err, upload.ErrFileTooLarge) || errors.Is(err, upload.ErrTooManyFiles) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}
