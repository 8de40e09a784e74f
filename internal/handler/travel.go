package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"goatgrids/internal/dto"
	"goatgrids/internal/middleware"
	"goatgrids/internal/model"
	"goatgrids/internal/service"
	"goatgrids/internal/upload"
)

type TravelHandler struct {
	travelService service.TravelService
	saver         *upload.Saver
}

func NewTravelHandler(travelService service.TravelService, saver *upload.Saver) *TravelHandler {
	return &TravelHandler{
		travelService: travelService,
		saver:         saver,
	}
}

func (h *TravelHandler) Feed(c echo.Context) error {
	feed, err := h.travelService.Feed()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, feed)
}

func (h *TravelHandler) MapPins(c echo.Context) error {
	pins, err := h.travelService.MapPins()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pins)
}

func (h *TravelHandler) Get(c echo.Context) error {
	post, err := h.travelService.Get(c.Param("id"))
	if err != nil {
		return httpError(err, "Post not found")
	}
	return c.JSON(http.StatusOK, post)
}

func (h *TravelHandler) ByMember(c echo.Context) error {
	posts, err := h.travelService.ByMember(c.Param("memberId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

func (h *TravelHandler) Create(c echo.Context) error {
	claims := middleware.MemberFromContext(c)

	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Multipart form required")
	}

	files := form.File["photos"]
	if len(files) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "At least one photo is required")
	}

	description := c.FormValue("description")
	if description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Description is required")
	}

	lat, latErr := strconv.ParseFloat(c.FormValue("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.FormValue("lng"), 64)
	if latErr != nil || lngErr != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Location is required")
	}

	photos, err := h.saver.SaveImages(files, "travels", "travel", service.MaxTravelPhotos)
	if err != nil {
		return uploadError(err)
	}

	post, err := h.travelService.Create(claims.ID, description, photos, model.Location{
		Lat:              lat,
		Lng:              lng,
		PlaceName:        c.FormValue("placeName"),
		FormattedAddress: c.FormValue("formattedAddress"),
	})
	if err != nil {
		return httpError(err, "Post not found")
	}
	return c.JSON(http.StatusCreated, post)
}

func (h *TravelHandler) Update(c echo.Context) error {
	var req dto.UpdateTravelPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	claims := middleware.MemberFromContext(c)
	post, err := h.travelService.Update(claims.ID, c.Param("id"), &req)
	if err != nil {
		return httpError(err, "Post not found")
	}
	return c.JSON(http.StatusOK, post)
}

func (h *TravelHandler) Delete(c echo.Context) error {
	claims := middleware.MemberFromContext(c)

	post, err := h.travelService.Delete(claims.ID, c.Param("id"))
	if err != nil {
		return httpError(err, "Post not found")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Post deleted",
		"post":    post,
	})
}
