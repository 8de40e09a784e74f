package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"goatgrids/internal/dto"
	"goatgrids/internal/middleware"
	"goatgrids/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	resp, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		return httpError(err, "User not found")
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Verify(c echo.Context) error {
	claims := middleware.StaffFromContext(c)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"valid": true,
		"user":  dto.StaffUser{ID: claims.ID, Username: claims.Username},
	})
}

func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req dto.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	claims := middleware.StaffFromContext(c)
	if err := h.authService.ChangePassword(claims.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return httpError(err, "User not found")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Password changed successfully"})
}
