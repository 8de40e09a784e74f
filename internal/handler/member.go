package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"goatgrids/internal/dto"
	"goatgrids/internal/middleware"
	"goatgrids/internal/service"
)

type MemberHandler struct {
	memberService service.MemberService
}

func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

func (h *MemberHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	resp, err := h.memberService.Register(&req)
	if err != nil {
		return httpError(err, "Member not found")
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *MemberHandler) Login(c echo.Context) error {
	var req dto.MemberLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	resp, err := h.memberService.Login(req.Email, req.Password)
	if err != nil {
		return httpError(err, "Member not found")
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *MemberHandler) Verify(c echo.Context) error {
	claims := middleware.MemberFromContext(c)

	profile, err := h.memberService.Profile(claims.ID)
	if err != nil {
		return httpError(err, "Member not found")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"valid":  true,
		"member": profile,
	})
}

func (h *MemberHandler) Profile(c echo.Context) error {
	claims := middleware.MemberFromContext(c)

	profile, err := h.memberService.Profile(claims.ID)
	if err != nil {
		return httpError(err, "Member not found")
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *MemberHandler) UpdateProfile(c echo.Context) error {
	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	claims := middleware.MemberFromContext(c)
	profile, err := h.memberService.UpdateProfile(claims.ID, &req)
	if err != nil {
		return httpError(err, "Member not found")
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *MemberHandler) ChangePassword(c echo.Context) error {
	var req dto.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	claims := middleware.MemberFromContext(c)
	if err := h.memberService.ChangePassword(claims.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return httpError(err, "Member not found")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Password changed successfully"})
}

func (h *MemberHandler) PublicProfile(c echo.Context) error {
	profile, err := h.memberService.PublicProfile(c.Param("id"))
	if err != nil {
		return httpError(err, "Member not found")
	}
	return c.JSON(http.StatusOK, profile)
}
