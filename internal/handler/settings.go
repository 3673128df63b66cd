package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

type SettingsServicer interface {
	GetTotalRevenue(ctx context.Context) float64
	SetTotalRevenue(ctx context.Context, totalRevenue float64) error
}

func SetupSettingsRoutes(g *echo.Group, settingsService SettingsServicer) {
	h := NewSettingsHandler(settingsService)
	sg := g.Group("/api/settings", RequireUser)
	sg.GET("/revenue", h.GetRevenue)
	sg.PUT("/revenue", h.PutRevenue)
}

type SettingsHandler struct {
	settingsService SettingsServicer
}

func NewSettingsHandler(settingsService SettingsServicer) *SettingsHandler {
	return &SettingsHandler{settingsService}
}

func (h *SettingsHandler) GetRevenue(c echo.Context) error {
	return c.JSON(http.StatusOK, RevenueParams{
		TotalRevenue: h.settingsService.GetTotalRevenue(c.Request().Context()),
	})
}

func (h *SettingsHandler) PutRevenue(c echo.Context) error {
	rp := new(RevenueParams)
	if err := c.Bind(rp); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid revenue data")
	}
	if rp.TotalRevenue < 0 {
		return newError(c, nil, http.StatusBadRequest, "totalRevenue must not be negative")
	}
	if err := h.settingsService.SetTotalRevenue(c.Request().Context(), rp.TotalRevenue); err != nil {
		return newError(c, err, http.StatusInternalServerError, "unable to update revenue")
	}
	return c.JSON(http.StatusOK, rp)
}
