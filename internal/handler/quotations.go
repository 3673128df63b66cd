package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/paverbrasil/paveradmin/internal/store"
)

type QuotationServicer interface {
	CreateQuotation(
		ctx context.Context,
		clientID int64,
		description string,
		area *string,
		totalValue, deliveryValue, status string,
	) (*store.Quotation, error)
	GetQuotationByID(ctx context.Context, id int64) (*store.Quotation, error)
	ListQuotations(ctx context.Context) []*store.Quotation
	UpdateQuotation(ctx context.Context, id int64, update store.QuotationUpdate) error
	DeleteQuotation(ctx context.Context, id int64) error
}

func SetupQuotationRoutes(g *echo.Group, quotationService QuotationServicer) {
	h := NewQuotationHandler(quotationService)
	qg := g.Group("/api/quotations", RequireUser)
	qg.GET("", h.GetQuotations)
	qg.GET("/:quotation_id", h.GetQuotation)
	qg.POST("", h.PostQuotation)
	qg.PATCH("/:quotation_id", h.PatchQuotation)
	qg.DELETE("/:quotation_id", h.DeleteQuotation)
}

type QuotationHandler struct {
	quotationService QuotationServicer
}

func NewQuotationHandler(quotationService QuotationServicer) *QuotationHandler {
	return &QuotationHandler{quotationService}
}

func (h *QuotationHandler) GetQuotations(c echo.Context) error {
	return c.JSON(http.StatusOK, h.quotationService.ListQuotations(c.Request().Context()))
}

func (h *QuotationHandler) GetQuotation(c echo.Context) error {
	qp := new(QuotationParams)
	if err := c.Bind(qp); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid quotation data")
	}
	quotation, err := h.quotationService.GetQuotationByID(c.Request().Context(), qp.QuotationID)
	if err != nil {
		return newError(c, err, http.StatusNotFound, "quotation not found")
	}
	return c.JSON(http.StatusOK, quotation)
}

func (h *QuotationHandler) PostQuotation(c echo.Context) error {
	qp := new(QuotationParams)
	if err := c.Bind(qp); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid quotation data")
	}
	if qp.ClientID == nil {
		return newError(c, nil, http.StatusBadRequest, "clientId is required")
	}
	if qp.TotalValue == nil || !isDecimal(*qp.TotalValue) {
		return newError(c, nil, http.StatusBadRequest, "totalValue must be a decimal value")
	}
	deliveryValue := "0"
	if qp.DeliveryValue != nil {
		if !isDecimal(*qp.DeliveryValue) {
			return newError(c, nil, http.StatusBadRequest, "deliveryValue must be a decimal value")
		}
		deliveryValue = *qp.DeliveryValue
	}
	if qp.Area != nil && !isDecimal(*qp.Area) {
		return newError(c, nil, http.StatusBadRequest, "area must be a decimal value")
	}
	status := "pending"
	if qp.Status != nil {
		status = *qp.Status
	}
	if !isOneOf(status, quotationStatuses) {
		return newError(c, nil, http.StatusBadRequest, "invalid status")
	}

	quotation, err := h.quotationService.CreateQuotation(
		c.Request().Context(),
		*qp.ClientID, strOrEmpty(qp.Description), qp.Area,
		*qp.TotalValue, deliveryValue, status,
	)
	if err != nil {
		if store.IsForeignKeyConstraintError(err) {
			return newError(c, err, http.StatusBadRequest, "client not found")
		}
		return newError(c, err, http.StatusInternalServerError, "unable to create quotation")
	}
	return c.JSON(http.StatusOK, quotation)
}

func (h *QuotationHandler) PatchQuotation(c echo.Context) error {
	qp := new(QuotationParams)
	if err := c.Bind(qp); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid quotation data")
	}
	if qp.TotalValue != nil && !isDecimal(*qp.TotalValue) {
		return newError(c, nil, http.StatusBadRequest, "totalValue must be a decimal value")
	}
	if qp.DeliveryValue != nil && !isDecimal(*qp.DeliveryValue) {
		return newError(c, nil, http.StatusBadRequest, "deliveryValue must be a decimal value")
	}
	if qp.Area != nil && !isDecimal(*qp.Area) {
		return newError(c, nil, http.StatusBadRequest, "area must be a decimal value")
	}
	if qp.Status != nil && !isOneOf(*qp.Status, quotationStatuses) {
		return newError(c, nil, http.StatusBadRequest, "invalid status")
	}

	if err := h.quotationService.UpdateQuotation(c.Request().Context(), qp.QuotationID, store.QuotationUpdate{
		ClientID:      qp.ClientID,
		Description:   qp.Description,
		Area:          qp.Area,
		TotalValue:    qp.TotalValue,
		DeliveryValue: qp.DeliveryValue,
		Status:        qp.Status,
	}); err != nil {
		if store.IsForeignKeyConstraintError(err) {
			return newError(c, err, http.StatusBadRequest, "client not found")
		}
		return newError(c, err, http.StatusInternalServerError, "unable to update quotation")
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *QuotationHandler) DeleteQuotation(c echo.Context) error {
	qp := new(QuotationParams)
	if err := c.Bind(qp); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid quotation data")
	}
	if err := h.quotationService.DeleteQuotation(c.Request().Context(), qp.QuotationID); err != nil {
		return newError(c, err, http.StatusInternalServerError, "unable to delete quotation")
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
