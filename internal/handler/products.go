package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/paverbrasil/paveradmin/internal/store"
)

type ProductServicer interface {
	CreateProduct(
		ctx context.Context,
		name, price, category, unit, description string,
		stock int64,
	) (*store.Product, error)
	GetProductByID(ctx context.Context, id int64) (*store.Product, error)
	ListProducts(ctx context.Context) []*store.Product
	UpdateProduct(ctx context.Context, id int64, update store.ProductUpdate) error
	DeleteProduct(ctx context.Context, id int64) error
}

func SetupProductRoutes(g *echo.Group, productService ProductServicer) {
	h := NewProductHandler(productService)
	pg := g.Group("/api/products", RequireUser)
	pg.GET("", h.GetProducts)
	pg.GET("/:product_id", h.GetProduct)
	pg.POST("", h.PostProduct)
	pg.PATCH("/:product_id", h.PatchProduct)
	pg.DELETE("/:product_id", h.DeleteProduct)
}

type ProductHandler struct {
	productService ProductServicer
}

func NewProductHandler(productService ProductServicer) *ProductHandler {
	return &ProductHandler{productService}
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.productService.ListProducts(c.Request().Context()))
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	pp := new(ProductParams)
	if err := c.Bind(pp); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid product data")
	}
	product, err := h.productService.GetProductByID(c.Request().Context(), pp.ProductID)
	if err != nil {
		return newError(c, err, http.StatusNotFound, "product not found")
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) PostProduct(c echo.Context) error {
	pp := new(ProductParams)
	if err := c.Bind(pp); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid product data")
	}
	if pp.Name == nil || *pp.Name == "" {
		return newError(c, nil, http.StatusBadRequest, "name is required")
	}
	if pp.Price == nil || !isDecimal(*pp.Price) {
		return newError(c, nil, http.StatusBadRequest, "price must be a decimal value")
	}
	category := "outro"
	if pp.Category != nil {
		category = *pp.Category
	}
	if !isOneOf(category, productCategories) {
		return newError(c, nil, http.StatusBadRequest, "invalid category")
	}
	unit := "un"
	if pp.Unit != nil {
		unit = *pp.Unit
	}
	if !isOneOf(unit, productUnits) {
		return newError(c, nil, http.StatusBadRequest, "invalid unit")
	}
	var stock int64
	if pp.Stock != nil {
		stock = *pp.Stock
	}

	product, err := h.productService.CreateProduct(
		c.Request().Context(),
		*pp.Name, *pp.Price, category, unit, strOrEmpty(pp.Description), stock,
	)
	if err != nil {
		return newError(c, err, http.StatusInternalServerError, "unable to create product")
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) PatchProduct(c echo.Context) error {
	pp := new(ProductParams)
	if err := c.Bind(pp); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid product data")
	}
	if pp.Name != nil && *pp.Name == "" {
		return newError(c, nil, http.StatusBadRequest, "name must not be empty")
	}
	if pp.Price != nil && !isDecimal(*pp.Price) {
		return newError(c, nil, http.StatusBadRequest, "price must be a decimal value")
	}
	if pp.Category != nil && !isOneOf(*pp.Category, productCategories) {
		return newError(c, nil, http.StatusBadRequest, "invalid category")
	}
	if pp.Unit != nil && !isOneOf(*pp.Unit, productUnits) {
		return newError(c, nil, http.StatusBadRequest, "invalid unit")
	}

	if err := h.productService.UpdateProduct(c.Request().Context(), pp.ProductID, store.ProductUpdate{
		Name:        pp.Name,
		Price:       pp.Price,
		Category:    pp.Category,
		Unit:        pp.Unit,
		Description: pp.Description,
		Stock:       pp.Stock,
	}); err != nil {
		return newError(c, err, http.StatusInternalServerError, "unable to update product")
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	pp := new(ProductParams)
	if err := c.Bind(pp); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid product data")
	}
	if err := h.productService.DeleteProduct(c.Request().Context(), pp.ProductID); err != nil {
		return newError(c, err, http.StatusInternalServerError, "unable to delete product")
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
