package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/paverbrasil/paveradmin/internal/store"
)

// Params mirror the server's PATCH semantics: nil fields are left unchanged.

type ClientParams struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Status *string `json:"status,omitempty"`
}

type ProductParams struct {
	Name        *string `json:"name,omitempty"`
	Price       *string `json:"price,omitempty"`
	Category    *string `json:"category,omitempty"`
	Unit        *string `json:"unit,omitempty"`
	Description *string `json:"description,omitempty"`
	Stock       *int64  `json:"stock,omitempty"`
}

type QuotationParams struct {
	ClientID      *int64  `json:"clientId,omitempty"`
	Description   *string `json:"description,omitempty"`
	Area          *string `json:"area,omitempty"`
	TotalValue    *string `json:"totalValue,omitempty"`
	DeliveryValue *string `json:"deliveryValue,omitempty"`
	Status        *string `json:"status,omitempty"`
}

type NoteParams struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Color    *string `json:"color,omitempty"`
	IsPinned *bool   `json:"isPinned,omitempty"`
}

type Revenue struct {
	TotalRevenue float64 `json:"totalRevenue"`
}

func (c *Client) ListClients(ctx context.Context) ([]*store.Client, error) {
	var clients []*store.Client
	if err := c.do(ctx, http.MethodGet, "/api/clients", nil, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (c *Client) GetClient(ctx context.Context, id int64) (*store.Client, error) {
	client := new(store.Client)
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/clients/%d", id), nil, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (c *Client) CreateClient(ctx context.Context, params ClientParams) (*store.Client, error) {
	client := new(store.Client)
	if err := c.do(ctx, http.MethodPost, "/api/clients", params, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (c *Client) UpdateClient(ctx context.Context, id int64, params ClientParams) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/clients/%d", id), params, nil)
}

func (c *Client) DeleteClient(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/clients/%d", id), nil, nil)
}

func (c *Client) ListProducts(ctx context.Context) ([]*store.Product, error) {
	var products []*store.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*store.Product, error) {
	product := new(store.Product)
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (c *Client) CreateProduct(ctx context.Context, params ProductParams) (*store.Product, error) {
	product := new(store.Product)
	if err := c.do(ctx, http.MethodPost, "/api/products", params, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, params ProductParams) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/products/%d", id), params, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil, nil)
}

func (c *Client) ListQuotations(ctx context.Context) ([]*store.Quotation, error) {
	var quotations []*store.Quotation
	if err := c.do(ctx, http.MethodGet, "/api/quotations", nil, &quotations); err != nil {
		return nil, err
	}
	return quotations, nil
}

func (c *Client) GetQuotation(ctx context.Context, id int64) (*store.Quotation, error) {
	quotation := new(store.Quotation)
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/quotations/%d", id), nil, quotation); err != nil {
		return nil, err
	}
	return quotation, nil
}

func (c *Client) CreateQuotation(ctx context.Context, params QuotationParams) (*store.Quotation, error) {
	quotation := new(store.Quotation)
	if err := c.do(ctx, http.MethodPost, "/api/quotations", params, quotation); err != nil {
		return nil, err
	}
	return quotation, nil
}

func (c *Client) UpdateQuotation(ctx context.Context, id int64, params QuotationParams) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/quotations/%d", id), params, nil)
}

func (c *Client) DeleteQuotation(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/quotations/%d", id), nil, nil)
}

func (c *Client) ListNotes(ctx context.Context) ([]*store.Note, error) {
	var notes []*store.Note
	if err := c.do(ctx, http.MethodGet, "/api/notes", nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) GetNote(ctx context.Context, id int64) (*store.Note, error) {
	note := new(store.Note)
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/notes/%d", id), nil, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (c *Client) CreateNote(ctx context.Context, params NoteParams) (*store.Note, error) {
	note := new(store.Note)
	if err := c.do(ctx, http.MethodPost, "/api/notes", params, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (c *Client) UpdateNote(ctx context.Context, id int64, params NoteParams) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/notes/%d", id), params, nil)
}

func (c *Client) DeleteNote(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/notes/%d", id), nil, nil)
}

func (c *Client) GetTotalRevenue(ctx context.Context) (float64, error) {
	revenue := new(Revenue)
	if err := c.do(ctx, http.MethodGet, "/api/settings/revenue", nil, revenue); err != nil {
		return 0, err
	}
	return revenue.TotalRevenue, nil
}

func (c *Client) SetTotalRevenue(ctx context.Context, totalRevenue float64) error {
	return c.do(ctx, http.MethodPut, "/api/settings/revenue", Revenue{TotalRevenue: totalRevenue}, nil)
}
