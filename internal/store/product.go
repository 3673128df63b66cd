package store

import (
	"context"
	"time"
)

// Product prices are kept as decimal strings so no precision is lost between
// the store and the JSON surface.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       string    `json:"price"`
	Category    string    `json:"category"`
	Unit        string    `json:"unit"`
	Description string    `json:"description"`
	Stock       int64     `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ProductUpdate struct {
	Name        *string
	Price       *string
	Category    *string
	Unit        *string
	Description *string
	Stock       *int64
}

type ProductStore interface {
	CreateProduct(
		ctx context.Context,
		name, price, category, unit, description string,
		stock int64,
	) (*Product, error)
	ReadProductByID(ctx context.Context, id int64) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)
	UpdateProduct(ctx context.Context, id int64, update ProductUpdate) error
	DeleteProduct(ctx context.Context, id int64) error
}
