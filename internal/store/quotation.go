package store

import (
	"context"
	"time"
)

type Quotation struct {
	ID            int64     `json:"id"`
	ClientID      int64     `json:"clientId"`
	Description   string    `json:"description"`
	Area          *string   `json:"area"`
	TotalValue    string    `json:"totalValue"`
	DeliveryValue string    `json:"deliveryValue"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type QuotationUpdate struct {
	ClientID      *int64
	Description   *string
	Area          *string
	TotalValue    *string
	DeliveryValue *string
	Status        *string
}

type QuotationStore interface {
	CreateQuotation(
		ctx context.Context,
		clientID int64,
		description string,
		area *string,
		totalValue, deliveryValue, status string,
	) (*Quotation, error)
	ReadQuotationByID(ctx context.Context, id int64) (*Quotation, error)
	ListQuotations(ctx context.Context) ([]*Quotation, error)
	UpdateQuotation(ctx context.Context, id int64, update QuotationUpdate) error
	DeleteQuotation(ctx context.Context, id int64) error
}
