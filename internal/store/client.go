package store

import (
	"context"
	"time"
)

type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ClientUpdate carries one optional value per column; nil means leave the
// column unchanged.
type ClientUpdate struct {
	Name   *string
	Email  *string
	Phone  *string
	Status *string
}

type ClientStore interface {
	CreateClient(ctx context.Context, name, email, phone, status string) (*Client, error)
	ReadClientByID(ctx context.Context, id int64) (*Client, error)
	ListClients(ctx context.Context) ([]*Client, error)
	UpdateClient(ctx context.Context, id int64, update ClientUpdate) error
	DeleteClient(ctx context.Context, id int64) error
}
