package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/sqlscan"
)

type QuotationSQLiteStore struct {
	rdb  *sql.DB
	rwdb *sql.DB
}

func NewQuotationSQLiteStore(rdb, rwdb *sql.DB) *QuotationSQLiteStore {
	return &QuotationSQLiteStore{rdb, rwdb}
}

func (store *QuotationSQLiteStore) CreateQuotation(
	ctx context.Context,
	clientID int64,
	description string,
	area *string,
	totalValue, deliveryValue, status string,
) (*Quotation, error) {
	quotation := new(Quotation)
	err := sqlscan.Get(
		ctx, store.rwdb, quotation,
		`
		insert into quotations (
			client_id,
			description,
			area,
			total_value,
			delivery_value,
			status
		)
		values ($1, $2, $3, $4, $5, $6)
		returning *
		`,
		clientID, description, area, totalValue, deliveryValue, status,
	)
	if err != nil {
		return nil, err
	}
	return quotation, nil
}

func (store *QuotationSQLiteStore) ReadQuotationByID(
	ctx context.Context,
	id int64,
) (*Quotation, error) {
	quotation := new(Quotation)
	err := sqlscan.Get(
		ctx, store.rdb, quotation,
		`select * from quotations where id = $1`,
		id,
	)
	if err != nil {
		return nil, err
	}
	return quotation, nil
}

func (store *QuotationSQLiteStore) ListQuotations(ctx context.Context) ([]*Quotation, error) {
	quotations := make([]*Quotation, 0)
	err := sqlscan.Select(
		ctx, store.rdb, &quotations,
		`select * from quotations order by id`,
	)
	return quotations, err
}

func (store *QuotationSQLiteStore) UpdateQuotation(
	ctx context.Context,
	id int64,
	update QuotationUpdate,
) error {
	set := make([]string, 0)
	args := make([]any, 0)
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if update.ClientID != nil {
		add("client_id", *update.ClientID)
	}
	if update.Description != nil {
		add("description", *update.Description)
	}
	if update.Area != nil {
		add("area", *update.Area)
	}
	if update.TotalValue != nil {
		add("total_value", *update.TotalValue)
	}
	if update.DeliveryValue != nil {
		add("delivery_value", *update.DeliveryValue)
	}
	if update.Status != nil {
		add("status", *update.Status)
	}
	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"update quotations set %s where id = $%d",
		strings.Join(set, ", "), len(args),
	)
	_, err := store.rwdb.ExecContext(ctx, query, args...)
	return err
}

func (store *QuotationSQLiteStore) DeleteQuotation(ctx context.Context, id int64) error {
	_, err := store.rwdb.ExecContext(ctx, "delete from quotations where id = $1", id)
	return err
}
