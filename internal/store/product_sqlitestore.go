package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/sqlscan"
)

type ProductSQLiteStore struct {
	rdb  *sql.DB
	rwdb *sql.DB
}

func NewProductSQLiteStore(rdb, rwdb *sql.DB) *ProductSQLiteStore {
	return &ProductSQLiteStore{rdb, rwdb}
}

func (store *ProductSQLiteStore) CreateProduct(
	ctx context.Context,
	name, price, category, unit, description string,
	stock int64,
) (*Product, error) {
	product := new(Product)
	err := sqlscan.Get(
		ctx, store.rwdb, product,
		`
		insert into products (name, price, category, unit, description, stock)
		values ($1, $2, $3, $4, $5, $6)
		returning *
		`,
		name, price, category, unit, description, stock,
	)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (store *ProductSQLiteStore) ReadProductByID(ctx context.Context, id int64) (*Product, error) {
	product := new(Product)
	err := sqlscan.Get(
		ctx, store.rdb, product,
		`select * from products where id = $1`,
		id,
	)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (store *ProductSQLiteStore) ListProducts(ctx context.Context) ([]*Product, error) {
	products := make([]*Product, 0)
	err := sqlscan.Select(
		ctx, store.rdb, &products,
		`select * from products order by id`,
	)
	return products, err
}

func (store *ProductSQLiteStore) UpdateProduct(
	ctx context.Context,
	id int64,
	update ProductUpdate,
) error {
	set := make([]string, 0)
	args := make([]any, 0)
	addText := func(col string, v *string) {
		if v == nil {
			return
		}
		args = append(args, *v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	addText("name", update.Name)
	addText("price", update.Price)
	addText("category", update.Category)
	addText("unit", update.Unit)
	addText("description", update.Description)
	if update.Stock != nil {
		args = append(args, *update.Stock)
		set = append(set, fmt.Sprintf("stock = $%d", len(args)))
	}
	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"update products set %s where id = $%d",
		strings.Join(set, ", "), len(args),
	)
	_, err := store.rwdb.ExecContext(ctx, query, args...)
	return err
}

func (store *ProductSQLiteStore) DeleteProduct(ctx context.Context, id int64) error {
	_, err := store.rwdb.ExecContext(ctx, "delete from products where id = $1", id)
	return err
}
