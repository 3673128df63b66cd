package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/sqlscan"
)

type ClientSQLiteStore struct {
	rdb  *sql.DB
	rwdb *sql.DB
}

func NewClientSQLiteStore(rdb, rwdb *sql.DB) *ClientSQLiteStore {
	return &ClientSQLiteStore{rdb, rwdb}
}

func (store *ClientSQLiteStore) CreateClient(
	ctx context.Context,
	name, email, phone, status string,
) (*Client, error) {
	client := new(Client)
	err := sqlscan.Get(
		ctx, store.rwdb, client,
		`
		insert into clients (name, email, phone, status)
		values ($1, $2, $3, $4)
		returning *
		`,
		name, email, phone, status,
	)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (store *ClientSQLiteStore) ReadClientByID(ctx context.Context, id int64) (*Client, error) {
	client := new(Client)
	err := sqlscan.Get(
		ctx, store.rdb, client,
		`select * from clients where id = $1`,
		id,
	)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (store *ClientSQLiteStore) ListClients(ctx context.Context) ([]*Client, error) {
	clients := make([]*Client, 0)
	err := sqlscan.Select(
		ctx, store.rdb, &clients,
		`select * from clients order by id`,
	)
	return clients, err
}

func (store *ClientSQLiteStore) UpdateClient(
	ctx context.Context,
	id int64,
	update ClientUpdate,
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
	addText("email", update.Email)
	addText("phone", update.Phone)
	addText("status", update.Status)
	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"update clients set %s where id = $%d",
		strings.Join(set, ", "), len(args),
	)
	_, err := store.rwdb.ExecContext(ctx, query, args...)
	return err
}

func (store *ClientSQLiteStore) DeleteClient(ctx context.Context, id int64) error {
	_, err := store.rwdb.ExecContext(ctx, "delete from clients where id = $1", id)
	return err
}
