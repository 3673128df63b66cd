package store

import (
	"context"
	"database/sql"

	"github.com/georgysavva/scany/v2/sqlscan"
)

type SettingSQLiteStore struct {
	rdb  *sql.DB
	rwdb *sql.DB
}

func NewSettingSQLiteStore(rdb, rwdb *sql.DB) *SettingSQLiteStore {
	return &SettingSQLiteStore{rdb, rwdb}
}

func (store *SettingSQLiteStore) ReadSetting(ctx context.Context, key string) (*Setting, error) {
	setting := new(Setting)
	err := sqlscan.Get(
		ctx, store.rdb, setting,
		`select * from settings where key = $1`,
		key,
	)
	if err != nil {
		return nil, err
	}
	return setting, nil
}

func (store *SettingSQLiteStore) WriteSetting(ctx context.Context, key, value string) error {
	_, err := store.rwdb.ExecContext(
		ctx,
		`
		insert into settings (key, value)
		values ($1, $2)
		on conflict (key) do update set value = excluded.value
		`,
		key, value,
	)
	return err
}
