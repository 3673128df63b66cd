package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/paverbrasil/paveradmin/internal/util"

	"github.com/georgysavva/scany/v2/sqlscan"
)

type UserSQLiteStore struct {
	rdb  *sql.DB
	rwdb *sql.DB
}

func NewUserSQLiteStore(rdb, rwdb *sql.DB) *UserSQLiteStore {
	return &UserSQLiteStore{rdb, rwdb}
}

func (store *UserSQLiteStore) CreateLocalUser(
	ctx context.Context,
	openID, username, passwordHash, name, email, role string,
) (*User, error) {
	user := new(User)
	user.OpenID = openID
	user.Username = &username
	user.PasswordHash = &passwordHash
	user.Name = name
	user.Email = email
	user.Role = role
	user.LoginMethod = LoginMethodLocal
	user.LastSignedIn = util.AsPtr(time.Now().UTC())
	err := sqlscan.Get(
		ctx, store.rwdb, user,
		`
		insert into users (
			open_id,
			username,
			password_hash,
			name,
			email,
			role,
			login_method,
			last_signed_in
		)
		values ($1, $2, $3, $4, $5, $6, $7, $8)
		returning id
		`,
		user.OpenID,
		user.Username,
		user.PasswordHash,
		user.Name,
		user.Email,
		user.Role,
		user.LoginMethod,
		user.LastSignedIn,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (store *UserSQLiteStore) ReadUserByID(ctx context.Context, id int64) (*User, error) {
	user := new(User)
	err := sqlscan.Get(
		ctx, store.rdb, user,
		`select * from users where id = $1`,
		id,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (store *UserSQLiteStore) ReadUserByUsername(
	ctx context.Context,
	username string,
) (*User, error) {
	user := new(User)
	err := sqlscan.Get(
		ctx, store.rdb, user,
		`select * from users where username = $1`,
		username,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (store *UserSQLiteStore) ReadUserByOpenID(
	ctx context.Context,
	openID string,
) (*User, error) {
	user := new(User)
	err := sqlscan.Get(
		ctx, store.rdb, user,
		`select * from users where open_id = $1`,
		openID,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpsertOpenIDUser inserts or updates the user keyed on open id. Only fields
// present in the upsert are written; when nothing else changed the row's
// last_signed_in is still refreshed so every sign-in is observable.
func (store *UserSQLiteStore) UpsertOpenIDUser(ctx context.Context, upsert UserUpsert) error {
	if upsert.OpenID == "" {
		return errors.New("open id is required for upsert")
	}

	cols := []string{"open_id"}
	args := []any{upsert.OpenID}
	set := make([]string, 0)

	addText := func(col string, v *string) {
		if v == nil {
			return
		}
		cols = append(cols, col)
		args = append(args, *v)
		set = append(set, fmt.Sprintf("%s = excluded.%s", col, col))
	}
	addText("name", upsert.Name)
	addText("email", upsert.Email)
	addText("login_method", upsert.LoginMethod)
	addText("role", upsert.Role)

	if upsert.LastSignedIn != nil || len(set) == 0 {
		set = append(set, "last_signed_in = excluded.last_signed_in")
	}
	lastSignedIn := upsert.LastSignedIn
	if lastSignedIn == nil {
		lastSignedIn = util.AsPtr(time.Now().UTC())
	}
	cols = append(cols, "last_signed_in")
	args = append(args, *lastSignedIn)

	placeholders := make([]string, 0, len(cols))
	for i := range cols {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
	}

	query := fmt.Sprintf(
		`insert into users (%s)
		values (%s)
		on conflict (open_id) do update set %s`,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(set, ", "),
	)
	_, err := store.rwdb.ExecContext(ctx, query, args...)
	return err
}
