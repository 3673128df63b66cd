package store

import (
	"context"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	LoginMethodLocal = "local"
)

// User is any principal able to authenticate, either with a local
// username/password pair or with an external identity (open id). A user
// authenticable by password always has a non-nil PasswordHash; an externally
// authenticated user usually has neither username nor hash.
type User struct {
	ID           int64      `json:"id"`
	OpenID       string     `json:"-"`
	Username     *string    `json:"username"`
	PasswordHash *string    `json:"-"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	LoginMethod  string     `json:"login_method"`
	LastSignedIn *time.Time `json:"last_signed_in"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserUpsert is a partial update keyed on OpenID. Nil fields are left
// untouched; a non-nil field is written even when it points at a zero value.
type UserUpsert struct {
	OpenID       string
	Name         *string
	Email        *string
	LoginMethod  *string
	Role         *string
	LastSignedIn *time.Time
}

type UserStore interface {
	CreateLocalUser(
		ctx context.Context,
		openID, username, passwordHash, name, email, role string,
	) (*User, error)
	ReadUserByID(ctx context.Context, id int64) (*User, error)
	ReadUserByUsername(ctx context.Context, username string) (*User, error)
	ReadUserByOpenID(ctx context.Context, openID string) (*User, error)
	UpsertOpenIDUser(ctx context.Context, upsert UserUpsert) error
}
