package service

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/paverbrasil/paveradmin/internal"
	"github.com/paverbrasil/paveradmin/internal/security"
	"github.com/paverbrasil/paveradmin/internal/store"
	"github.com/paverbrasil/paveradmin/internal/util"
)

type UserReader interface {
	ReadUserByID(context.Context, int64) (*store.User, error)
	ReadUserByUsername(context.Context, string) (*store.User, error)
	ReadUserByOpenID(context.Context, string) (*store.User, error)
}

type UserWriter interface {
	CreateLocalUser(
		ctx context.Context,
		openID, username, passwordHash, name, email, role string,
	) (*store.User, error)
	UpsertOpenIDUser(context.Context, store.UserUpsert) error
}

type UserStore interface {
	UserReader
	UserWriter
}

type UserService struct {
	userStore UserStore
}

func NewUserService(s UserStore) *UserService {
	return &UserService{userStore: s}
}

// Authenticate resolves a username/password pair to a user. Unknown username,
// an account without a password hash (externally authenticated) and a wrong
// password all return ErrInvalidCredentials.
func (s *UserService) Authenticate(
	ctx context.Context,
	username, password string,
) (*store.User, error) {
	u, err := s.userStore.ReadUserByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("warning: reading user %q: %v", username, err)
		}
		return nil, ErrInvalidCredentials
	}
	if u.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if !security.VerifyPassword(password, *u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// EnsureAdmin guarantees the fixed admin account exists. It is idempotent and
// never fatal: a store outage is logged and left for the next invocation, and
// a duplicate-key error from a concurrent bootstrap counts as already-exists.
func (s *UserService) EnsureAdmin(ctx context.Context) {
	_, err := s.userStore.ReadUserByUsername(ctx, internal.AdminUsername)
	if err == nil {
		log.Println("admin user already exists")
		return
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Printf("warning: admin bootstrap lookup failed: %v", err)
		return
	}

	hash, err := security.HashPassword(internal.AdminPassword)
	if err != nil {
		log.Printf("warning: admin bootstrap hashing failed: %v", err)
		return
	}
	if _, err := s.userStore.CreateLocalUser(
		ctx,
		internal.AdminOpenID,
		internal.AdminUsername,
		hash,
		internal.AdminName,
		internal.AdminEmail,
		store.RoleAdmin,
	); err != nil {
		if store.IsUniqueConstraintError(err) {
			log.Println("admin user already exists")
			return
		}
		log.Printf("warning: admin bootstrap insert failed: %v", err)
		return
	}
	log.Println("admin user initialized")
}

// GetUserByOpenID returns nil both for an unknown id and for an unavailable
// store; the latter is logged. Callers treat nil as "no identity".
func (s *UserService) GetUserByOpenID(ctx context.Context, openID string) *store.User {
	u, err := s.userStore.ReadUserByOpenID(ctx, openID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("warning: reading user by open id: %v", err)
		}
		return nil
	}
	return u
}

// UpsertOpenIDUser records an external sign-in. Unlike the read paths it
// surfaces store failures, since silently dropping a role or profile update
// would be worse than failing the sign-in.
func (s *UserService) UpsertOpenIDUser(ctx context.Context, upsert store.UserUpsert) error {
	if upsert.Role == nil &&
		internal.Config != nil &&
		internal.Config.OwnerOpenID != "" &&
		upsert.OpenID == internal.Config.OwnerOpenID {
		upsert.Role = util.AsPtr(store.RoleAdmin)
	}
	if err := s.userStore.UpsertOpenIDUser(ctx, upsert); err != nil {
		log.Printf("err upserting user %q: %v", upsert.OpenID, err)
		return err
	}
	return nil
}
