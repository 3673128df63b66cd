package testutil

import (
	"context"

	"github.com/paverbrasil/paveradmin/internal/store"
	"github.com/stretchr/testify/mock"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Authenticate(
	ctx context.Context,
	username, password string,
) (*store.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.User), args.Error(1)
}

func (m *MockUserService) EnsureAdmin(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockUserService) GetUserByOpenID(ctx context.Context, openID string) *store.User {
	args := m.Called(ctx, openID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*store.User)
}

func (m *MockUserService) UpsertOpenIDUser(
	ctx context.Context,
	upsert store.UserUpsert,
) (*store.User, error) {
	args := m.Called(ctx, upsert)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.User), args.Error(1)
}
