package testutil

import (
	"context"

	"github.com/paverbrasil/paveradmin/internal/store"
	"github.com/stretchr/testify/mock"
)

type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) CreateClient(
	ctx context.Context,
	name, email, phone, status string,
) (*store.Client, error) {
	args := m.Called(ctx, name, email, phone, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Client), args.Error(1)
}

func (m *MockClientService) GetClientByID(ctx context.Context, id int64) (*store.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Client), args.Error(1)
}

func (m *MockClientService) ListClients(ctx context.Context) []*store.Client {
	args := m.Called(ctx)
	return args.Get(0).([]*store.Client)
}

func (m *MockClientService) UpdateClient(
	ctx context.Context,
	id int64,
	update store.ClientUpdate,
) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockClientService) DeleteClient(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
