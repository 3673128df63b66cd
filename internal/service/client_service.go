package service

import (
	"context"
	"log"

	"github.com/paverbrasil/paveradmin/internal/store"
)

type ClientService struct {
	clientStore store.ClientStore
}

func NewClientService(s store.ClientStore) *ClientService {
	return &ClientService{clientStore: s}
}

func (s *ClientService) CreateClient(
	ctx context.Context,
	name, email, phone, status string,
) (*store.Client, error) {
	return s.clientStore.CreateClient(ctx, name, email, phone, status)
}

func (s *ClientService) GetClientByID(ctx context.Context, id int64) (*store.Client, error) {
	return s.clientStore.ReadClientByID(ctx, id)
}

// ListClients degrades to an empty list when the store is unavailable, so the
// UI renders empty rather than erroring out.
func (s *ClientService) ListClients(ctx context.Context) []*store.Client {
	clients, err := s.clientStore.ListClients(ctx)
	if err != nil {
		log.Printf("warning: listing clients: %v", err)
		return []*store.Client{}
	}
	return clients
}

func (s *ClientService) UpdateClient(
	ctx context.Context,
	id int64,
	update store.ClientUpdate,
) error {
	return s.clientStore.UpdateClient(ctx, id, update)
}

func (s *ClientService) DeleteClient(ctx context.Context, id int64) error {
	return s.clientStore.DeleteClient(ctx, id)
}
