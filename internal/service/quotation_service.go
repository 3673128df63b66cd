package service

import (
	"context"
	"log"

	"github.com/paverbrasil/paveradmin/internal/store"
)

type QuotationService struct {
	quotationStore store.QuotationStore
}

func NewQuotationService(s store.QuotationStore) *QuotationService {
	return &QuotationService{quotationStore: s}
}

func (s *QuotationService) CreateQuotation(
	ctx context.Context,
	clientID int64,
	description string,
	area *string,
	totalValue, deliveryValue, status string,
) (*store.Quotation, error) {
	return s.quotationStore.CreateQuotation(
		ctx, clientID, description, area, totalValue, deliveryValue, status,
	)
}

func (s *QuotationService) GetQuotationByID(
	ctx context.Context,
	id int64,
) (*store.Quotation, error) {
	return s.quotationStore.ReadQuotationByID(ctx, id)
}

func (s *QuotationService) ListQuotations(ctx context.Context) []*store.Quotation {
	quotations, err := s.quotationStore.ListQuotations(ctx)
	if err != nil {
		log.Printf("warning: listing quotations: %v", err)
		return []*store.Quotation{}
	}
	return quotations
}

func (s *QuotationService) UpdateQuotation(
	ctx context.Context,
	id int64,
	update store.QuotationUpdate,
) error {
	return s.quotationStore.UpdateQuotation(ctx, id, update)
}

func (s *QuotationService) DeleteQuotation(ctx context.Context, id int64) error {
	return s.quotationStore.DeleteQuotation(ctx, id)
}
