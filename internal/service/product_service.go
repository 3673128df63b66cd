package service

import (
	"context"
	"log"

	"github.com/paverbrasil/paveradmin/internal/store"
)

type ProductService struct {
	productStore store.ProductStore
}

func NewProductService(s store.ProductStore) *ProductService {
	return &ProductService{productStore: s}
}

func (s *ProductService) CreateProduct(
	ctx context.Context,
	name, price, category, unit, description string,
	stock int64,
) (*store.Product, error) {
	return s.productStore.CreateProduct(ctx, name, price, category, unit, description, stock)
}

func (s *ProductService) GetProductByID(ctx context.Context, id int64) (*store.Product, error) {
	return s.productStore.ReadProductByID(ctx, id)
}

func (s *ProductService) ListProducts(ctx context.Context) []*store.Product {
	products, err := s.productStore.ListProducts(ctx)
	if err != nil {
		log.Printf("warning: listing products: %v", err)
		return []*store.Product{}
	}
	return products
}

func (s *ProductService) UpdateProduct(
	ctx context.Context,
	id int64,
	update store.ProductUpdate,
) error {
	return s.productStore.UpdateProduct(ctx, id, update)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	return s.productStore.DeleteProduct(ctx, id)
}
