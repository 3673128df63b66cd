package store

import (
	"context"
	"testing"

	"github.com/paverbrasil/paveradmin/internal/util"
	"github.com/stretchr/testify/assert"
)

func TestCreateProduct(t *testing.T) {
	t.Run("success - product is stored", func(t *testing.T) {
		// act
		p, err := productStore.CreateProduct(
			context.Background(),
			"Paver Retangular", "45.90", "paver", "m2", "Paver 20x10x6", 500,
		)

		// assert
		assert.NoError(t, err)
		assert.NotNil(t, p)
		assert.NotEqual(t, 0, p.ID)
		assert.Equal(t, "45.90", p.Price)
		assert.Equal(t, "paver", p.Category)
		assert.Equal(t, "m2", p.Unit)
		assert.Equal(t, int64(500), p.Stock)
	})
}

func TestUpdateProduct(t *testing.T) {
	t.Run("success - price and stock update, rest untouched", func(t *testing.T) {
		// arrange
		p, err := productStore.CreateProduct(
			context.Background(),
			"Bloco Estrutural", "3.20", "bloco", "un", "", 1000,
		)
		assert.NoError(t, err)

		// act
		err = productStore.UpdateProduct(context.Background(), p.ID, ProductUpdate{
			Price: util.AsPtr("3.50"),
			Stock: util.AsPtr(int64(900)),
		})

		// assert
		assert.NoError(t, err)
		updated, err := productStore.ReadProductByID(context.Background(), p.ID)
		assert.NoError(t, err)
		assert.Equal(t, "3.50", updated.Price)
		assert.Equal(t, int64(900), updated.Stock)
		assert.Equal(t, "Bloco Estrutural", updated.Name)
		assert.Equal(t, "bloco", updated.Category)
	})
}

func TestDeleteProduct(t *testing.T) {
	t.Run("success - deleted product is gone", func(t *testing.T) {
		// arrange
		p, err := productStore.CreateProduct(
			context.Background(),
			"Guia Reta", "18.00", "guia", "m_linear", "", 50,
		)
		assert.NoError(t, err)

		// act
		err = productStore.DeleteProduct(context.Background(), p.ID)

		// assert
		assert.NoError(t, err)
		_, err = productStore.ReadProductByID(context.Background(), p.ID)
		assert.Error(t, err)
	})
}
