package store

import (
	"context"
	"testing"

	"github.com/paverbrasil/paveradmin/internal/util"
	"github.com/stretchr/testify/assert"
)

func TestCreateQuotation(t *testing.T) {
	t.Run("success - quotation is stored against a client", func(t *testing.T) {
		// arrange
		c, err := clientStore.CreateClient(
			context.Background(),
			"Cliente Orçamento", "", "", "active",
		)
		assert.NoError(t, err)

		// act
		q, err := quotationStore.CreateQuotation(
			context.Background(),
			c.ID, "Calçada frontal", util.AsPtr("120.5"), "5520.00", "350.00", "pending",
		)

		// assert
		assert.NoError(t, err)
		assert.NotNil(t, q)
		assert.Equal(t, c.ID, q.ClientID)
		assert.Equal(t, "5520.00", q.TotalValue)
		assert.Equal(t, "pending", q.Status)
		assert.NotNil(t, q.Area)
		assert.Equal(t, "120.5", *q.Area)
	})
	t.Run("failure - unknown client id violates the foreign key", func(t *testing.T) {
		// act
		q, err := quotationStore.CreateQuotation(
			context.Background(),
			999999, "", nil, "100.00", "0", "pending",
		)

		// assert
		assert.Error(t, err)
		assert.Nil(t, q)
	})
}

func TestUpdateQuotation(t *testing.T) {
	t.Run("success - status transition leaves values untouched", func(t *testing.T) {
		// arrange
		c, err := clientStore.CreateClient(
			context.Background(),
			"Cliente Aprovação", "", "", "active",
		)
		assert.NoError(t, err)
		q, err := quotationStore.CreateQuotation(
			context.Background(),
			c.ID, "Pátio interno", nil, "8000.00", "0", "pending",
		)
		assert.NoError(t, err)

		// act
		err = quotationStore.UpdateQuotation(context.Background(), q.ID, QuotationUpdate{
			Status: util.AsPtr("approved"),
		})

		// assert
		assert.NoError(t, err)
		updated, err := quotationStore.ReadQuotationByID(context.Background(), q.ID)
		assert.NoError(t, err)
		assert.Equal(t, "approved", updated.Status)
		assert.Equal(t, "8000.00", updated.TotalValue)
		assert.Nil(t, updated.Area)
	})
}

func TestDeleteQuotation(t *testing.T) {
	t.Run("success - deleted quotation is gone", func(t *testing.T) {
		// arrange
		c, err := clientStore.CreateClient(
			context.Background(),
			"Cliente Remoção", "", "", "active",
		)
		assert.NoError(t, err)
		q, err := quotationStore.CreateQuotation(
			context.Background(),
			c.ID, "", nil, "100.00", "0", "pending",
		)
		assert.NoError(t, err)

		// act
		err = quotationStore.DeleteQuotation(context.Background(), q.ID)

		// assert
		assert.NoError(t, err)
		_, err = quotationStore.ReadQuotationByID(context.Background(), q.ID)
		assert.Error(t, err)
	})
}
