package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/paverbrasil/paveradmin/internal/util"
	"github.com/stretchr/testify/assert"
)

func TestCreateClient(t *testing.T) {
	t.Run("success - client is stored with defaults", func(t *testing.T) {
		// act
		c, err := clientStore.CreateClient(
			context.Background(),
			"Construtora Alfa", "alfa@example.com", "11999990000", "active",
		)

		// assert
		assert.NoError(t, err)
		assert.NotNil(t, c)
		assert.NotEqual(t, 0, c.ID)
		assert.Equal(t, "Construtora Alfa", c.Name)
		assert.Equal(t, "active", c.Status)
		assert.False(t, c.CreatedAt.IsZero())
	})
}

func TestUpdateClient(t *testing.T) {
	t.Run("success - only provided fields change", func(t *testing.T) {
		// arrange
		c, err := clientStore.CreateClient(
			context.Background(),
			"Construtora Beta", "beta@example.com", "11888880000", "pending",
		)
		assert.NoError(t, err)

		// act
		err = clientStore.UpdateClient(context.Background(), c.ID, ClientUpdate{
			Status: util.AsPtr("inactive"),
		})

		// assert
		assert.NoError(t, err)
		updated, err := clientStore.ReadClientByID(context.Background(), c.ID)
		assert.NoError(t, err)
		assert.Equal(t, "inactive", updated.Status)
		assert.Equal(t, "Construtora Beta", updated.Name)
		assert.Equal(t, "beta@example.com", updated.Email)
	})
	t.Run("success - empty update is a no-op", func(t *testing.T) {
		// arrange
		c, err := clientStore.CreateClient(
			context.Background(),
			"Construtora Gama", "", "", "active",
		)
		assert.NoError(t, err)

		// act
		err = clientStore.UpdateClient(context.Background(), c.ID, ClientUpdate{})

		// assert
		assert.NoError(t, err)
		unchanged, err := clientStore.ReadClientByID(context.Background(), c.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Construtora Gama", unchanged.Name)
	})
}

func TestDeleteClient(t *testing.T) {
	t.Run("success - deleted client is gone", func(t *testing.T) {
		// arrange
		c, err := clientStore.CreateClient(
			context.Background(),
			"Construtora Delta", "", "", "active",
		)
		assert.NoError(t, err)

		// act
		err = clientStore.DeleteClient(context.Background(), c.ID)

		// assert
		assert.NoError(t, err)
		gone, err := clientStore.ReadClientByID(context.Background(), c.ID)
		assert.Nil(t, gone)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestListClients(t *testing.T) {
	t.Run("success - stored clients are listed", func(t *testing.T) {
		// arrange
		_, err := clientStore.CreateClient(
			context.Background(),
			"Construtora Omega", "", "", "active",
		)
		assert.NoError(t, err)

		// act
		clients, err := clientStore.ListClients(context.Background())

		// assert
		assert.NoError(t, err)
		assert.NotEmpty(t, clients)
	})
}
