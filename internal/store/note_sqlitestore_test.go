package store

import (
	"context"
	"testing"

	"github.com/paverbrasil/paveradmin/internal/util"
	"github.com/stretchr/testify/assert"
)

func TestCreateNote(t *testing.T) {
	t.Run("success - note is stored", func(t *testing.T) {
		// act
		n, err := noteStore.CreateNote(
			context.Background(),
			"Ligar fornecedor", "Confirmar entrega de areia", "yellow", false,
		)

		// assert
		assert.NoError(t, err)
		assert.NotNil(t, n)
		assert.Equal(t, "Ligar fornecedor", n.Title)
		assert.Equal(t, "yellow", n.Color)
		assert.False(t, n.IsPinned)
	})
}

func TestUpdateNote(t *testing.T) {
	t.Run("success - pinning does not touch content", func(t *testing.T) {
		// arrange
		n, err := noteStore.CreateNote(
			context.Background(),
			"Pagamento pendente", "Cliente Omega deve 2a parcela", "pink", false,
		)
		assert.NoError(t, err)

		// act
		err = noteStore.UpdateNote(context.Background(), n.ID, NoteUpdate{
			IsPinned: util.AsPtr(true),
		})

		// assert
		assert.NoError(t, err)
		updated, err := noteStore.ReadNoteByID(context.Background(), n.ID)
		assert.NoError(t, err)
		assert.True(t, updated.IsPinned)
		assert.Equal(t, "Cliente Omega deve 2a parcela", updated.Content)
	})
}

func TestListNotes(t *testing.T) {
	t.Run("success - pinned notes come first", func(t *testing.T) {
		// arrange
		_, err := noteStore.CreateNote(context.Background(), "Solta", "", "blue", false)
		assert.NoError(t, err)
		pinned, err := noteStore.CreateNote(context.Background(), "Fixada", "", "green", true)
		assert.NoError(t, err)

		// act
		notes, err := noteStore.ListNotes(context.Background())

		// assert
		assert.NoError(t, err)
		assert.NotEmpty(t, notes)
		assert.Equal(t, pinned.ID, notes[0].ID)
	})
}

func TestDeleteNote(t *testing.T) {
	t.Run("success - deleted note is gone", func(t *testing.T) {
		// arrange
		n, err := noteStore.CreateNote(context.Background(), "Descartável", "", "purple", false)
		assert.NoError(t, err)

		// act
		err = noteStore.DeleteNote(context.Background(), n.ID)

		// assert
		assert.NoError(t, err)
		_, err = noteStore.ReadNoteByID(context.Background(), n.ID)
		assert.Error(t, err)
	})
}
