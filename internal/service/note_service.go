package service

import (
	"context"
	"log"

	"github.com/paverbrasil/paveradmin/internal/store"
)

type NoteService struct {
	noteStore store.NoteStore
}

func NewNoteService(s store.NoteStore) *NoteService {
	return &NoteService{noteStore: s}
}

func (s *NoteService) CreateNote(
	ctx context.Context,
	title, content, color string,
	isPinned bool,
) (*store.Note, error) {
	return s.noteStore.CreateNote(ctx, title, content, color, isPinned)
}

func (s *NoteService) GetNoteByID(ctx context.Context, id int64) (*store.Note, error) {
	return s.noteStore.ReadNoteByID(ctx, id)
}

func (s *NoteService) ListNotes(ctx context.Context) []*store.Note {
	notes, err := s.noteStore.ListNotes(ctx)
	if err != nil {
		log.Printf("warning: listing notes: %v", err)
		return []*store.Note{}
	}
	return notes
}

func (s *NoteService) UpdateNote(ctx context.Context, id int64, update store.NoteUpdate) error {
	return s.noteStore.UpdateNote(ctx, id, update)
}

func (s *NoteService) DeleteNote(ctx context.Context, id int64) error {
	return s.noteStore.DeleteNote(ctx, id)
}
