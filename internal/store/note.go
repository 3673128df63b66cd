package store

import (
	"context"
	"time"
)

type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Color     string    `json:"color"`
	IsPinned  bool      `json:"isPinned"`
	CreatedAt time.Time `json:"createdAt"`
}

type NoteUpdate struct {
	Title    *string
	Content  *string
	Color    *string
	IsPinned *bool
}

type NoteStore interface {
	CreateNote(ctx context.Context, title, content, color string, isPinned bool) (*Note, error)
	ReadNoteByID(ctx context.Context, id int64) (*Note, error)
	ListNotes(ctx context.Context) ([]*Note, error)
	UpdateNote(ctx context.Context, id int64, update NoteUpdate) error
	DeleteNote(ctx context.Context, id int64) error
}
