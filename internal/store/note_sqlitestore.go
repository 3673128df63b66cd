package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/sqlscan"
)

type NoteSQLiteStore struct {
	rdb  *sql.DB
	rwdb *sql.DB
}

func NewNoteSQLiteStore(rdb, rwdb *sql.DB) *NoteSQLiteStore {
	return &NoteSQLiteStore{rdb, rwdb}
}

func (store *NoteSQLiteStore) CreateNote(
	ctx context.Context,
	title, content, color string,
	isPinned bool,
) (*Note, error) {
	note := new(Note)
	err := sqlscan.Get(
		ctx, store.rwdb, note,
		`
		insert into notes (title, content, color, is_pinned)
		values ($1, $2, $3, $4)
		returning *
		`,
		title, content, color, isPinned,
	)
	if err != nil {
		return nil, err
	}
	return note, nil
}

func (store *NoteSQLiteStore) ReadNoteByID(ctx context.Context, id int64) (*Note, error) {
	note := new(Note)
	err := sqlscan.Get(
		ctx, store.rdb, note,
		`select * from notes where id = $1`,
		id,
	)
	if err != nil {
		return nil, err
	}
	return note, nil
}

func (store *NoteSQLiteStore) ListNotes(ctx context.Context) ([]*Note, error) {
	notes := make([]*Note, 0)
	err := sqlscan.Select(
		ctx, store.rdb, &notes,
		`select * from notes order by is_pinned desc, id desc`,
	)
	return notes, err
}

func (store *NoteSQLiteStore) UpdateNote(
	ctx context.Context,
	id int64,
	update NoteUpdate,
) error {
	set := make([]string, 0)
	args := make([]any, 0)
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if update.Title != nil {
		add("title", *update.Title)
	}
	if update.Content != nil {
		add("content", *update.Content)
	}
	if update.Color != nil {
		add("color", *update.Color)
	}
	if update.IsPinned != nil {
		add("is_pinned", *update.IsPinned)
	}
	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"update notes set %s where id = $%d",
		strings.Join(set, ", "), len(args),
	)
	_, err := store.rwdb.ExecContext(ctx, query, args...)
	return err
}

func (store *NoteSQLiteStore) DeleteNote(ctx context.Context, id int64) error {
	_, err := store.rwdb.ExecContext(ctx, "delete from notes where id = $1", id)
	return err
}
