package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/paverbrasil/paveradmin/internal/store"
)

type NoteServicer interface {
	CreateNote(ctx context.Context, title, content, color string, isPinned bool) (*store.Note, error)
	GetNoteByID(ctx context.Context, id int64) (*store.Note, error)
	ListNotes(ctx context.Context) []*store.Note
	UpdateNote(ctx context.Context, id int64, update store.NoteUpdate) error
	DeleteNote(ctx context.Context, id int64) error
}

func SetupNoteRoutes(g *echo.Group, noteService NoteServicer) {
	h := NewNoteHandler(noteService)
	ng := g.Group("/api/notes", RequireUser)
	ng.GET("", h.GetNotes)
	ng.GET("/:note_id", h.GetNote)
	ng.POST("", h.PostNote)
	ng.PATCH("/:note_id", h.PatchNote)
	ng.DELETE("/:note_id", h.DeleteNote)
}

type NoteHandler struct {
	noteService NoteServicer
}

func NewNoteHandler(noteService NoteServicer) *NoteHandler {
	return &NoteHandler{noteService}
}

func (h *NoteHandler) GetNotes(c echo.Context) error {
	return c.JSON(http.StatusOK, h.noteService.ListNotes(c.Request().Context()))
}

func (h *NoteHandler) GetNote(c echo.Context) error {
	np := new(NoteParams)
	if err := c.Bind(np); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid note data")
	}
	note, err := h.noteService.GetNoteByID(c.Request().Context(), np.NoteID)
	if err != nil {
		return newError(c, err, http.StatusNotFound, "note not found")
	}
	return c.JSON(http.StatusOK, note)
}

func (h *NoteHandler) PostNote(c echo.Context) error {
	np := new(NoteParams)
	if err := c.Bind(np); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid note data")
	}
	if np.Title == nil || *np.Title == "" {
		return newError(c, nil, http.StatusBadRequest, "title is required")
	}
	color := "yellow"
	if np.Color != nil {
		color = *np.Color
	}
	if !isOneOf(color, noteColors) {
		return newError(c, nil, http.StatusBadRequest, "invalid color")
	}
	var isPinned bool
	if np.IsPinned != nil {
		isPinned = *np.IsPinned
	}

	note, err := h.noteService.CreateNote(
		c.Request().Context(),
		*np.Title, strOrEmpty(np.Content), color, isPinned,
	)
	if err != nil {
		return newError(c, err, http.StatusInternalServerError, "unable to create note")
	}
	return c.JSON(http.StatusOK, note)
}

func (h *NoteHandler) PatchNote(c echo.Context) error {
	np := new(NoteParams)
	if err := c.Bind(np); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid note data")
	}
	if np.Title != nil && *np.Title == "" {
		return newError(c, nil, http.StatusBadRequest, "title must not be empty")
	}
	if np.Color != nil && !isOneOf(*np.Color, noteColors) {
		return newError(c, nil, http.StatusBadRequest, "invalid color")
	}

	if err := h.noteService.UpdateNote(c.Request().Context(), np.NoteID, store.NoteUpdate{
		Title:    np.Title,
		Content:  np.Content,
		Color:    np.Color,
		IsPinned: np.IsPinned,
	}); err != nil {
		return newError(c, err, http.StatusInternalServerError, "unable to update note")
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *NoteHandler) DeleteNote(c echo.Context) error {
	np := new(NoteParams)
	if err := c.Bind(np); err != nil {
		return newError(c, err, http.StatusBadRequest, "invalid note data")
	}
	if err := h.noteService.DeleteNote(c.Request().Context(), np.NoteID); err != nil {
		return newError(c, err, http.StatusInternalServerError, "unable to delete note")
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
