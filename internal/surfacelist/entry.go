package surfacelist

import (
	"github.com/atomicstack/surfaces/internal/logging/events"
	"github.com/atomicstack/surfaces/internal/model"
	"github.com/atomicstack/surfaces/internal/surface"
)

// ItemEntry is one rendered surface row.
type ItemEntry struct {
	surface  surface.Surface
	style    RowStyle
	position int
}

// NewItemEntry builds a row for s. It does not attach itself anywhere; the
// panel appends it.
func NewItemEntry(s surface.Surface, style RowStyle, position int) *ItemEntry {
	return &ItemEntry{surface: s.Clone(), style: style, position: position}
}

func (e *ItemEntry) Surface() surface.Surface { return e.surface.Clone() }
func (e *ItemEntry) Style() RowStyle          { return e.style }
func (e *ItemEntry) Position() int            { return e.position }
func (e *ItemEntry) Title() string            { return e.surface.Title }
func (e *ItemEntry) NoteCountLabel() string   { return e.surface.NoteCountLabel() }

// AuthorsLabel is the author summary shown under the title, or "" when the
// surface has no authors.
func (e *ItemEntry) AuthorsLabel() string {
	names := e.surface.AuthorNames()
	if names == "" {
		return ""
	}
	return "/w " + names
}

// Activate selects the surface, then hides the list.
func (e *ItemEntry) Activate(commands model.Commands, hide func()) {
	events.Panel.Activate(e.surface.ID, e.surface.Title)
	if commands != nil {
		commands.SelectSurface(e.surface.Clone())
	}
	if hide != nil {
		hide()
	}
}
