// Package surface defines the read-only projections the data model hands to
// the UI: surfaces and the note/comment/photo values carried by notifications
// the surface list does not act on.
package surface

import (
	"fmt"
	"strings"
)

// Surface is a user-owned board of notes.
type Surface struct {
	ID        string
	Title     string
	Authors   []string
	NoteCount int
}

// AuthorNames joins the author names for display. Empty when nobody has
// written on the surface yet.
func (s Surface) AuthorNames() string {
	names := make([]string, 0, len(s.Authors))
	for _, name := range s.Authors {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return strings.Join(names, ", ")
}

// NoteCountLabel renders the note count the way list rows show it.
func (s Surface) NoteCountLabel() string {
	count := s.NoteCount
	if count < 0 {
		count = 0
	}
	return fmt.Sprintf("(%d notes)", count)
}

// Clone returns a copy that shares no slices with s.
func (s Surface) Clone() Surface {
	dup := s
	dup.Authors = append([]string(nil), s.Authors...)
	return dup
}

// Note is a single sticky note placed on a surface.
type Note struct {
	ID        string
	SurfaceID string
	Author    string
	Content   string
}

// Comment is attached to a note.
type Comment struct {
	ID     string
	NoteID string
	Author string
	Text   string
}

// Photo is an image placed on a surface.
type Photo struct {
	ID        string
	SurfaceID string
	URL       string
}

// Transformation describes how a photo is placed.
type Transformation struct {
	X, Y     int
	Scale    float64
	Rotation float64
}
