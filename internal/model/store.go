package model

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/atomicstack/surfaces/internal/logging/events"
	"github.com/atomicstack/surfaces/internal/surface"
)

// ErrNotFound is returned when a command names an unknown surface or note.
var ErrNotFound = errors.New("not found")

// Store is an in-memory data model. It implements Commands and Subscriber;
// every mutation is announced to subscribers after the lock is released.
type Store struct {
	*Notifier

	mu       sync.Mutex
	author   string
	surfaces []surface.Surface
	notes    map[string][]surface.Note
	selected string
	newID    func() string
}

// NewStore seeds a store with the given surfaces. Surfaces without an ID get
// one. author is recorded on surfaces and notes created through the store.
func NewStore(author string, seed []surface.Surface) *Store {
	s := &Store{
		Notifier: NewNotifier(),
		author:   strings.TrimSpace(author),
		notes:    make(map[string][]surface.Note),
		newID:    uuid.NewString,
	}
	for _, entry := range seed {
		entry = entry.Clone()
		if entry.ID == "" {
			entry.ID = s.newID()
		}
		s.surfaces = append(s.surfaces, entry)
	}
	return s
}

// Author is the name recorded on surfaces and notes created here.
func (s *Store) Author() string {
	return s.author
}

// Surfaces returns a copy of every known surface in creation order.
func (s *Store) Surfaces() []surface.Surface {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSurfaces(s.surfaces)
}

// Selected returns the currently selected surface, if any.
func (s *Store) Selected() (surface.Surface, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexLocked(s.selected); idx >= 0 {
		return s.surfaces[idx].Clone(), true
	}
	return surface.Surface{}, false
}

// FetchPage publishes surfaces [offset, offset+limit) as a received page and
// reports where the next page starts. Empty pages are not published.
func (s *Store) FetchPage(offset, limit int) (next int, more bool, err error) {
	if offset < 0 {
		return 0, false, fmt.Errorf("page offset must be >= 0 (got %d)", offset)
	}
	if limit < 1 {
		return 0, false, fmt.Errorf("page limit must be >= 1 (got %d)", limit)
	}
	s.mu.Lock()
	total := len(s.surfaces)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	page := cloneSurfaces(s.surfaces[offset:end])
	s.mu.Unlock()

	events.Model.Page(offset, len(page), total)
	if len(page) > 0 {
		s.PublishSurfacesReceived(page)
	}
	return end, end < total, nil
}

// CreateSurface implements Commands. Blank titles are ignored. The new
// surface becomes the selection.
func (s *Store) CreateSurface(title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}
	created := surface.Surface{ID: s.newID(), Title: title}
	if s.author != "" {
		created.Authors = []string{s.author}
	}
	s.mu.Lock()
	s.surfaces = append(s.surfaces, created)
	s.mu.Unlock()

	events.Model.Create(created.ID, created.Title)
	s.PublishSurfaceCreated(created)
	s.SelectSurface(created)
}

// SelectSurface implements Commands. Unknown surfaces are ignored.
func (s *Store) SelectSurface(target surface.Surface) {
	s.mu.Lock()
	idx := s.indexLocked(target.ID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	var was surface.Surface
	if prev := s.indexLocked(s.selected); prev >= 0 {
		was = s.surfaces[prev].Clone()
	}
	now := s.surfaces[idx].Clone()
	s.selected = now.ID
	notes := append([]surface.Note(nil), s.notes[now.ID]...)
	s.mu.Unlock()

	events.Model.Select(now.ID, was.ID)
	s.PublishSurfaceSelected(now, was)
	s.PublishSurfaceNotesReceived(notes)
}

// CreateNote adds a note to a surface and bumps its note count.
func (s *Store) CreateNote(surfaceID, content string) (surface.Note, error) {
	s.mu.Lock()
	idx := s.indexLocked(surfaceID)
	if idx < 0 {
		s.mu.Unlock()
		return surface.Note{}, fmt.Errorf("surface %s: %w", surfaceID, ErrNotFound)
	}
	note := surface.Note{ID: s.newID(), SurfaceID: surfaceID, Author: s.author, Content: content}
	s.notes[surfaceID] = append(s.notes[surfaceID], note)
	s.surfaces[idx].NoteCount++
	if s.author != "" && !contains(s.surfaces[idx].Authors, s.author) {
		s.surfaces[idx].Authors = append(s.surfaces[idx].Authors, s.author)
	}
	s.mu.Unlock()

	events.Model.Note(surfaceID, note.ID)
	s.PublishNoteCreated(note)
	return note, nil
}

// AddComment attaches a comment to an existing note.
func (s *Store) AddComment(noteID, text string) (surface.Comment, error) {
	s.mu.Lock()
	found := false
	for _, notes := range s.notes {
		for _, note := range notes {
			if note.ID == noteID {
				found = true
				break
			}
		}
	}
	s.mu.Unlock()
	if !found {
		return surface.Comment{}, fmt.Errorf("note %s: %w", noteID, ErrNotFound)
	}
	comment := surface.Comment{ID: s.newID(), NoteID: noteID, Author: s.author, Text: text}
	events.Model.Comment(noteID, comment.ID)
	s.PublishCommentAdded(comment)
	return comment, nil
}

func (s *Store) indexLocked(id string) int {
	if id == "" {
		return -1
	}
	for i, entry := range s.surfaces {
		if entry.ID == id {
			return i
		}
	}
	return -1
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
