package model

import (
	"sync"

	"github.com/atomicstack/surfaces/internal/surface"
)

type subscription struct {
	id       int
	handlers Handlers
}

// Notifier fans notifications out to subscribers in subscription order.
// Publishing happens on the caller's goroutine; handlers run outside the
// lock so they may subscribe or unsubscribe re-entrantly.
type Notifier struct {
	mu   sync.Mutex
	next int
	subs []subscription
}

// NewNotifier returns an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe implements Subscriber. A record with no handlers is not kept.
func (n *Notifier) Subscribe(h Handlers) func() {
	if h.Empty() {
		return func() {}
	}
	n.mu.Lock()
	n.next++
	id := n.next
	n.subs = append(n.subs, subscription{id: id, handlers: h})
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { n.remove(id) })
	}
}

// Len reports the number of live subscriptions.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}

func (n *Notifier) remove(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, sub := range n.subs {
		if sub.id == id {
			n.subs = append(n.subs[:i:i], n.subs[i+1:]...)
			return
		}
	}
}

func (n *Notifier) snapshot() []Handlers {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Handlers, len(n.subs))
	for i, sub := range n.subs {
		out[i] = sub.handlers
	}
	return out
}

func (n *Notifier) PublishSurfacesReceived(surfaces []surface.Surface) {
	for _, h := range n.snapshot() {
		if h.SurfacesReceived != nil {
			h.SurfacesReceived(cloneSurfaces(surfaces))
		}
	}
}

func (n *Notifier) PublishSurfaceCreated(s surface.Surface) {
	for _, h := range n.snapshot() {
		if h.SurfaceCreated != nil {
			h.SurfaceCreated(s.Clone())
		}
	}
}

func (n *Notifier) PublishNoteCreated(note surface.Note) {
	for _, h := range n.snapshot() {
		if h.NoteCreated != nil {
			h.NoteCreated(note)
		}
	}
}

// PublishSurfaceSelected announces a selection change. was is the zero
// Surface when nothing was selected before.
func (n *Notifier) PublishSurfaceSelected(now, was surface.Surface) {
	for _, h := range n.snapshot() {
		if h.SurfaceSelected != nil {
			h.SurfaceSelected(now.Clone(), was.Clone())
		}
	}
}

func (n *Notifier) PublishSurfaceNotesReceived(notes []surface.Note) {
	for _, h := range n.snapshot() {
		if h.SurfaceNotesReceived != nil {
			h.SurfaceNotesReceived(append([]surface.Note(nil), notes...))
		}
	}
}

func (n *Notifier) PublishCommentAdded(c surface.Comment) {
	for _, h := range n.snapshot() {
		if h.CommentAdded != nil {
			h.CommentAdded(c)
		}
	}
}

func (n *Notifier) PublishPhotoTransform(p surface.Photo, t surface.Transformation) {
	for _, h := range n.snapshot() {
		if h.PhotoTransform != nil {
			h.PhotoTransform(p, t)
		}
	}
}

func cloneSurfaces(surfaces []surface.Surface) []surface.Surface {
	if len(surfaces) == 0 {
		return nil
	}
	dup := make([]surface.Surface, len(surfaces))
	for i, s := range surfaces {
		dup[i] = s.Clone()
	}
	return dup
}
