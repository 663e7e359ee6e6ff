// Package backend moves model notifications onto the UI event loop. The
// model may publish from any goroutine; a Feed queues what it hears in
// arrival order and hands events out one at a time, so the UI can replay
// them from inside Update without locks of its own.
package backend

import (
	"sync"

	"github.com/atomicstack/surfaces/internal/logging/events"
	"github.com/atomicstack/surfaces/internal/model"
	"github.com/atomicstack/surfaces/internal/surface"
)

// Kind identifies the notification carried by an Event.
type Kind int

const (
	KindSurfacesReceived Kind = iota
	KindSurfaceCreated
	KindNoteCreated
	KindSurfaceSelected
	KindSurfaceNotesReceived
	KindCommentAdded
	KindPhotoTransform
)

func (k Kind) String() string {
	switch k {
	case KindSurfacesReceived:
		return "surfaces-received"
	case KindSurfaceCreated:
		return "surface-created"
	case KindNoteCreated:
		return "note-created"
	case KindSurfaceSelected:
		return "surface-selected"
	case KindSurfaceNotesReceived:
		return "surface-notes-received"
	case KindCommentAdded:
		return "comment-added"
	case KindPhotoTransform:
		return "photo-transform"
	default:
		return "unknown"
	}
}

// Event is one queued notification. Data holds the payload for Kind:
// []surface.Surface, surface.Surface, surface.Note, Selection,
// []surface.Note, surface.Comment or PhotoPlacement.
type Event struct {
	Kind Kind
	Data interface{}
}

// Selection is the payload of KindSurfaceSelected.
type Selection struct {
	Now surface.Surface
	Was surface.Surface
}

// PhotoPlacement is the payload of KindPhotoTransform.
type PhotoPlacement struct {
	Photo          surface.Photo
	Transformation surface.Transformation
}

// Feed subscribes to a model and re-publishes its notifications to its own
// subscribers when Deliver is called. Feed itself satisfies
// model.Subscriber.
type Feed struct {
	*model.Notifier

	mu     sync.Mutex
	queue  []Event
	signal chan struct{}
	done   chan struct{}

	stopOnce    sync.Once
	unsubscribe func()
}

// NewFeed starts listening to src.
func NewFeed(src model.Subscriber) *Feed {
	f := &Feed{
		Notifier: model.NewNotifier(),
		signal:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	if src != nil {
		f.unsubscribe = src.Subscribe(model.Handlers{
			SurfacesReceived: func(list []surface.Surface) {
				f.push(Event{Kind: KindSurfacesReceived, Data: list})
			},
			SurfaceCreated: func(s surface.Surface) {
				f.push(Event{Kind: KindSurfaceCreated, Data: s})
			},
			NoteCreated: func(n surface.Note) {
				f.push(Event{Kind: KindNoteCreated, Data: n})
			},
			SurfaceSelected: func(now, was surface.Surface) {
				f.push(Event{Kind: KindSurfaceSelected, Data: Selection{Now: now, Was: was}})
			},
			SurfaceNotesReceived: func(notes []surface.Note) {
				f.push(Event{Kind: KindSurfaceNotesReceived, Data: notes})
			},
			CommentAdded: func(c surface.Comment) {
				f.push(Event{Kind: KindCommentAdded, Data: c})
			},
			PhotoTransform: func(p surface.Photo, t surface.Transformation) {
				f.push(Event{Kind: KindPhotoTransform, Data: PhotoPlacement{Photo: p, Transformation: t}})
			},
		})
	}
	return f
}

func (f *Feed) push(evt Event) {
	select {
	case <-f.done:
		return
	default:
	}
	f.mu.Lock()
	f.queue = append(f.queue, evt)
	f.mu.Unlock()
	select {
	case f.signal <- struct{}{}:
	default:
	}
}

// Next blocks until an event is queued or the feed is stopped. Events queued
// before Stop are still handed out; ok is false once the queue is drained
// after Stop.
func (f *Feed) Next() (evt Event, ok bool) {
	for {
		f.mu.Lock()
		if len(f.queue) > 0 {
			evt = f.queue[0]
			f.queue[0] = Event{}
			f.queue = f.queue[1:]
			f.mu.Unlock()
			return evt, true
		}
		f.mu.Unlock()
		select {
		case <-f.signal:
		case <-f.done:
			f.mu.Lock()
			empty := len(f.queue) == 0
			f.mu.Unlock()
			if empty {
				return Event{}, false
			}
		}
	}
}

// TryNext is Next without the wait.
func (f *Feed) TryNext() (evt Event, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queue) == 0 {
		return Event{}, false
	}
	evt = f.queue[0]
	f.queue[0] = Event{}
	f.queue = f.queue[1:]
	return evt, true
}

// Pending reports how many events are waiting.
func (f *Feed) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Deliver re-publishes evt to the feed's subscribers on the calling
// goroutine. Unknown payloads are dropped.
func (f *Feed) Deliver(evt Event) {
	events.Model.Deliver(evt.Kind.String(), f.Pending())
	switch evt.Kind {
	case KindSurfacesReceived:
		if list, ok := evt.Data.([]surface.Surface); ok {
			f.PublishSurfacesReceived(list)
		}
	case KindSurfaceCreated:
		if s, ok := evt.Data.(surface.Surface); ok {
			f.PublishSurfaceCreated(s)
		}
	case KindNoteCreated:
		if n, ok := evt.Data.(surface.Note); ok {
			f.PublishNoteCreated(n)
		}
	case KindSurfaceSelected:
		if sel, ok := evt.Data.(Selection); ok {
			f.PublishSurfaceSelected(sel.Now, sel.Was)
		}
	case KindSurfaceNotesReceived:
		if notes, ok := evt.Data.([]surface.Note); ok {
			f.PublishSurfaceNotesReceived(notes)
		}
	case KindCommentAdded:
		if c, ok := evt.Data.(surface.Comment); ok {
			f.PublishCommentAdded(c)
		}
	case KindPhotoTransform:
		if p, ok := evt.Data.(PhotoPlacement); ok {
			f.PublishPhotoTransform(p.Photo, p.Transformation)
		}
	}
}

// Stop detaches from the model and wakes any blocked Next.
func (f *Feed) Stop() {
	f.stopOnce.Do(func() {
		if f.unsubscribe != nil {
			f.unsubscribe()
		}
		close(f.done)
	})
}
