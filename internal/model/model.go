// Package model holds the contract between the surface list and the data
// model that owns surfaces: fire-and-forget commands flowing in one
// direction, notifications flowing back through a subscription.
package model

import "github.com/atomicstack/surfaces/internal/surface"

// Commands are the requests the UI may issue. Neither call reports a result;
// outcomes arrive later as notifications.
type Commands interface {
	CreateSurface(title string)
	SelectSurface(s surface.Surface)
}

// Subscriber registers notification handlers. The returned function removes
// the registration and is safe to call more than once.
type Subscriber interface {
	Subscribe(h Handlers) (unsubscribe func())
}

// Handlers receives model notifications. Nil fields are ignored, so a
// subscriber only fills in what it reacts to.
type Handlers struct {
	SurfacesReceived     func([]surface.Surface)
	SurfaceCreated       func(surface.Surface)
	NoteCreated          func(surface.Note)
	SurfaceSelected      func(now, was surface.Surface)
	SurfaceNotesReceived func([]surface.Note)
	CommentAdded         func(surface.Comment)
	PhotoTransform       func(surface.Photo, surface.Transformation)
}

// Empty reports whether no handler is set.
func (h Handlers) Empty() bool {
	return h.SurfacesReceived == nil &&
		h.SurfaceCreated == nil &&
		h.NoteCreated == nil &&
		h.SurfaceSelected == nil &&
		h.SurfaceNotesReceived == nil &&
		h.CommentAdded == nil &&
		h.PhotoTransform == nil
}
