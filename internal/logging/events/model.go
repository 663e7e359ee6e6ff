package events

import "github.com/atomicstack/surfaces/internal/logging"

type ModelTracer struct{}

var Model = ModelTracer{}

func (ModelTracer) Page(offset, count, total int) {
	logging.Trace("model.page", map[string]interface{}{"offset": offset, "count": count, "total": total})
}

func (ModelTracer) Create(id, title string) {
	logging.Trace("model.surface.create", map[string]interface{}{"id": id, "title": title})
}

func (ModelTracer) Select(id, previous string) {
	logging.Trace("model.surface.select", map[string]interface{}{"id": id, "previous": previous})
}

func (ModelTracer) Note(surfaceID, noteID string) {
	logging.Trace("model.note.create", map[string]interface{}{"surface": surfaceID, "note": noteID})
}

func (ModelTracer) Comment(noteID, commentID string) {
	logging.Trace("model.comment.add", map[string]interface{}{"note": noteID, "comment": commentID})
}

func (ModelTracer) Deliver(kind string, queued int) {
	logging.Trace("model.deliver", map[string]interface{}{"kind": kind, "queued": queued})
}
