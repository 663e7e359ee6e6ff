package events

import "github.com/atomicstack/surfaces/internal/logging"

type EditorTracer struct{}

type editorReason string

const (
	EditorReasonEscape editorReason = "escape"
	EditorReasonEmpty  editorReason = "empty"
	EditorReasonBlur   editorReason = "blur"
)

var Editor = EditorTracer{}

func (EditorTracer) Open(position int) {
	logging.Trace("editor.open", map[string]interface{}{"position": position})
}

// Reject records an add request that arrived while an editor was still open.
func (EditorTracer) Reject(pending string) {
	logging.Trace("editor.reject", map[string]interface{}{"pending": pending})
}

func (EditorTracer) Submit(title string, blurred bool) {
	logging.Trace("editor.submit", map[string]interface{}{"title": title, "blur": blurred})
}

func (EditorTracer) Cancel(reason editorReason) {
	logging.Trace("editor.cancel", map[string]interface{}{"reason": string(reason)})
}
