package events

import "github.com/atomicstack/surfaces/internal/logging"

type PanelTracer struct{}

var Panel = PanelTracer{}

func (PanelTracer) Show(entries int) {
	logging.Trace("panel.show", map[string]interface{}{"entries": entries})
}

func (PanelTracer) Hide(wasVisible bool) {
	logging.Trace("panel.hide", map[string]interface{}{"wasVisible": wasVisible})
}

func (PanelTracer) Append(id, title, style string, position int) {
	logging.Trace("panel.append", map[string]interface{}{
		"id":       id,
		"title":    title,
		"style":    style,
		"position": position,
	})
}

func (PanelTracer) Activate(id, title string) {
	logging.Trace("panel.activate", map[string]interface{}{"id": id, "title": title})
}

func (PanelTracer) Cursor(cursor int) {
	logging.Trace("panel.cursor", map[string]interface{}{"cursor": cursor})
}

func (PanelTracer) Filter(query string, visible int) {
	logging.Trace("panel.filter", map[string]interface{}{"query": query, "visible": visible})
}
