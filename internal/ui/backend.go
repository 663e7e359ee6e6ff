package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/surfaces/internal/backend"
	"github.com/atomicstack/surfaces/internal/model"
	"github.com/atomicstack/surfaces/internal/surface"
)

func waitForModelEvent(f *backend.Feed) tea.Cmd {
	return func() tea.Msg {
		evt, ok := f.Next()
		if !ok {
			return modelDoneMsg{}
		}
		return modelEventMsg{event: evt}
	}
}

type modelEventMsg struct {
	event backend.Event
}

type modelDoneMsg struct{}

func (m *Model) handleModelEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(modelEventMsg)
	if !ok {
		return nil
	}
	if m.feed == nil {
		return nil
	}
	m.feed.Deliver(eventMsg.event)
	if m.listening {
		return waitForModelEvent(m.feed)
	}
	return nil
}

func (m *Model) handleModelDoneMsg(msg tea.Msg) tea.Cmd {
	m.listening = false
	return nil
}

// modelHandlers covers the notifications the list leaves alone.
func (m *Model) modelHandlers() model.Handlers {
	return model.Handlers{
		SurfaceSelected:      m.onSurfaceSelected,
		SurfaceNotesReceived: m.onSurfaceNotesReceived,
		NoteCreated:          m.onNoteCreated,
		CommentAdded:         m.onCommentAdded,
	}
}

func (m *Model) onSurfaceSelected(now, was surface.Surface) {
	m.selected = now
	m.hasSelected = now.ID != ""
	m.notes = nil
	m.comments = map[string]int{}
	m.errMsg = ""
	if m.verbose && was.ID != "" && was.ID != now.ID {
		m.setInfo("Switched from " + was.Title + " to " + now.Title + ".")
		return
	}
	m.setInfo("Opened " + now.Title + ".")
}

func (m *Model) onSurfaceNotesReceived(notes []surface.Note) {
	kept := make([]surface.Note, 0, len(notes))
	for _, note := range notes {
		if m.hasSelected && note.SurfaceID != m.selected.ID {
			continue
		}
		kept = append(kept, note)
	}
	m.notes = kept
}

func (m *Model) onNoteCreated(note surface.Note) {
	if !m.hasSelected || note.SurfaceID != m.selected.ID {
		return
	}
	m.notes = append(m.notes, note)
	m.selected.NoteCount++
	if m.author != "" && !containsName(m.selected.Authors, m.author) {
		m.selected.Authors = append(m.selected.Authors, m.author)
	}
}

func (m *Model) onCommentAdded(c surface.Comment) {
	for _, note := range m.notes {
		if note.ID == c.NoteID {
			m.comments[c.NoteID]++
			return
		}
	}
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
