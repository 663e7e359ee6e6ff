package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/surfaces/internal/logging"
	"github.com/atomicstack/surfaces/internal/surface"
	"github.com/atomicstack/surfaces/internal/ui/command"
)

// pageLoadedMsg reports one FetchPage call. The surfaces themselves arrive
// through the feed.
type pageLoadedMsg struct {
	offset int
	next   int
	more   bool
	err    error
}

type pageTickMsg struct{}

type noteResultMsg struct {
	kind    noteFormKind
	note    surface.Note
	comment surface.Comment
	err     error
}

func (m *Model) startPaging() tea.Cmd {
	if m.store == nil || m.loading || m.pagesDone {
		return nil
	}
	return m.loadPageCmd(m.nextOffset)
}

func (m *Model) loadPageCmd(offset int) tea.Cmd {
	m.loading = true
	store := m.store
	limit := m.pageSize
	return m.bus.Execute(command.Request{
		ID:    "surfaces:page",
		Label: fmt.Sprintf("offset %d", offset),
		Run: func() tea.Msg {
			next, more, err := store.FetchPage(offset, limit)
			if err != nil {
				logging.Error(err)
			}
			return pageLoadedMsg{offset: offset, next: next, more: more, err: err}
		},
	})
}

func (m *Model) handlePageLoadedMsg(msg tea.Msg) tea.Cmd {
	page, ok := msg.(pageLoadedMsg)
	if !ok {
		return nil
	}
	m.loading = false
	if page.err != nil {
		m.errMsg = fmt.Sprintf("Failed to load surfaces: %v", page.err)
		m.pagesDone = true
		return nil
	}
	m.nextOffset = page.next
	if !page.more {
		m.pagesDone = true
		return nil
	}
	if m.pageInterval <= 0 {
		return m.loadPageCmd(m.nextOffset)
	}
	return tea.Tick(m.pageInterval, func(time.Time) tea.Msg { return pageTickMsg{} })
}

func (m *Model) handlePageTickMsg(msg tea.Msg) tea.Cmd {
	return m.startPaging()
}

func (m *Model) createNoteCmd(surfaceID, content string) tea.Cmd {
	store := m.store
	return m.bus.Execute(command.Request{
		ID:    "note:create",
		Label: surfaceID,
		Run: func() tea.Msg {
			note, err := store.CreateNote(surfaceID, content)
			if err != nil {
				logging.Error(err)
			}
			return noteResultMsg{kind: noteFormNote, note: note, err: err}
		},
	})
}

func (m *Model) addCommentCmd(noteID, text string) tea.Cmd {
	store := m.store
	return m.bus.Execute(command.Request{
		ID:    "comment:add",
		Label: noteID,
		Run: func() tea.Msg {
			comment, err := store.AddComment(noteID, text)
			if err != nil {
				logging.Error(err)
			}
			return noteResultMsg{kind: noteFormComment, comment: comment, err: err}
		},
	})
}

func (m *Model) handleNoteResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(noteResultMsg)
	if !ok {
		return nil
	}
	if result.err != nil {
		m.errMsg = result.err.Error()
		m.forceClearInfo()
		return nil
	}
	m.errMsg = ""
	switch result.kind {
	case noteFormComment:
		m.setInfo("Comment added.")
	default:
		m.setInfo(fmt.Sprintf("Note added: %s", truncateText(result.note.Content, 32)))
	}
	return nil
}
