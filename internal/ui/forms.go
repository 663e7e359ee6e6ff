package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type noteFormKind int

const (
	noteFormNote noteFormKind = iota
	noteFormComment
)

// NoteForm collects the text of a note or a comment.
type NoteForm struct {
	input  textinput.Model
	kind   noteFormKind
	target string
	title  string
	help   string
}

func newNoteForm(kind noteFormKind, target, label string) *NoteForm {
	ti := textinput.New()
	ti.CharLimit = 280
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()
	title := "New note on " + label
	help := "Press Enter to post. Esc to cancel."
	ti.Placeholder = "what's on your mind?"
	if kind == noteFormComment {
		title = "Comment on " + label
		ti.Placeholder = "reply"
		help = "Press Enter to comment. Esc to cancel."
	}
	return &NoteForm{input: ti, kind: kind, target: target, title: title, help: help}
}

func (f *NoteForm) Value() string     { return strings.TrimSpace(f.input.Value()) }
func (f *NoteForm) InputView() string { return f.input.View() }
func (f *NoteForm) Title() string     { return f.title }
func (f *NoteForm) Help() string      { return f.help }
func (f *NoteForm) Target() string    { return f.target }

// Update returns done when the text should be posted and cancel when the
// form should close without posting. An empty submission cancels.
func (f *NoteForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			return nil, false, true
		case tea.KeyEnter:
			if f.Value() == "" {
				return nil, false, true
			}
			return nil, true, false
		}
	}
	updated, cmd := f.input.Update(msg)
	f.input = updated
	return cmd, false, false
}

func (m *Model) handleNoteForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.noteForm == nil {
		m.mode = ModeBrowse
		return false, nil
	}
	cmd, done, cancel := m.noteForm.Update(msg)
	if cancel {
		m.noteForm = nil
		m.mode = ModeBrowse
		return true, cmd
	}
	if done {
		form := m.noteForm
		m.noteForm = nil
		m.mode = ModeBrowse
		switch form.kind {
		case noteFormComment:
			return true, m.addCommentCmd(form.Target(), form.Value())
		default:
			return true, m.createNoteCmd(form.Target(), form.Value())
		}
	}
	return true, cmd
}

func (m *Model) startNoteForm() bool {
	if !m.hasSelected {
		m.setInfo("Open a surface first.")
		return false
	}
	m.noteForm = newNoteForm(noteFormNote, m.selected.ID, m.selected.Title)
	m.mode = ModeNoteForm
	return true
}

func (m *Model) startCommentForm() bool {
	if len(m.notes) == 0 {
		m.setInfo("No note to comment on.")
		return false
	}
	last := m.notes[len(m.notes)-1]
	m.noteForm = newNoteForm(noteFormComment, last.ID, truncateText(last.Content, 24))
	m.mode = ModeNoteForm
	return true
}
