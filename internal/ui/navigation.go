package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type hostKeyMap struct {
	Open    key.Binding
	Note    key.Binding
	Comment key.Binding
	Quit    key.Binding
}

var defaultHostKeys = hostKeyMap{
	Open: key.NewBinding(
		key.WithKeys("l", " "),
		key.WithHelp("l", "surfaces"),
	),
	Note: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new note"),
	),
	Comment: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "comment"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k hostKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Note, k.Comment, k.Quit}
}

func (k hostKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if m.panel.Visible() {
		return m.panel.Update(keyMsg)
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Open):
		m.forceClearInfo()
		m.errMsg = ""
		m.panel.Show()
	case key.Matches(keyMsg, m.keys.Note):
		m.startNoteForm()
	case key.Matches(keyMsg, m.keys.Comment):
		m.startCommentForm()
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.resizePanel()
	return nil
}

// resizePanel leaves room for the header and the status line.
func (m *Model) resizePanel() {
	height := m.height
	if height > 0 {
		height -= 2
		if height < 1 {
			height = 1
		}
	}
	m.panel.SetSize(m.width, height)
	m.help.Width = m.width
}
