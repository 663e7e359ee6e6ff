package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/surfaces/internal/format/table"
	"github.com/atomicstack/surfaces/internal/theme"
)

const (
	appTitle        = "surfaces"
	maxNotesShown   = 8
	infoMessageLife = 5 * time.Second
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // already styled; width limits still apply
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.header(), style: styles.Header})
	switch {
	case m.mode == ModeNoteForm && m.noteForm != nil:
		lines = append(lines, m.noteFormLines()...)
	case m.panel.Visible():
		for _, line := range strings.Split(m.panel.View(), "\n") {
			lines = append(lines, styledLine{text: line, raw: true})
		}
	default:
		lines = append(lines, m.surfaceLines()...)
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter && !m.panel.Visible() && m.mode == ModeBrowse {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.help.View(m.keys), raw: true})
	}
	lines = limitHeight(lines, m.height-1, m.width)

	var statusLine styledLine
	switch {
	case m.errMsg != "":
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	case m.loading:
		statusLine = styledLine{text: "Loading surfaces…", style: styles.Footer}
	}
	lines = append(lines, statusLine)
	return renderLines(applyWidth(lines, m.width))
}

func (m *Model) header() string {
	if m.author == "" {
		return appTitle
	}
	return appTitle + " · " + m.author
}

func (m *Model) surfaceLines() []styledLine {
	if !m.hasSelected {
		return []styledLine{{text: "No surface open. Press l to browse your surfaces.", style: styles.Info}}
	}
	s := m.selected
	lines := []styledLine{
		{text: s.Title, style: styles.PanelTitle},
	}
	meta := s.NoteCountLabel()
	if names := s.AuthorNames(); names != "" {
		meta += "  /w " + names
	}
	lines = append(lines, styledLine{text: meta, style: styles.RowAuthors})
	lines = append(lines, styledLine{})
	if len(m.notes) == 0 {
		lines = append(lines, styledLine{text: "No notes yet. Press n to add one.", style: styles.Empty})
		return lines
	}
	notes := m.notes
	if len(notes) > maxNotesShown {
		notes = notes[len(notes)-maxNotesShown:]
	}
	rows := make([][]string, 0, len(notes))
	for _, note := range notes {
		replies := ""
		if n := m.comments[note.ID]; n > 0 {
			replies = fmt.Sprintf("(%d replies)", n)
		}
		rows = append(rows, []string{"• " + note.Content, note.Author, replies})
	}
	for _, row := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight}) {
		lines = append(lines, styledLine{text: row, style: styles.Info})
	}
	return lines
}

func (m *Model) noteFormLines() []styledLine {
	f := m.noteForm
	return []styledLine{
		{text: f.Title(), style: styles.PanelTitle},
		{},
		{text: f.InputView(), raw: true},
		{},
		{text: f.Help(), style: styles.Footer},
	}
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoMessageLife)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = styledLine{text: truncateText(line.text, width), style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw {
			out[i] = line.text
			continue
		}
		out[i] = theme.Render(line.style, line.text)
	}
	return strings.Join(out, "\n")
}

// truncateText cuts text to width terminal cells, marking the cut with an
// ellipsis.
func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	return ansi.Truncate(text, width, "…")
}
