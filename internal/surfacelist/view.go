package surfacelist

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/surfaces/internal/format/table"
	"github.com/atomicstack/surfaces/internal/theme"
)

const (
	panelTitle     = "Your Surfaces"
	addButtonLabel = "+ add surface"
	emptyMessage   = "no surfaces yet"
	noMatchMessage = "no matching surfaces"
	rowIndicator   = "▌ "
	rowPadding     = "  "

	// frame border plus horizontal padding
	frameWidth  = 4
	frameHeight = 2
)

var rowAlignments = []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignLeft}

// View renders the panel, or "" while it is hidden.
func (p *Panel) View() string {
	if !p.visible {
		return ""
	}
	inner := p.innerWidth()
	lines := []string{theme.Render(p.styles.PanelTitle, panelTitle)}
	lines = append(lines, p.rowLines(inner)...)
	if p.editor == nil {
		lines = append(lines, theme.Render(p.styles.AddButton, addButtonLabel))
	}
	if p.filtering || p.filter.Value() != "" {
		lines = append(lines, p.filterLine())
	}
	if p.showFooter {
		lines = append(lines, p.help.View(p.currentHelp()))
	}
	if inner > 0 {
		for i, line := range lines {
			lines[i] = ansi.Truncate(line, inner, "…")
		}
	}
	return p.styles.PanelFrame.Render(strings.Join(lines, "\n"))
}

func (p *Panel) rowLines(inner int) []string {
	total := p.visibleCount()
	if total == 0 && p.editor == nil {
		msg := emptyMessage
		if p.matches != nil {
			msg = noMatchMessage
		}
		return []string{theme.Render(p.styles.Empty, msg)}
	}
	start, end := p.visibleWindow()
	cells := make([][]string, 0, total)
	for row := 0; row < total; row++ {
		entry := p.entries[p.entryAt(row)]
		cells = append(cells, []string{entry.Title(), entry.NoteCountLabel(), entry.AuthorsLabel()})
	}
	widths := table.Widths(cells)

	lines := make([]string, 0, end-start+1)
	editorDrawn := false
	for row := start; row < end; row++ {
		idx := p.entryAt(row)
		if p.editor != nil && !editorDrawn && idx >= p.editorAt {
			lines = append(lines, p.editorLine(inner))
			editorDrawn = true
		}
		lines = append(lines, p.itemLine(p.entries[idx], cells[row], widths, row == p.cursor, inner))
	}
	if p.editor != nil && !editorDrawn {
		lines = append(lines, p.editorLine(inner))
	}
	return lines
}

// visibleWindow is the [start, end) range of visible rows that fit.
func (p *Panel) visibleWindow() (int, int) {
	total := p.visibleCount()
	maxVisible := p.maxVisibleRows()
	if maxVisible <= 0 || maxVisible >= total {
		return 0, total
	}
	start := p.offset
	if start > total-maxVisible {
		start = total - maxVisible
	}
	if start < 0 {
		start = 0
	}
	return start, start + maxVisible
}

func (p *Panel) itemLine(entry *ItemEntry, cells []string, widths []int, selected bool, inner int) string {
	prefix := rowPadding
	style := p.styles.RowOdd
	if entry.Style() == RowEven {
		style = p.styles.RowEven
	}
	if selected && p.editor == nil {
		prefix = theme.Render(p.styles.RowIndicator, rowIndicator)
		style = p.styles.RowSelected
	}
	styled := []string{
		theme.Render(p.styles.RowTitle, cells[0]),
		theme.Render(p.styles.RowCount, cells[1]),
		theme.Render(p.styles.RowAuthors, cells[2]),
	}
	text := table.FormatRow(trimTrailingEmpty(styled), widths, rowAlignments)
	return prefix + fill(style, text, inner-ansi.StringWidth(rowPadding))
}

func (p *Panel) editorLine(inner int) string {
	text := p.editor.InputView() + "  " + theme.Render(p.styles.EditorAuthors, p.editor.AuthorsLabel())
	return theme.Render(p.styles.RowIndicator, rowIndicator) + fill(p.styles.EditorRow, text, inner-ansi.StringWidth(rowIndicator))
}

func (p *Panel) filterLine() string {
	prompt := theme.Render(p.styles.FilterPrompt, "/")
	if !p.filtering {
		return prompt + " " + theme.Render(p.styles.Filter, p.filter.Value())
	}
	return prompt + " " + p.filter.View()
}

func (p *Panel) currentHelp() bindingSet {
	switch {
	case p.editor != nil:
		return p.keys.editorHelp()
	case p.filtering:
		return p.keys.filterHelp()
	default:
		return p.keys.listHelp()
	}
}

// fill renders text with style, padded out to width when the panel is
// bounded.
func fill(style *lipgloss.Style, text string, width int) string {
	if style == nil {
		return text
	}
	s := *style
	if width > 0 {
		text = ansi.Truncate(text, width, "…")
		s = s.Width(width)
	}
	return s.Render(text)
}

func trimTrailingEmpty(cells []string) []string {
	end := len(cells)
	for end > 0 && cells[end-1] == "" {
		end--
	}
	return cells[:end]
}

func (p *Panel) innerWidth() int {
	if p.width <= 0 {
		return 0
	}
	w := p.width - frameWidth
	if w < 1 {
		w = 1
	}
	return w
}

func (p *Panel) editorWidth() int {
	w := p.innerWidth()
	if w <= 0 {
		return 0
	}
	w -= ansi.StringWidth(rowIndicator) + ansi.StringWidth(editorAuthorsText) + 2
	if w < 1 {
		w = 1
	}
	return w
}

// maxVisibleRows is how many item rows fit, or 0 when unbounded.
func (p *Panel) maxVisibleRows() int {
	if p.height <= 0 {
		return 0
	}
	chrome := frameHeight + 2 // title and add button or editor row
	if p.filtering || p.filter.Value() != "" {
		chrome++
	}
	if p.showFooter {
		chrome++
	}
	rows := p.height - chrome
	if rows < 1 {
		rows = 1
	}
	return rows
}
