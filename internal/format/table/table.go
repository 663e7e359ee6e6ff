package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Widths returns the display width of the widest cell in each column. Rows
// may be ragged; missing cells count as empty.
func Widths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			if w := ansi.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

// Format pads every row so its columns line up, separating columns with two
// spaces. Width is measured in terminal cells, so styled or wide text aligns.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := Widths(rows)
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = FormatRow(row, widths, alignments)
	}
	return out
}

// FormatRow pads a single row against precomputed widths.
func FormatRow(row []string, widths []int, alignments []Alignment) string {
	var b strings.Builder
	for c, cell := range row {
		if c > 0 {
			b.WriteString("  ")
		}
		pad := 0
		if c < len(widths) {
			pad = widths[c] - ansi.StringWidth(cell)
		}
		if pad < 0 {
			pad = 0
		}
		if c < len(alignments) && alignments[c] == AlignRight {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(cell)
			continue
		}
		b.WriteString(cell)
		if c < len(row)-1 {
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	return b.String()
}
