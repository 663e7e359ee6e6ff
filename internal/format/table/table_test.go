package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"Groceries", "(4 notes)"},
		{"Sprint board", "(12 notes)"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	want := []string{
		"Groceries      (4 notes)",
		"Sprint board  (12 notes)",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatLeavesLastLeftColumnUnpadded(t *testing.T) {
	got := Format([][]string{{"a", "x"}, {"bbb", "yyyy"}}, nil)
	if got[0] != "a    x" {
		t.Fatalf("expected %q, got %q", "a    x", got[0])
	}
}

func TestWidthsMeasuresCells(t *testing.T) {
	widths := Widths([][]string{{"日本", "a"}, {"abc"}})
	if len(widths) != 2 || widths[0] != 4 || widths[1] != 1 {
		t.Fatalf("unexpected widths %v", widths)
	}
}

func TestFormatEmpty(t *testing.T) {
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}
