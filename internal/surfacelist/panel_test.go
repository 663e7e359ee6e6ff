package surfacelist

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/surfaces/internal/surface"
)

func TestPanelStartsHiddenAndEmpty(t *testing.T) {
	p, rec, _ := newTestPanel()
	if p.Visible() {
		t.Fatalf("expected panel hidden on construction")
	}
	if len(p.Entries()) != 0 {
		t.Fatalf("expected no entries, got %d", len(p.Entries()))
	}
	if len(rec.calls) != 0 {
		t.Fatalf("expected no calls on construction, got %v", rec.calls)
	}
}

func TestPanelAppendsInDeliveryOrderWithAlternatingStyles(t *testing.T) {
	p, _, notifier := newTestPanel()
	notifier.PublishSurfacesReceived(surfaces("A", "B", "C"))
	notifier.PublishSurfaceCreated(surface.Surface{ID: "d", Title: "D"})
	notifier.PublishSurfacesReceived(surfaces("E"))
	notifier.PublishSurfaceCreated(surface.Surface{ID: "f", Title: "F"})

	if got := strings.Join(titles(p), ""); got != "ABCDEF" {
		t.Fatalf("expected rows ABCDEF, got %s", got)
	}
	for i, entry := range p.Entries() {
		want := RowOdd
		if i%2 == 1 {
			want = RowEven
		}
		if entry.Style() != want {
			t.Fatalf("row %d: expected %q, got %q", i, want, entry.Style())
		}
		if entry.Position() != i {
			t.Fatalf("row %d: expected position %d, got %d", i, i, entry.Position())
		}
	}
}

func TestPanelRepeatedReceivesAppend(t *testing.T) {
	p, _, notifier := newTestPanel()
	notifier.PublishSurfacesReceived(surfaces("A", "B"))
	notifier.PublishSurfacesReceived(surfaces("A", "B"))
	notifier.PublishSurfacesReceived(nil)
	if len(p.Entries()) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(p.Entries()))
	}
}

func TestPanelIgnoresUnrelatedNotifications(t *testing.T) {
	p, rec, notifier := newTestPanel()
	notifier.PublishSurfacesReceived(surfaces("A"))
	p.Show()
	before := p.View()

	notifier.PublishNoteCreated(surface.Note{ID: "n", SurfaceID: "s1"})
	notifier.PublishSurfaceSelected(surface.Surface{ID: "s1"}, surface.Surface{})
	notifier.PublishSurfaceNotesReceived([]surface.Note{{ID: "n"}})
	notifier.PublishCommentAdded(surface.Comment{ID: "c"})
	notifier.PublishPhotoTransform(surface.Photo{ID: "p"}, surface.Transformation{})

	if len(p.Entries()) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(p.Entries()))
	}
	if !p.Visible() {
		t.Fatalf("expected panel to stay visible")
	}
	if p.View() != before {
		t.Fatalf("expected rendering unchanged")
	}
	if len(rec.calls) != 0 {
		t.Fatalf("expected no calls, got %v", rec.calls)
	}
}

func TestPanelHandlersLeaveUnrenderedNotificationsNil(t *testing.T) {
	p, _, _ := newTestPanel()
	h := p.Handlers()
	if h.SurfacesReceived == nil || h.SurfaceCreated == nil {
		t.Fatalf("expected list notifications handled")
	}
	if h.NoteCreated != nil || h.SurfaceSelected != nil || h.SurfaceNotesReceived != nil ||
		h.CommentAdded != nil || h.PhotoTransform != nil {
		t.Fatalf("expected other notifications left nil")
	}
}

func TestPanelShowDoesNotNotify(t *testing.T) {
	p, rec, _ := newTestPanel()
	p.Show()
	p.Show()
	if !p.Visible() {
		t.Fatalf("expected visible after Show")
	}
	if len(rec.calls) != 0 {
		t.Fatalf("expected Show to stay silent, got %v", rec.calls)
	}
}

func TestPanelHideAlwaysNotifies(t *testing.T) {
	p, rec, _ := newTestPanel()
	p.Hide()
	p.Show()
	p.Hide()
	p.Hide()
	if rec.count("hide") != 3 {
		t.Fatalf("expected 3 hide callbacks, got %v", rec.calls)
	}
	if p.Visible() {
		t.Fatalf("expected hidden")
	}
}

func TestPanelActivateSelectsThenHides(t *testing.T) {
	p, rec, notifier := newTestPanel()
	p.Show()
	notifier.PublishSurfacesReceived(surfaces("A", "B"))

	if !p.Activate(1) {
		t.Fatalf("expected activation to succeed")
	}
	want := []string{"select:s2", "hide"}
	if strings.Join(rec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, rec.calls)
	}
	if p.Visible() {
		t.Fatalf("expected hidden after activation")
	}
	if p.Activate(5) {
		t.Fatalf("expected out of range activation to fail")
	}
}

func TestPanelEnterActivatesHighlightedRow(t *testing.T) {
	p, rec, notifier := newTestPanel()
	p.Show()
	notifier.PublishSurfacesReceived(surfaces("A", "B", "C"))
	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p.Update(keyRunes("j"))
	p.Update(keyRunes("k"))
	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if rec.count("select:s2") != 1 || rec.count("hide") != 1 {
		t.Fatalf("expected B selected then hide, got %v", rec.calls)
	}
}

func TestPanelEscapeHides(t *testing.T) {
	p, rec, _ := newTestPanel()
	p.Show()
	p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if p.Visible() || rec.count("hide") != 1 {
		t.Fatalf("expected escape to hide, got %v", rec.calls)
	}
}

func TestPanelIgnoresInputWhileHidden(t *testing.T) {
	p, rec, notifier := newTestPanel()
	notifier.PublishSurfacesReceived(surfaces("A"))
	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p.Update(keyRunes("a"))
	if len(rec.calls) != 0 || p.Editor() != nil {
		t.Fatalf("expected hidden panel to ignore input, got %v", rec.calls)
	}
	if p.View() != "" {
		t.Fatalf("expected empty view while hidden")
	}
}

func TestPanelAddOpensEditorAfterRenderedRows(t *testing.T) {
	p, rec, notifier := newTestPanel()
	p.Show()
	notifier.PublishSurfacesReceived(surfaces("A", "B"))
	p.Update(keyRunes("a"))
	if p.Editor() == nil {
		t.Fatalf("expected editor open")
	}
	if p.EditorPosition() != 2 {
		t.Fatalf("expected editor at 2, got %d", p.EditorPosition())
	}
	if !p.Visible() || len(rec.calls) != 0 {
		t.Fatalf("expected add to leave panel open, got %v", rec.calls)
	}
}

func TestPanelSecondAddKeepsFirstEditor(t *testing.T) {
	p, _, _ := newTestPanel()
	p.Show()
	p.AddSurface()
	first := p.Editor()
	first.SetValue("draft")
	p.AddSurface()
	if p.Editor() != first {
		t.Fatalf("expected the open editor to be kept")
	}
	if p.Editor().Value() != "draft" {
		t.Fatalf("expected draft kept, got %q", p.Editor().Value())
	}
}

func TestPanelEditorConfirmCreatesTrimmedTitle(t *testing.T) {
	p, rec, _ := newTestPanel()
	p.Show()
	p.AddSurface()
	typeText(p, "  My Board  ")
	p.Update(tea.KeyMsg{Type: tea.KeyEnter})

	want := []string{"create:My Board", "hide"}
	if strings.Join(rec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, rec.calls)
	}
	if p.Editor() != nil {
		t.Fatalf("expected editor removed")
	}
	if p.Visible() {
		t.Fatalf("expected hidden after create")
	}
}

func TestPanelEditorBlankCommitKeepsPanelOpen(t *testing.T) {
	for _, input := range []string{"", "   "} {
		p, rec, _ := newTestPanel()
		p.Show()
		p.AddSurface()
		typeText(p, input)
		p.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if len(rec.calls) != 0 {
			t.Fatalf("input %q: expected no calls, got %v", input, rec.calls)
		}
		if !p.Visible() {
			t.Fatalf("input %q: expected panel visible", input)
		}
		if p.Editor() != nil {
			t.Fatalf("input %q: expected editor removed", input)
		}
	}
}

func TestPanelEditorBlurCommits(t *testing.T) {
	p, rec, _ := newTestPanel()
	p.Show()
	p.AddSurface()
	typeText(p, "Sketches")
	p.Update(tea.KeyMsg{Type: tea.KeyTab})
	if rec.count("create:Sketches") != 1 || rec.count("hide") != 1 {
		t.Fatalf("expected blur to commit, got %v", rec.calls)
	}
}

func TestPanelEditorEscapeDiscards(t *testing.T) {
	p, rec, _ := newTestPanel()
	p.Show()
	p.AddSurface()
	typeText(p, "Draft")
	p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if len(rec.calls) != 0 {
		t.Fatalf("expected no calls, got %v", rec.calls)
	}
	if p.Editor() != nil || !p.Visible() {
		t.Fatalf("expected editor gone and panel open")
	}
}

func TestPanelEditorRemovedBeforeModelRenotifies(t *testing.T) {
	p, rec, notifier := newTestPanel()
	editorSeen := true
	rec.onCreate = func(title string) {
		editorSeen = p.Editor() != nil
		notifier.PublishSurfaceCreated(surface.Surface{ID: "new", Title: title})
	}
	p.Show()
	p.AddSurface()
	typeText(p, "Fresh")
	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if editorSeen {
		t.Fatalf("expected editor removed before CreateSurface")
	}
	entries := p.Entries()
	if len(entries) != 1 || entries[0].Title() != "Fresh" {
		t.Fatalf("expected the created row appended, got %v", titles(p))
	}
}

func TestPanelHideWithOpenEditorCommitsOnce(t *testing.T) {
	p, rec, _ := newTestPanel()
	p.Show()
	p.AddSurface()
	typeText(p, "Pending")
	p.Hide()
	want := []string{"create:Pending", "hide"}
	if strings.Join(rec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, rec.calls)
	}
	if p.Editor() != nil {
		t.Fatalf("expected editor removed")
	}
}

func TestPanelShowReceiveActivateScenario(t *testing.T) {
	p, rec, notifier := newTestPanel()
	p.Show()
	notifier.PublishSurfacesReceived([]surface.Surface{
		{ID: "a", Title: "A"},
		{ID: "b", Title: "B"},
	})
	entries := p.Entries()
	if len(entries) != 2 || entries[0].Style() != RowOdd || entries[1].Style() != RowEven {
		t.Fatalf("expected [A odd, B even], got %v", titles(p))
	}
	p.Activate(1)
	want := []string{"select:b", "hide"}
	if strings.Join(rec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, rec.calls)
	}
	if p.Visible() {
		t.Fatalf("expected hidden")
	}
}

func TestPanelCloseUnsubscribes(t *testing.T) {
	p, _, notifier := newTestPanel()
	p.Close()
	p.Close()
	notifier.PublishSurfacesReceived(surfaces("A"))
	if len(p.Entries()) != 0 {
		t.Fatalf("expected no entries after Close, got %d", len(p.Entries()))
	}
}

func TestPanelFilterNarrowsVisibleRows(t *testing.T) {
	p, rec, notifier := newTestPanel()
	p.Show()
	notifier.PublishSurfacesReceived([]surface.Surface{
		{ID: "a", Title: "Roadmap"},
		{ID: "b", Title: "Groceries", Authors: []string{"Zed"}},
		{ID: "c", Title: "Retro"},
	})
	p.Update(keyRunes("/"))
	if !p.Filtering() {
		t.Fatalf("expected filter prompt focused")
	}
	typeText(p, "zed")
	if p.visibleCount() != 1 || p.entryAtCursor() != 1 {
		t.Fatalf("expected only Groceries visible, got %d rows", p.visibleCount())
	}
	if len(p.Entries()) != 3 {
		t.Fatalf("expected filter to keep every entry")
	}
	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.Filtering() {
		t.Fatalf("expected filter applied")
	}
	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if rec.count("select:b") != 1 {
		t.Fatalf("expected Groceries selected, got %v", rec.calls)
	}
	if p.Filter() != "" {
		t.Fatalf("expected filter cleared on activation, got %q", p.Filter())
	}
}

func TestPanelEscapeClearsFilterBeforeHiding(t *testing.T) {
	p, rec, notifier := newTestPanel()
	p.Show()
	notifier.PublishSurfacesReceived(surfaces("Alpha", "Beta"))
	p.Update(keyRunes("/"))
	typeText(p, "bet")
	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if p.Filter() != "" || !p.Visible() {
		t.Fatalf("expected first escape to clear the filter only")
	}
	if p.visibleCount() != 2 {
		t.Fatalf("expected all rows visible, got %d", p.visibleCount())
	}
	p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if p.Visible() || rec.count("hide") != 1 {
		t.Fatalf("expected second escape to hide, got %v", rec.calls)
	}
}

func TestPanelCursorScrollsWithinHeight(t *testing.T) {
	p, _, notifier := newTestPanel()
	p.SetShowFooter(false)
	p.SetSize(40, 6) // two item rows after chrome
	p.Show()
	notifier.PublishSurfacesReceived(surfaces("A", "B", "C", "D"))
	p.Update(keyRunes("G"))
	if p.Cursor() != 3 {
		t.Fatalf("expected cursor on last row, got %d", p.Cursor())
	}
	if p.offset != 2 {
		t.Fatalf("expected offset 2, got %d", p.offset)
	}
	p.Update(keyRunes("g"))
	if p.Cursor() != 0 || p.offset != 0 {
		t.Fatalf("expected cursor and offset reset, got %d/%d", p.Cursor(), p.offset)
	}
}

func TestPanelFilterKeepsHighlightWhenRowsArrive(t *testing.T) {
	p, rec, notifier := newTestPanel()
	p.Show()
	notifier.PublishSurfacesReceived([]surface.Surface{
		{ID: "s1", Title: "Alpha board"},
		{ID: "s2", Title: "Alpine"},
		{ID: "s3", Title: "Beta"},
	})
	p.Update(keyRunes("/"))
	typeText(p, "al")
	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p.Update(keyRunes("j"))
	if p.entryAtCursor() != 1 {
		t.Fatalf("expected Alpine highlighted, got entry %d", p.entryAtCursor())
	}

	notifier.PublishSurfaceCreated(surface.Surface{ID: "s4", Title: "Zeta"})
	notifier.PublishSurfaceCreated(surface.Surface{ID: "s5", Title: "Palace"})
	if p.entryAtCursor() != 1 {
		t.Fatalf("expected Alpine still highlighted after append, got entry %d", p.entryAtCursor())
	}

	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	want := []string{"select:s2", "hide"}
	if strings.Join(rec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, rec.calls)
	}
}

func TestPanelClearingFilterKeepsHighlightedEntry(t *testing.T) {
	p, rec, notifier := newTestPanel()
	p.Show()
	notifier.PublishSurfacesReceived([]surface.Surface{
		{ID: "s1", Title: "Alpha"},
		{ID: "s2", Title: "Gamma"},
		{ID: "s3", Title: "Beta"},
	})
	p.Update(keyRunes("/"))
	typeText(p, "beta")
	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if p.Filter() != "" {
		t.Fatalf("expected filter cleared, got %q", p.Filter())
	}
	if p.Cursor() != 2 {
		t.Fatalf("expected cursor on Beta's row 2, got %d", p.Cursor())
	}

	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	want := []string{"select:s3", "hide"}
	if strings.Join(rec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, rec.calls)
	}
}

func TestPanelNewQueryMovesCursorToFirstMatch(t *testing.T) {
	p, _, notifier := newTestPanel()
	p.Show()
	notifier.PublishSurfacesReceived(surfaces("Alpha", "Beta", "Bravo"))
	p.Update(keyRunes("G"))
	p.Update(keyRunes("/"))
	typeText(p, "b")
	if p.Cursor() != 0 || p.entryAtCursor() != 1 {
		t.Fatalf("expected first match Beta highlighted, got row %d entry %d", p.Cursor(), p.entryAtCursor())
	}
}

func TestPanelEntryPositionsFollowStyleCount(t *testing.T) {
	p, _, notifier := newTestPanel()
	notifier.PublishSurfacesReceived(surfaces("A", "B"))
	notifier.PublishSurfaceCreated(surface.Surface{ID: "c", Title: "C"})
	if p.styler.Count() != 3 {
		t.Fatalf("expected 3 styles handed out, got %d", p.styler.Count())
	}
	if last := p.Entries()[2]; last.Position() != 2 || last.Style() != RowOdd {
		t.Fatalf("expected third row at 2 styled odd, got %d/%q", last.Position(), last.Style())
	}
}
