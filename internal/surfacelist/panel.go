package surfacelist

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/surfaces/internal/logging/events"
	"github.com/atomicstack/surfaces/internal/model"
	"github.com/atomicstack/surfaces/internal/surface"
	"github.com/atomicstack/surfaces/internal/theme"
)

// Observer is told when the panel is shown or hidden. Hide always calls
// OnHide. Show does not call OnShow; the host already knows it asked.
type Observer interface {
	OnShow()
	OnHide()
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are ignored.
type ObserverFuncs struct {
	Show func()
	Hide func()
}

func (o ObserverFuncs) OnShow() {
	if o.Show != nil {
		o.Show()
	}
}

func (o ObserverFuncs) OnHide() {
	if o.Hide != nil {
		o.Hide()
	}
}

// Panel is the surface list. It must be driven from a single goroutine.
type Panel struct {
	commands    model.Commands
	observer    Observer
	unsubscribe func()

	styler   RowStyler
	entries  []*ItemEntry
	editor   *CreateEntry
	editorAt int
	visible  bool
	hiding   bool

	// cursor and offset index the visible rows, which are the filter
	// matches when a query is set and every entry otherwise.
	cursor  int
	offset  int
	matches []int

	filtering bool
	filter    textinput.Model

	keys       KeyMap
	help       help.Model
	styles     *theme.Styles
	width      int
	height     int
	showFooter bool
}

// New builds a hidden, empty panel and subscribes it to sub. Either of
// commands, sub and observer may be nil.
func New(commands model.Commands, sub model.Subscriber, observer Observer) *Panel {
	if observer == nil {
		observer = ObserverFuncs{}
	}
	filter := textinput.New()
	filter.Prompt = ""
	filter.Placeholder = "type to filter"
	filter.Cursor.SetMode(cursor.CursorStatic)
	p := &Panel{
		commands:   commands,
		observer:   observer,
		filter:     filter,
		keys:       DefaultKeyMap,
		help:       help.New(),
		styles:     theme.Default(),
		showFooter: true,
	}
	if sub != nil {
		p.unsubscribe = sub.Subscribe(p.Handlers())
	}
	return p
}

// Handlers is the panel's subscription. Notifications the list does not
// render are left nil.
func (p *Panel) Handlers() model.Handlers {
	return model.Handlers{
		SurfacesReceived: p.OnSurfacesReceived,
		SurfaceCreated:   p.OnSurfaceCreated,
	}
}

// Close drops the model subscription.
func (p *Panel) Close() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}

// Show makes the panel visible. It does not refetch or notify anyone.
func (p *Panel) Show() {
	p.visible = true
	events.Panel.Show(len(p.entries))
}

// Hide makes the panel invisible and tells the observer, whatever the
// previous state. An open editor loses focus first and commits, though the
// commit does not hide a second time.
func (p *Panel) Hide() {
	if p.editor != nil && p.editor.Live() && !p.hiding {
		p.hiding = true
		p.editor.Commit(p.removeEditor, p.commands, nil, true)
		p.hiding = false
	}
	was := p.visible
	p.visible = false
	p.filtering = false
	p.filter.Blur()
	events.Panel.Hide(was)
	p.observer.OnHide()
}

func (p *Panel) Visible() bool { return p.visible }

// OnSurfacesReceived appends one row per surface, in order.
func (p *Panel) OnSurfacesReceived(list []surface.Surface) {
	for _, s := range list {
		p.append(s)
	}
}

// OnSurfaceCreated appends a row for s.
func (p *Panel) OnSurfaceCreated(s surface.Surface) {
	p.append(s)
}

func (p *Panel) append(s surface.Surface) {
	position := p.styler.Count()
	entry := NewItemEntry(s, p.styler.Next(), position)
	p.entries = append(p.entries, entry)
	events.Panel.Append(s.ID, s.Title, string(entry.Style()), entry.Position())
	if p.matches != nil {
		p.applyFilter(false)
	}
}

// Entries returns the rows in append order.
func (p *Panel) Entries() []*ItemEntry {
	out := make([]*ItemEntry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Editor returns the open editor, or nil.
func (p *Panel) Editor() *CreateEntry { return p.editor }

// EditorPosition is the row index the open editor renders before.
func (p *Panel) EditorPosition() int { return p.editorAt }

// AddSurface opens an editor after the rows shown so far. If one is already
// open it keeps focus and the request is dropped.
func (p *Panel) AddSurface() tea.Cmd {
	if p.editor != nil && p.editor.Live() {
		events.Editor.Reject(p.editor.Value())
		return p.editor.Focus()
	}
	p.clearFilter()
	p.editor = NewCreateEntry(p.keys)
	p.editor.SetWidth(p.editorWidth())
	p.editorAt = len(p.entries)
	events.Editor.Open(p.editorAt)
	return p.editor.Focus()
}

func (p *Panel) removeEditor() {
	p.editor = nil
}

// Activate selects the entry at index, which counts every row in append
// order regardless of any filter.
func (p *Panel) Activate(index int) bool {
	if index < 0 || index >= len(p.entries) {
		return false
	}
	p.clearFilter()
	p.cursor = index
	p.entries[index].Activate(p.commands, p.Hide)
	return true
}

// Cursor is the highlighted row within the visible rows.
func (p *Panel) Cursor() int { return p.cursor }

// Filter is the current query, or "".
func (p *Panel) Filter() string { return p.filter.Value() }

// Filtering reports whether the filter prompt has focus.
func (p *Panel) Filtering() bool { return p.filtering }

// SetSize bounds the rendered panel. Zero means unbounded.
func (p *Panel) SetSize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	p.width = width
	p.height = height
	p.help.Width = p.innerWidth()
	p.filter.Width = p.innerWidth() - 2
	if p.editor != nil {
		p.editor.SetWidth(p.editorWidth())
	}
	p.ensureCursorVisible()
}

func (p *Panel) SetShowFooter(show bool) {
	p.showFooter = show
	p.ensureCursorVisible()
}

// Update handles input while the panel is visible.
func (p *Panel) Update(msg tea.Msg) tea.Cmd {
	if !p.visible {
		return nil
	}
	if p.editor != nil && p.editor.Live() {
		return p.updateEditor(msg)
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if p.filtering {
		return p.updateFilter(msg)
	}
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, p.keys.Up):
		p.moveCursor(-1)
	case key.Matches(keyMsg, p.keys.Down):
		p.moveCursor(1)
	case key.Matches(keyMsg, p.keys.Home):
		p.setCursor(0)
	case key.Matches(keyMsg, p.keys.End):
		p.setCursor(p.visibleCount() - 1)
	case key.Matches(keyMsg, p.keys.Select):
		if idx := p.entryAtCursor(); idx >= 0 {
			p.Activate(idx)
		}
	case key.Matches(keyMsg, p.keys.Add):
		return p.AddSurface()
	case key.Matches(keyMsg, p.keys.Filter):
		p.filtering = true
		return p.filter.Focus()
	case key.Matches(keyMsg, p.keys.Back):
		if p.filter.Value() != "" {
			p.clearFilter()
			return nil
		}
		p.Hide()
	}
	return nil
}

func (p *Panel) updateEditor(msg tea.Msg) tea.Cmd {
	cmd, action := p.editor.Update(msg)
	switch action {
	case EditorActionConfirm:
		p.editor.Commit(p.removeEditor, p.commands, p.Hide, false)
	case EditorActionBlur:
		p.editor.Commit(p.removeEditor, p.commands, p.Hide, true)
	case EditorActionCancel:
		p.editor.Discard(p.removeEditor)
	}
	return cmd
}

func (p *Panel) updateFilter(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, p.keys.FilterApply):
			p.filtering = false
			p.filter.Blur()
			return nil
		case key.Matches(keyMsg, p.keys.FilterClear):
			p.clearFilter()
			return nil
		case key.Matches(keyMsg, p.keys.FilterUp):
			p.moveCursor(-1)
			return nil
		case key.Matches(keyMsg, p.keys.FilterDown):
			p.moveCursor(1)
			return nil
		}
	}
	before := p.filter.Value()
	var cmd tea.Cmd
	p.filter, cmd = p.filter.Update(msg)
	if p.filter.Value() != before {
		p.applyFilter(true)
		events.Panel.Filter(p.filter.Value(), p.visibleCount())
	}
	return cmd
}

func (p *Panel) clearFilter() {
	p.filtering = false
	p.filter.Blur()
	if p.filter.Value() == "" && p.matches == nil {
		return
	}
	p.filter.SetValue("")
	p.applyFilter(false)
}

// applyFilter recomputes the visible rows. A new query moves the cursor to
// the best match; otherwise the highlighted entry stays highlighted while it
// is still visible.
func (p *Panel) applyFilter(queryChanged bool) {
	highlighted := p.entryAtCursor()
	p.matches = matchEntries(p.entries, p.filter.Value())
	switch {
	case queryChanged:
		if p.visibleCount() > 0 {
			p.cursor = 0
		}
	case highlighted >= 0:
		if row := p.rowOf(highlighted); row >= 0 {
			p.cursor = row
		}
	}
	p.ensureCursorVisible()
}

// rowOf maps an index in entries to its visible row, or -1 when filtered out.
func (p *Panel) rowOf(index int) int {
	if p.matches == nil {
		if index < len(p.entries) {
			return index
		}
		return -1
	}
	for row, idx := range p.matches {
		if idx == index {
			return row
		}
	}
	return -1
}

// visibleCount is the number of rows a cursor can land on.
func (p *Panel) visibleCount() int {
	if p.matches != nil {
		return len(p.matches)
	}
	return len(p.entries)
}

// entryAt maps a visible row to its index in entries.
func (p *Panel) entryAt(row int) int {
	if row < 0 || row >= p.visibleCount() {
		return -1
	}
	if p.matches != nil {
		return p.matches[row]
	}
	return row
}

func (p *Panel) entryAtCursor() int { return p.entryAt(p.cursor) }

func (p *Panel) moveCursor(delta int) {
	p.setCursor(p.cursor + delta)
}

func (p *Panel) setCursor(row int) {
	n := p.visibleCount()
	if row >= n {
		row = n - 1
	}
	if row < 0 {
		row = 0
	}
	if row != p.cursor {
		p.cursor = row
		events.Panel.Cursor(row)
	}
	p.ensureCursorVisible()
}

// ensureCursorVisible clamps the cursor and scrolls the viewport so it stays
// on screen.
func (p *Panel) ensureCursorVisible() {
	n := p.visibleCount()
	if n == 0 {
		p.cursor = 0
		p.offset = 0
		return
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor >= n {
		p.cursor = n - 1
	}
	maxVisible := p.maxVisibleRows()
	if maxVisible <= 0 {
		p.offset = 0
		return
	}
	maxOffset := n - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.offset > maxOffset {
		p.offset = maxOffset
	}
	if p.offset < 0 {
		p.offset = 0
	}
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if upper := p.offset + maxVisible - 1; p.cursor > upper {
		p.offset = p.cursor - maxVisible + 1
	}
}
