package surfacelist

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/surfaces/internal/logging/events"
	"github.com/atomicstack/surfaces/internal/model"
)

const (
	editorCharLimit   = 64
	editorPlaceholder = "name your surface"
	editorAuthorsText = "/w Only You."
)

// EditorState tracks a CreateEntry through its short life.
type EditorState int

const (
	EditorEditing EditorState = iota
	EditorCommitted
	EditorDiscarded
)

func (s EditorState) String() string {
	switch s {
	case EditorEditing:
		return "editing"
	case EditorCommitted:
		return "committed"
	case EditorDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// EditorAction is what a key press asked the editor to do. The panel turns
// it into a commit or a discard.
type EditorAction int

const (
	EditorActionNone EditorAction = iota
	EditorActionConfirm
	EditorActionBlur
	EditorActionCancel
)

// CreateEntry is the inline row used to name a new surface.
type CreateEntry struct {
	input textinput.Model
	state EditorState
	keys  KeyMap
}

// NewCreateEntry returns a focused, empty editor.
func NewCreateEntry(keys KeyMap) *CreateEntry {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = editorPlaceholder
	ti.CharLimit = editorCharLimit
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()
	return &CreateEntry{input: ti, state: EditorEditing, keys: keys}
}

// Value is the typed title with surrounding whitespace removed.
func (e *CreateEntry) Value() string { return strings.TrimSpace(e.input.Value()) }

// SetValue replaces the typed text.
func (e *CreateEntry) SetValue(text string) {
	e.input.SetValue(text)
	e.input.CursorEnd()
}

func (e *CreateEntry) State() EditorState { return e.state }
func (e *CreateEntry) Live() bool         { return e.state == EditorEditing }
func (e *CreateEntry) InputView() string  { return e.input.View() }
func (e *CreateEntry) AuthorsLabel() string {
	return editorAuthorsText
}

// Focus gives the text box the cursor.
func (e *CreateEntry) Focus() tea.Cmd {
	return e.input.Focus()
}

// SetWidth bounds the text box.
func (e *CreateEntry) SetWidth(width int) {
	if width < 1 {
		width = 0
	}
	e.input.Width = width
}

// Update feeds msg to the text box unless it is one of the editor's control
// keys, in which case the matching action is returned instead.
func (e *CreateEntry) Update(msg tea.Msg) (tea.Cmd, EditorAction) {
	if !e.Live() {
		return nil, EditorActionNone
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, e.keys.Confirm):
			return nil, EditorActionConfirm
		case key.Matches(keyMsg, e.keys.Cancel):
			return nil, EditorActionCancel
		case key.Matches(keyMsg, e.keys.Blur):
			return nil, EditorActionBlur
		}
	}
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return cmd, EditorActionNone
}

// Commit ends the edit. The row is removed first; a non-empty title is then
// sent to the model and the list hidden. A blank title only removes the row.
func (e *CreateEntry) Commit(remove func(), commands model.Commands, hide func(), blurred bool) {
	if !e.Live() {
		return
	}
	value := e.Value()
	e.input.Blur()
	if remove != nil {
		remove()
	}
	if value == "" {
		e.state = EditorDiscarded
		reason := events.EditorReasonEmpty
		if blurred {
			reason = events.EditorReasonBlur
		}
		events.Editor.Cancel(reason)
		return
	}
	e.state = EditorCommitted
	events.Editor.Submit(value, blurred)
	if commands != nil {
		commands.CreateSurface(value)
	}
	if hide != nil {
		hide()
	}
}

// Discard drops the edit without contacting the model.
func (e *CreateEntry) Discard(remove func()) {
	if !e.Live() {
		return
	}
	e.input.Blur()
	e.state = EditorDiscarded
	if remove != nil {
		remove()
	}
	events.Editor.Cancel(events.EditorReasonEscape)
}
