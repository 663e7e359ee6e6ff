package surfacelist

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the panel's key bindings.
type KeyMap struct {
	// List navigation.
	Up     key.Binding
	Down   key.Binding
	Home   key.Binding
	End    key.Binding
	Select key.Binding
	Add    key.Binding
	Filter key.Binding
	Back   key.Binding

	// Inline editor.
	Confirm key.Binding
	Cancel  key.Binding
	Blur    key.Binding // Moves focus off the editor, which commits it.

	// Filter prompt.
	FilterApply key.Binding
	FilterClear key.Binding
	FilterUp    key.Binding
	FilterDown  key.Binding
}

// DefaultKeyMap mirrors the usual list bindings: arrows and j/k, enter to
// pick, esc to back out.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "first"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "last"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Add: key.NewBinding(
		key.WithKeys("a", "+", "ctrl+n"),
		key.WithHelp("a", "add surface"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "create"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "discard"),
	),
	Blur: key.NewBinding(
		key.WithKeys("tab", "shift+tab", "up", "down"),
		key.WithHelp("tab", "leave"),
	),
	FilterApply: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
	FilterClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
	FilterUp: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "up"),
	),
	FilterDown: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	),
}

// bindingSet adapts a flat binding list to help.KeyMap.
type bindingSet []key.Binding

func (b bindingSet) ShortHelp() []key.Binding  { return b }
func (b bindingSet) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

func (k KeyMap) listHelp() bindingSet {
	return bindingSet{k.Up, k.Down, k.Select, k.Add, k.Filter, k.Back}
}

func (k KeyMap) editorHelp() bindingSet {
	return bindingSet{k.Confirm, k.Cancel, k.Blur}
}

func (k KeyMap) filterHelp() bindingSet {
	return bindingSet{k.FilterUp, k.FilterDown, k.FilterApply, k.FilterClear}
}
