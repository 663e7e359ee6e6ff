package surfacelist

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/surfaces/internal/model"
	"github.com/atomicstack/surfaces/internal/surface"
)

// recorder stands in for the model and the host, logging every call in the
// order it happened.
type recorder struct {
	calls    []string
	onCreate func(title string)
	onSelect func(s surface.Surface)
}

func (r *recorder) CreateSurface(title string) {
	r.calls = append(r.calls, "create:"+title)
	if r.onCreate != nil {
		r.onCreate(title)
	}
}

func (r *recorder) SelectSurface(s surface.Surface) {
	r.calls = append(r.calls, "select:"+s.ID)
	if r.onSelect != nil {
		r.onSelect(s)
	}
}

func (r *recorder) OnShow() { r.calls = append(r.calls, "show") }
func (r *recorder) OnHide() { r.calls = append(r.calls, "hide") }

func (r *recorder) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

func newTestPanel() (*Panel, *recorder, *model.Notifier) {
	rec := &recorder{}
	notifier := model.NewNotifier()
	p := New(rec, notifier, rec)
	return p, rec, notifier
}

func surfaces(titles ...string) []surface.Surface {
	out := make([]surface.Surface, len(titles))
	for i, title := range titles {
		out[i] = surface.Surface{ID: fmt.Sprintf("s%d", i+1), Title: title}
	}
	return out
}

func keyRunes(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

func typeText(p *Panel, text string) {
	for _, r := range text {
		p.Update(keyRunes(string(r)))
	}
}

func titles(p *Panel) []string {
	out := make([]string, 0, len(p.entries))
	for _, entry := range p.entries {
		out = append(out, entry.Title())
	}
	return out
}
