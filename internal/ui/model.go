package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/surfaces/internal/backend"
	"github.com/atomicstack/surfaces/internal/model"
	"github.com/atomicstack/surfaces/internal/surface"
	"github.com/atomicstack/surfaces/internal/surfacelist"
	"github.com/atomicstack/surfaces/internal/theme"
	"github.com/atomicstack/surfaces/internal/ui/command"
)

type Mode int

const (
	ModeBrowse Mode = iota
	ModeNoteForm
)

const defaultPageSize = 25

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Store is the slice of the data model the UI drives. Notifications come
// back through the feed, never through these calls.
type Store interface {
	model.Commands
	FetchPage(offset, limit int) (next int, more bool, err error)
	CreateNote(surfaceID, content string) (surface.Note, error)
	AddComment(noteID, text string) (surface.Comment, error)
}

// Options configures a Model.
type Options struct {
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	OpenOnStart  bool
	PageSize     int
	PageInterval time.Duration
	Author       string
}

// Model is the host program around the surface list. It owns the panel,
// feeds it model notifications, and shows whichever surface is selected.
type Model struct {
	store Store
	feed  *backend.Feed
	panel *surfacelist.Panel
	bus   *command.Bus

	selected    surface.Surface
	hasSelected bool
	notes       []surface.Note
	comments    map[string]int
	panelHides  int

	noteForm *NoteForm
	mode     Mode

	pageSize     int
	pageInterval time.Duration
	nextOffset   int
	loading      bool
	pagesDone    bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	author      string
	keys        hostKeyMap
	help        help.Model

	listening   bool
	unsubscribe func()
	handlers    map[reflect.Type]msgHandler
}

// NewModel wires a panel to store through feed. The feed must be listening
// to store.
func NewModel(store Store, feed *backend.Feed, opts Options) *Model {
	m := &Model{
		store:        store,
		feed:         feed,
		bus:          command.New(),
		comments:     map[string]int{},
		mode:         ModeBrowse,
		pageSize:     opts.PageSize,
		pageInterval: opts.PageInterval,
		showFooter:   opts.ShowFooter,
		verbose:      opts.Verbose,
		author:       opts.Author,
		keys:         defaultHostKeys,
		help:         help.New(),
	}
	if m.pageSize < 1 {
		m.pageSize = defaultPageSize
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	var sub model.Subscriber
	if feed != nil {
		sub = feed
		m.unsubscribe = feed.Subscribe(m.modelHandlers())
	}
	m.panel = surfacelist.New(store, sub, m)
	m.panel.SetShowFooter(m.showFooter)
	m.resizePanel()
	if opts.OpenOnStart {
		m.panel.Show()
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.feed != nil {
		m.listening = true
		cmds = append(cmds, waitForModelEvent(m.feed))
	}
	if cmd := m.startPaging(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.handleActiveForm(msg); handled {
		return m, cmd
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	if m.panel.Visible() {
		return m, m.panel.Update(msg)
	}
	return m, nil
}

func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	switch m.mode {
	case ModeNoteForm:
		if _, ok := msg.(tea.KeyMsg); ok {
			return m.handleNoteForm(msg)
		}
	}
	return false, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(modelEventMsg{}):     m.handleModelEventMsg,
		reflect.TypeOf(modelDoneMsg{}):      m.handleModelDoneMsg,
		reflect.TypeOf(pageLoadedMsg{}):     m.handlePageLoadedMsg,
		reflect.TypeOf(pageTickMsg{}):       m.handlePageTickMsg,
		reflect.TypeOf(noteResultMsg{}):     m.handleNoteResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Close detaches the model and its panel from the feed.
func (m *Model) Close() {
	m.panel.Close()
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Author is the name shown in the header.
func (m *Model) Author() string { return m.author }

// Panel exposes the surface list.
func (m *Model) Panel() *surfacelist.Panel { return m.panel }

// Selected returns the surface the user last opened.
func (m *Model) Selected() (surface.Surface, bool) { return m.selected, m.hasSelected }

// OnShow is part of surfacelist.Observer.
func (m *Model) OnShow() {}

// OnHide is part of surfacelist.Observer. The list closes after a pick, a
// new surface or an explicit close; the selection itself arrives later as a
// notification.
func (m *Model) OnHide() {
	m.panelHides++
	if !m.hasSelected {
		m.setInfo("Press l to browse your surfaces.")
	}
}
