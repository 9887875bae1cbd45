// Package searchview is the search page: query input, category tabs and
// the result panels of the current search.
package searchview

import (
	textcursor "github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/lfmbrowse/internal/keymap"
	"github.com/llehouerou/lfmbrowse/internal/search"
	"github.com/llehouerou/lfmbrowse/internal/ui"
	"github.com/llehouerou/lfmbrowse/internal/ui/cursor"
	"github.com/llehouerou/lfmbrowse/internal/ui/styles"
)

// chromeHeight covers the input, tab and status rows.
const chromeHeight = 3

// Model is the search page.
type Model struct {
	ui.Base
	coord *search.Coordinator
	keys  *keymap.Resolver

	input   textinput.Model
	editing bool

	state   search.State
	focus   search.Category // section with the selection; never All
	cursors [4]cursor.Cursor
}

// New creates the search page around coord.
func New(coord *search.Coordinator) Model {
	s := styles.T().S()
	in := textinput.New()
	in.Prompt = "Search: "
	in.Placeholder = "artists, albums, tracks"
	in.CharLimit = 200
	in.PromptStyle = s.KeyHint
	in.TextStyle = s.Base
	in.PlaceholderStyle = s.Subtle
	in.Cursor.SetMode(textcursor.CursorStatic)

	m := Model{
		coord: coord,
		keys:  keymap.NewResolver(keymap.ForContexts(keymap.ContextSearch, keymap.ContextResults)),
		input: in,
		focus: search.Artists,
		state: coord.Snapshot(),
	}
	for i := range m.cursors {
		m.cursors[i] = cursor.New(ui.ScrollMargin)
	}
	return m
}

// Init starts the search restored from the location, if any.
func (m Model) Init() tea.Cmd {
	return m.coord.Init()
}

// State returns the search state the page shows.
func (m Model) State() search.State {
	return m.state
}

// Editing reports whether the query input has focus.
func (m Model) Editing() bool {
	return m.editing
}

// Link returns the share link of the current search, or "" before any.
func (m Model) Link() string {
	if m.state.Query == "" {
		return ""
	}
	return m.state.Link().String()
}

// StartEditing focuses the query input.
func (m Model) StartEditing() (Model, tea.Cmd) {
	m.editing = true
	m.input.SetValue(m.state.Query)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

// Open runs a search for query in category, replacing the input text.
func (m Model) Open(query string, category search.Category) (Model, tea.Cmd) {
	m.editing = false
	m.input.Blur()
	cmd := m.coord.Open(search.Link{Query: query, Category: category})
	m.refresh()
	return m, cmd
}

// sections returns the result kinds shown for the current category.
func (m Model) sections() []search.Category {
	if m.state.Category == search.All {
		return []search.Category{search.Artists, search.Albums, search.Tracks}
	}
	return []search.Category{m.state.Category}
}

func (m Model) sectionLen(kind search.Category) int {
	switch kind {
	case search.Artists:
		return len(m.state.Artists)
	case search.Albums:
		return len(m.state.Albums)
	case search.Tracks:
		return len(m.state.Tracks)
	}
	return 0
}

// refresh pulls the coordinator state, resetting the selection when a new
// search started.
func (m *Model) refresh() {
	prev := m.state.Generation
	m.state = m.coord.Snapshot()
	if m.state.Generation != prev {
		for i := range m.cursors {
			m.cursors[i].Reset()
		}
		m.focus = m.sections()[0]
	}
	for _, kind := range m.sections() {
		m.cursors[kind].ClampToBounds(m.sectionLen(kind), m.listHeight(kind))
	}
}
