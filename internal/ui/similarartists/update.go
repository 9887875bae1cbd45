package similarartists

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/lfmbrowse/internal/keymap"
	"github.com/llehouerou/lfmbrowse/internal/search"
	"github.com/llehouerou/lfmbrowse/internal/ui/popup"
)

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	switch msg := msg.(type) {
	case FetchResultMsg:
		if msg.Artist == m.artist {
			m.handleFetchResult(msg)
		}
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleFetchResult(msg FetchResultMsg) {
	m.loading = false
	m.err = msg.Err
	if msg.Err != nil {
		return
	}
	m.similar = msg.Similar
	m.topTracks = msg.TopTracks
	m.section = sectionSimilar
	if len(m.similar) == 0 && len(m.topTracks) > 0 {
		m.section = sectionTracks
	}
	m.cursors[0].Reset()
	m.cursors[1].Reset()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	act := m.keys.Resolve(msg.String())
	if act == keymap.ActionClose {
		return func() tea.Msg { return ActionMsg(Close{}) }
	}
	if m.loading || m.err != nil {
		return nil
	}

	cur := &m.cursors[m.section]
	n := m.sectionLen(m.section)
	switch act {
	case keymap.ActionMoveDown:
		cur.Move(1, n, m.listHeight())
	case keymap.ActionMoveUp:
		cur.Move(-1, n, m.listHeight())
	case keymap.ActionSwitchPanel:
		other := 1 - m.section
		if m.sectionLen(other) > 0 {
			m.section = other
		}
	case keymap.ActionSearchFor:
		if n == 0 {
			return nil
		}
		a := m.selected()
		return func() tea.Msg { return ActionMsg(a) }
	}
	return nil
}

func (m *Model) selected() Search {
	pos := m.cursors[m.section].Pos()
	if m.section == sectionTracks {
		return Search{Query: m.artist + " " + m.topTracks[pos].Name, Category: search.Tracks}
	}
	return Search{Query: m.similar[pos].Name, Category: search.Artists}
}
