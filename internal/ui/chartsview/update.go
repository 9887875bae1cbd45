package chartsview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/lfmbrowse/internal/charts"
	"github.com/llehouerou/lfmbrowse/internal/keymap"
)

// Update handles chart loads and keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case charts.ArtistsLoadedMsg:
		m.loading[panelArtists] = false
		m.artistsErr = msg.Err
		if msg.Err == nil {
			m.artists = msg.Cards
		}
		m.cursors[panelArtists].ClampToBounds(len(m.artists), m.listHeight(panelArtists))
	case charts.TracksLoadedMsg:
		m.loading[panelTracks] = false
		m.tracksErr = msg.Err
		if msg.Err == nil {
			m.tracks = msg.Cards
		}
		m.cursors[panelTracks].ClampToBounds(len(m.tracks), m.listHeight(panelTracks))
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	cur := &m.cursors[m.panel]
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionSwitchPanel:
		m.panel = 1 - m.panel
	case keymap.ActionMoveDown:
		cur.Move(1, m.panelLen(m.panel), m.listHeight(m.panel))
	case keymap.ActionMoveUp:
		cur.Move(-1, m.panelLen(m.panel), m.listHeight(m.panel))
	case keymap.ActionRefresh:
		return m, m.load()
	case keymap.ActionOpen:
		if url := m.selectedURL(); url != "" {
			return m, func() tea.Msg { return ActionMsg(OpenURL{URL: url}) }
		}
	case keymap.ActionSimilar:
		if artist := m.selectedArtist(); artist != "" {
			return m, func() tea.Msg { return ActionMsg(ShowSimilar{Artist: artist}) }
		}
	}
	return m, nil
}

func (m Model) selectedURL() string {
	pos := m.cursors[m.panel].Pos()
	if pos >= m.panelLen(m.panel) {
		return ""
	}
	if m.panel == panelTracks {
		return m.tracks[pos].Track.URL
	}
	return m.artists[pos].Artist.URL
}

func (m Model) selectedArtist() string {
	pos := m.cursors[m.panel].Pos()
	if pos >= m.panelLen(m.panel) {
		return ""
	}
	if m.panel == panelTracks {
		return m.tracks[pos].Track.Artist.Name
	}
	return m.artists[pos].Artist.Name
}
