// Package chartsview is the landing page: the global top artists and top
// tracks, each with its genres.
package chartsview

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/lfmbrowse/internal/charts"
	"github.com/llehouerou/lfmbrowse/internal/keymap"
	"github.com/llehouerou/lfmbrowse/internal/ui"
	"github.com/llehouerou/lfmbrowse/internal/ui/cursor"
	"github.com/llehouerou/lfmbrowse/internal/ui/layout"
)

type panel int

const (
	panelArtists panel = iota
	panelTracks
)

// Model is the charts page.
type Model struct {
	ui.Base
	ctx    context.Context
	loader *charts.Loader
	keys   *keymap.Resolver

	artists    []charts.ArtistCard
	tracks     []charts.TrackCard
	artistsErr error
	tracksErr  error
	loading    [2]bool

	panel   panel
	cursors [2]cursor.Cursor
}

// New creates the charts page. Loads run under ctx.
func New(ctx context.Context, loader *charts.Loader) Model {
	return Model{
		ctx:     ctx,
		loader:  loader,
		keys:    keymap.NewResolver(keymap.ForContexts(keymap.ContextCharts)),
		cursors: [2]cursor.Cursor{cursor.New(ui.ScrollMargin), cursor.New(ui.ScrollMargin)},
		loading: [2]bool{true, true},
	}
}

// Init loads both charts.
func (m Model) Init() tea.Cmd {
	return m.fetch()
}

// Loading reports whether either chart is still loading.
func (m Model) Loading() bool {
	return m.loading[panelArtists] || m.loading[panelTracks]
}

func (m *Model) load() tea.Cmd {
	if m.Loading() {
		return nil
	}
	m.loading = [2]bool{true, true}
	return m.fetch()
}

func (m Model) fetch() tea.Cmd {
	return tea.Batch(
		charts.LoadArtistsCmd(m.ctx, m.loader),
		charts.LoadTracksCmd(m.ctx, m.loader),
	)
}

func (m Model) panelLen(p panel) int {
	if p == panelTracks {
		return len(m.tracks)
	}
	return len(m.artists)
}

func (m Model) panelSizes() (artists, tracks layout.Size) {
	return layout.SplitPair(m.Width(), max(m.Height()-ui.StatusHeight, 0))
}

func (m Model) listHeight(p panel) int {
	size, other := m.panelSizes()
	if p == panelTracks {
		size = other
	}
	// two rows per entry: title and genres
	return max((size.Height-ui.PanelOverhead)/2, 1)
}
