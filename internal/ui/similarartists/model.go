package similarartists

import (
	"github.com/llehouerou/lfmbrowse/internal/keymap"
	"github.com/llehouerou/lfmbrowse/internal/lastfm"
	"github.com/llehouerou/lfmbrowse/internal/ui"
	"github.com/llehouerou/lfmbrowse/internal/ui/cursor"
	"github.com/llehouerou/lfmbrowse/internal/ui/popup"
)

var _ popup.Popup = (*Model)(nil)

type section int

const (
	sectionSimilar section = iota
	sectionTracks
)

// Model is the similar artists popup state.
type Model struct {
	ui.Base
	keys *keymap.Resolver

	artist    string
	similar   []lastfm.SimilarArtist
	topTracks []lastfm.TopTrack

	section section
	cursors [2]cursor.Cursor
	loading bool
	err     error
}

// New creates a popup for artist, waiting for its FetchResultMsg.
func New(artist string) *Model {
	return &Model{
		keys:    keymap.NewResolver(keymap.ForContexts(keymap.ContextSimilar)),
		artist:  artist,
		loading: true,
		cursors: [2]cursor.Cursor{cursor.New(ui.ScrollMargin), cursor.New(ui.ScrollMargin)},
	}
}

// Artist returns the artist the popup was opened for.
func (m *Model) Artist() string {
	return m.artist
}

func (m *Model) sectionLen(s section) int {
	if s == sectionTracks {
		return len(m.topTracks)
	}
	return len(m.similar)
}

// listHeight is the rows available to each section.
func (m *Model) listHeight() int {
	return max((m.Height()-8)/2, 3)
}
