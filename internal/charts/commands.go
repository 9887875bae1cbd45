package charts

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// ArtistsLoadedMsg carries the top artists page.
type ArtistsLoadedMsg struct {
	Cards []ArtistCard
	Err   error
}

// TracksLoadedMsg carries the top tracks page.
type TracksLoadedMsg struct {
	Cards []TrackCard
	Err   error
}

// LoadArtistsCmd loads the top artists page.
func LoadArtistsCmd(ctx context.Context, l *Loader) tea.Cmd {
	return func() tea.Msg {
		cards, err := l.Artists(ctx)
		return ArtistsLoadedMsg{Cards: cards, Err: err}
	}
}

// LoadTracksCmd loads the top tracks page.
func LoadTracksCmd(ctx context.Context, l *Loader) tea.Cmd {
	return func() tea.Msg {
		cards, err := l.Tracks(ctx)
		return TracksLoadedMsg{Cards: cards, Err: err}
	}
}
