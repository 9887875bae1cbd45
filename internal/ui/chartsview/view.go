package chartsview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/lfmbrowse/internal/errmsg"
	"github.com/llehouerou/lfmbrowse/internal/ui"
	"github.com/llehouerou/lfmbrowse/internal/ui/layout"
	"github.com/llehouerou/lfmbrowse/internal/ui/render"
	"github.com/llehouerou/lfmbrowse/internal/ui/styles"
)

type entry struct {
	title, artist, genres, right string
}

// View renders the two chart panels, side by side or stacked on narrow
// terminals.
func (m Model) View() string {
	if m.TooSmall(ui.MinWidth, ui.StatusHeight+2*(ui.PanelOverhead+2)) {
		return "Terminal too small"
	}
	first, second := m.panelSizes()

	artists := make([]entry, len(m.artists))
	for i, c := range m.artists {
		artists[i] = entry{
			title:  c.Artist.Name,
			genres: c.Genres,
			right:  render.Listeners(int64(c.Artist.Listeners)),
		}
	}
	tracks := make([]entry, len(m.tracks))
	for i, c := range m.tracks {
		tracks[i] = entry{
			title:  c.Track.Name,
			artist: c.Track.Artist.Name,
			genres: c.Genres,
			right:  render.Duration(c.Track.Length()),
		}
	}

	a := m.renderPanel(panelArtists, "Top Artists", artists, m.artistsErr, errmsg.OpChartArtists, first)
	t := m.renderPanel(panelTracks, "Top Tracks", tracks, m.tracksErr, errmsg.OpChartTracks, second)
	var panels string
	if layout.IsNarrowMode(m.Width()) {
		panels = lipgloss.JoinVertical(lipgloss.Left, a, t)
	} else {
		panels = lipgloss.JoinHorizontal(lipgloss.Top, a, t)
	}
	return lipgloss.JoinVertical(lipgloss.Left, panels, m.renderStatus())
}

func (m Model) renderPanel(p panel, title string, entries []entry, err error, op errmsg.Op, size layout.Size) string {
	s := styles.T().S()
	width, height := size.Width, size.Height
	inner := width - 4
	focused := p == m.panel

	lines := []string{s.Title.Render(title), s.Subtle.Render(render.Separator(inner))}
	switch {
	case m.loading[p] && len(entries) == 0:
		lines = append(lines, s.Muted.Render("Loading…"))
	case err != nil:
		lines = append(lines, s.Error.Render(render.TruncateEllipsis(errmsg.Format(op, err), inner)))
	case len(entries) == 0:
		lines = append(lines, s.Muted.Render("Nothing charted"))
	default:
		cur := m.cursors[p]
		start, end := cur.VisibleRange(len(entries), m.listHeight(p))
		for i := start; i < end; i++ {
			selected := focused && i == cur.Pos()
			lines = append(lines, renderEntry(i+1, entries[i], inner, selected)...)
		}
	}

	return styles.PanelStyle(focused).
		Padding(0, 1).
		Width(width - 2).
		Height(height - 2).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}

func renderEntry(rank int, e entry, width int, selected bool) []string {
	s := styles.T().S()
	prefix := render.Pad(strconv.Itoa(rank)+".", 4)

	name := e.title
	if e.artist != "" {
		name += " · " + e.artist
	}
	nameW := max(width-len(prefix)-lipgloss.Width(e.right)-1, 1)
	first := render.Row(prefix+render.TruncateAndPad(name, nameW), s.Muted.Render(e.right), width)
	second := strings.Repeat(" ", len(prefix)) + s.Genre.Render(render.TruncateEllipsis(e.genres, width-len(prefix)))

	if selected {
		return []string{s.Cursor.Render(first), second}
	}
	return []string{first, second}
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	if m.Loading() {
		return s.Muted.Render("Loading charts…")
	}
	return s.Subtle.Render("tab switch · enter open · s similar · r reload · f2 search · ? help")
}
