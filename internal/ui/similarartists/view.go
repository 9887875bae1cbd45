package similarartists

import (
	"strconv"
	"strings"

	"github.com/llehouerou/lfmbrowse/internal/errmsg"
	"github.com/llehouerou/lfmbrowse/internal/ui/render"
	"github.com/llehouerou/lfmbrowse/internal/ui/styles"
)

// View renders the popup content.
func (m *Model) View() string {
	s := styles.T().S()
	width := max(m.Width(), 20)

	var b strings.Builder
	b.WriteString(s.Selected.Render("Similar to " + render.Sanitize(m.artist)))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString("\n" + s.Muted.Render("Loading…"))
		return b.String()
	case m.err != nil:
		b.WriteString("\n" + s.Error.Render(errmsg.Format(errmsg.OpSimilarArtists, m.err)))
		b.WriteString("\n\n" + s.Subtle.Render("esc close"))
		return b.String()
	case len(m.similar) == 0 && len(m.topTracks) == 0:
		b.WriteString("\n" + s.Muted.Render("Nothing found on Last.fm."))
		b.WriteString("\n\n" + s.Subtle.Render("esc close"))
		return b.String()
	}

	if len(m.similar) > 0 {
		rows := make([]string, len(m.similar))
		for i, a := range m.similar {
			score := render.Match(a.MatchScore)
			rows[i] = render.Row(render.TruncateEllipsis(a.Name, width-8), s.Muted.Render(score), width-2)
		}
		m.writeSection(&b, "Similar artists", sectionSimilar, rows, width)
	}
	if len(m.topTracks) > 0 {
		rows := make([]string, len(m.topTracks))
		for i, t := range m.topTracks {
			rank := render.Pad(strconv.Itoa(t.Rank)+".", 4)
			rows[i] = render.Row(rank+render.TruncateEllipsis(t.Name, width-20),
				s.Muted.Render(render.Plays(int64(t.Playcount))), width-2)
		}
		m.writeSection(&b, "Top tracks", sectionTracks, rows, width)
	}

	b.WriteString("\n" + s.Subtle.Render("enter search · tab switch · esc close"))
	return b.String()
}

func (m *Model) writeSection(b *strings.Builder, title string, sec section, rows []string, width int) {
	s := styles.T().S()
	titleStyle := s.Muted.Bold(true)
	if m.section == sec {
		titleStyle = s.Selected
	}
	b.WriteString("\n" + titleStyle.Render(title) + "\n")
	b.WriteString(s.Subtle.Render(render.Separator(width)) + "\n")

	cur := m.cursors[sec]
	start, end := cur.VisibleRange(len(rows), m.listHeight())
	for i := start; i < end; i++ {
		if m.section == sec && i == cur.Pos() {
			b.WriteString(s.Selected.Render("> ") + s.Cursor.Render(rows[i]))
		} else {
			b.WriteString("  " + rows[i])
		}
		b.WriteString("\n")
	}
}
