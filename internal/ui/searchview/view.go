package searchview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/lfmbrowse/internal/errmsg"
	"github.com/llehouerou/lfmbrowse/internal/search"
	"github.com/llehouerou/lfmbrowse/internal/ui"
	"github.com/llehouerou/lfmbrowse/internal/ui/render"
	"github.com/llehouerou/lfmbrowse/internal/ui/styles"
)

var sectionOps = map[search.Category]errmsg.Op{
	search.Artists: errmsg.OpSearchArtists,
	search.Albums:  errmsg.OpSearchAlbums,
	search.Tracks:  errmsg.OpSearchTracks,
}

// panelHeight returns the outer height of the panel showing kind.
func (m Model) panelHeight(kind search.Category) int {
	avail := max(m.Height()-chromeHeight, 0)
	secs := m.sections()
	if len(secs) == 1 {
		return avail
	}
	h := avail / len(secs)
	if kind == secs[len(secs)-1] {
		return avail - h*(len(secs)-1)
	}
	return h
}

func (m Model) listHeight(kind search.Category) int {
	return max(m.panelHeight(kind)-ui.PanelOverhead, 1)
}

// View renders the page.
func (m Model) View() string {
	if m.TooSmall(ui.MinWidth, chromeHeight+ui.PanelOverhead) {
		return "Terminal too small"
	}

	panels := make([]string, 0, 3)
	for _, kind := range m.sections() {
		panels = append(panels, m.renderPanel(kind))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderInput(),
		m.renderTabs(),
		lipgloss.JoinVertical(lipgloss.Left, panels...),
		m.renderStatus(),
	)
}

func (m Model) renderInput() string {
	if m.editing {
		m.input.Width = max(m.Width()-lipgloss.Width(m.input.Prompt)-1, 1)
		return m.input.View()
	}
	s := styles.T().S()
	if m.state.Query == "" {
		return s.KeyHint.Render(m.input.Prompt) + s.Subtle.Render("press / to type a query")
	}
	return s.KeyHint.Render(m.input.Prompt) + s.Base.Render(render.TruncateEllipsis(m.state.Query, m.Width()-10))
}

func (m Model) renderTabs() string {
	s := styles.T().S()
	parts := make([]string, 0, 4)
	for i, c := range search.Categories() {
		label := strconv.Itoa(i+1) + " " + c.Label()
		if c == m.state.Category {
			parts = append(parts, s.TabOn.Render(label))
		} else {
			parts = append(parts, s.TabOff.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderPanel(kind search.Category) string {
	s := styles.T().S()
	width := m.Width()
	inner := width - 4
	height := m.panelHeight(kind)
	focused := kind == m.focus

	title := kind.Label()
	if n := m.sectionLen(kind); n > 0 {
		title += s.Muted.Render(" " + strconv.Itoa(n))
	}
	if m.state.Category == search.All && focused && m.sectionLen(kind) > 0 {
		title = render.Row(s.Title.Render(title), s.Subtle.Render("m more"), inner)
	} else {
		title = s.Title.Render(title)
	}

	lines := []string{title, s.Subtle.Render(render.Separator(inner))}
	switch {
	case m.state.Loading(kind):
		lines = append(lines, s.Muted.Render("Loading…"))
	case m.sectionLen(kind) == 0 && m.state.Status == search.Settled && m.state.Err == nil:
		lines = append(lines, s.Muted.Render("No "+strings.ToLower(kind.Label())+" found"))
	default:
		cur := m.cursors[kind]
		start, end := cur.VisibleRange(m.sectionLen(kind), m.listHeight(kind))
		for i := start; i < end; i++ {
			row := m.renderRow(kind, i, inner-2)
			if focused && i == cur.Pos() {
				lines = append(lines, s.Selected.Render("> ")+s.Cursor.Render(row))
			} else {
				lines = append(lines, "  "+row)
			}
		}
	}

	return styles.PanelStyle(focused).
		Padding(0, 1).
		Width(width - 2).
		Height(height - 2).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderRow(kind search.Category, i, width int) string {
	s := styles.T().S()
	var left, right string
	switch kind {
	case search.Artists:
		a := m.state.Artists[i]
		left = a.Name
		right = render.Listeners(int64(a.Listeners))
	case search.Albums:
		a := m.state.Albums[i]
		left = a.Name + " · " + a.Artist
	case search.Tracks:
		t := m.state.Tracks[i]
		left = t.Name + " · " + t.Artist.Name
		right = render.Listeners(int64(t.Listeners))
	}
	left = render.TruncateAndPad(left, max(width-lipgloss.Width(right)-1, 1))
	return render.Row(left, s.Muted.Render(right), width)
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	st := m.state
	switch {
	case st.Err != nil:
		return s.Error.Render(errmsg.Format(sectionOps[st.Category], st.Err)) + s.Subtle.Render(" · r retry")
	case st.Status == search.Pending:
		return s.Muted.Render(fmt.Sprintf("Searching %q…", st.Query))
	case st.Status == search.Settled:
		return s.Muted.Render(m.summary())
	}
	return s.Subtle.Render("/ search · ? help")
}

func (m Model) summary() string {
	parts := make([]string, 0, 3)
	total := 0
	for _, kind := range m.sections() {
		n := m.sectionLen(kind)
		total += n
		parts = append(parts, fmt.Sprintf("%d %s", n, strings.ToLower(kind.Label())))
	}
	if total == 0 {
		return fmt.Sprintf("No results for %q", m.state.Query)
	}
	return strings.Join(parts, " · ")
}
