// Package headerbar renders the page tabs and the current share link.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/lfmbrowse/internal/ui/render"
	"github.com/llehouerou/lfmbrowse/internal/ui/styles"
)

// Height is the fixed height of the header bar.
const Height = 1

// Page identifies a top-level page.
type Page int

const (
	PageCharts Page = iota
	PageSearch
)

type tab struct {
	key  string
	name string
	page Page
}

var tabs = []tab{
	{"F1", "Charts", PageCharts},
	{"F2", "Search", PageSearch},
}

const appName = "lfmbrowse"

// Render draws the title, the page tabs and, when non-empty, the share link
// right-aligned on one line of the given width.
func Render(current Page, link string, width int) string {
	if width < 20 {
		return ""
	}
	s := styles.T().S()

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		label := t.key + " " + t.name
		if t.page == current {
			parts = append(parts, s.TabOn.Render(label))
		} else {
			parts = append(parts, s.TabOff.Render(label))
		}
	}
	left := styles.Title(appName) + "  " + strings.Join(parts, s.Subtle.Render("│"))

	if link == "" {
		return left
	}
	room := width - lipgloss.Width(left) - 2
	if room < 8 {
		return left
	}
	return render.Row(left, s.Link.Render(render.TruncateEllipsis(link, room)), width)
}
