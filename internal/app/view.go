package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/lfmbrowse/internal/ui"
	"github.com/llehouerou/lfmbrowse/internal/ui/headerbar"
	"github.com/llehouerou/lfmbrowse/internal/ui/render"
	"github.com/llehouerou/lfmbrowse/internal/ui/styles"
)

const footerHeight = 1

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.width < ui.MinWidth {
		return "Terminal too narrow"
	}

	var page string
	if m.Page == headerbar.PageSearch {
		page = m.Search.View()
	} else {
		page = m.Charts.View()
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		headerbar.Render(m.Page, m.Search.Link(), m.width),
		page,
		m.renderFooter(),
	)
	return m.Popups.Render(view)
}

func (m Model) renderFooter() string {
	s := styles.T().S()
	if m.notice.text == "" {
		return strings.Repeat(" ", m.width)
	}
	text := render.TruncateEllipsis(m.notice.text, m.width)
	if m.notice.isErr {
		return s.Error.Render(text)
	}
	return s.Info.Render(text)
}
