// Package helpbindings is the scrollable key bindings popup.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/lfmbrowse/internal/keymap"
	"github.com/llehouerou/lfmbrowse/internal/ui"
	"github.com/llehouerou/lfmbrowse/internal/ui/popup"
	"github.com/llehouerou/lfmbrowse/internal/ui/render"
	"github.com/llehouerou/lfmbrowse/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

var categoryOrder = []string{
	keymap.ContextGlobal,
	keymap.ContextSearch,
	keymap.ContextResults,
	keymap.ContextCharts,
	keymap.ContextSimilar,
}

var categoryLabels = map[string]string{
	keymap.ContextGlobal:  "Global",
	keymap.ContextSearch:  "Search",
	keymap.ContextResults: "Search Results",
	keymap.ContextCharts:  "Charts",
	keymap.ContextSimilar: "Similar Artists",
}

// Model is the help popup.
type Model struct {
	ui.Base
	lines  []string
	scroll int
}

// New creates a help popup listing the bindings of contexts, in the
// canonical category order.
func New(contexts ...string) *Model {
	m := &Model{}
	m.lines = buildLines(contexts)
	return m
}

func buildLines(contexts []string) []string {
	s := styles.T().S()

	var bindings []keymap.Binding
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			bindings = append(bindings, keymap.ByContext(ctx)...)
		}
	}

	keyWidth := 0
	for _, b := range bindings {
		keyWidth = max(keyWidth, lipgloss.Width(strings.Join(b.Keys, ", ")))
	}

	var lines []string
	current := ""
	for _, b := range bindings {
		if b.Context != current {
			if current != "" {
				lines = append(lines, "")
			}
			lines = append(lines,
				s.Selected.Render(categoryLabels[b.Context]),
				s.Subtle.Render(render.Separator(keyWidth+20)),
			)
			current = b.Context
		}
		keys := render.Pad(strings.Join(b.Keys, ", "), keyWidth)
		lines = append(lines, s.KeyHint.Render(keys)+"  "+s.Base.Render(b.Description))
	}
	return lines
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		m.scroll = min(m.scroll+1, m.maxScroll())
	case "k", "up":
		m.scroll = max(m.scroll-1, 0)
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	end := min(m.scroll+m.visibleHeight(), len(m.lines))
	footer := "?/esc close"
	if m.maxScroll() > 0 {
		footer = "j/k scroll · " + footer
	}

	var b strings.Builder
	b.WriteString(s.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(m.lines[m.scroll:end], "\n"))
	b.WriteString("\n\n")
	b.WriteString(s.Subtle.Render(footer))
	return b.String()
}

// visibleHeight leaves room for the title and footer.
func (m *Model) visibleHeight() int {
	return max(m.Height()-4, 3)
}

func (m *Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}
