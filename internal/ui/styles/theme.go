// Package styles holds the color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette of the browser plus the styles built from it.
type Theme struct {
	Accent    lipgloss.Color // Last.fm red: active tab, focused panel, selection
	AccentAlt lipgloss.Color // gradient end of the title

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Link  lipgloss.Color
	Error lipgloss.Color
	Info  lipgloss.Color

	styles *Styles
}

// Styles are the prebuilt styles used across views.
type Styles struct {
	Base     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Title    lipgloss.Style
	Cursor   lipgloss.Style
	Genre    lipgloss.Style
	Link     lipgloss.Style
	TabOn    lipgloss.Style
	TabOff   lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	KeyHint  lipgloss.Style
	Selected lipgloss.Style
}

var defaultTheme = Theme{
	Accent:    lipgloss.Color("#d51007"),
	AccentAlt: lipgloss.Color("#ff8a65"),

	FgBase:   lipgloss.Color("#d0d0d0"),
	FgMuted:  lipgloss.Color("#8a8a8a"),
	FgSubtle: lipgloss.Color("#5c5c5c"),

	BgCursor: lipgloss.Color("#3a1614"),

	Border:      lipgloss.Color("#4e4e4e"),
	BorderFocus: lipgloss.Color("#d51007"),

	Link:  lipgloss.Color("#6fa8dc"),
	Error: lipgloss.Color("#ff5555"),
	Info:  lipgloss.Color("#42b883"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the styles of the theme, building them on first use.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	tab := lipgloss.NewStyle().Padding(0, 1)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Genre:    lipgloss.NewStyle().Foreground(t.FgMuted).Italic(true),
		Link:     lipgloss.NewStyle().Foreground(t.Link).Underline(true),
		TabOn:    tab.Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(t.Accent),
		TabOff:   tab.Foreground(t.FgMuted),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
		Info:     lipgloss.NewStyle().Foreground(t.Info),
		KeyHint:  lipgloss.NewStyle().Foreground(t.AccentAlt).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
	}
}
