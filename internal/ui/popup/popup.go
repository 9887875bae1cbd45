// Package popup renders modal boxes and composes them over a page.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/lfmbrowse/internal/ui/styles"
)

// SizeConfig sizes a popup relative to the screen.
type SizeConfig struct {
	WidthPct  int // 0 fits the content
	HeightPct int // 0 fits the content
	MaxWidth  int // 0 means no limit
}

var (
	SizeLarge  = SizeConfig{WidthPct: 70, HeightPct: 75}
	SizeMedium = SizeConfig{MaxWidth: 72}
	SizeAuto   = SizeConfig{}
)

// ContentSize returns the inner size available to a popup of the given
// config, after border and padding.
func ContentSize(screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return max(screenW*size.WidthPct/100-6, 1), max(screenH*size.HeightPct/100-4, 1)
	}
	w := screenW - 10
	if size.MaxWidth > 0 {
		w = min(w, size.MaxWidth-6)
	}
	return max(w, 1), max(screenH-8, 1)
}

// RenderBordered wraps content in a rounded accent border and centers it.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	width, height := outerSize(content, screenW, screenH, size)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Padding(1, 2).
		Width(width - 2).
		Height(height - 2).
		MaxHeight(height).
		Render(content)
	return Center(box, screenW, screenH)
}

func outerSize(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return max(screenW*size.WidthPct/100, 8), max(screenH*size.HeightPct/100, 5)
	}
	width = lipgloss.Width(content) + 6
	if size.MaxWidth > 0 {
		width = min(width, size.MaxWidth)
	}
	height = lipgloss.Height(content) + 4
	return max(min(width, screenW-4), 8), max(min(height, screenH-4), 5)
}

// Center pads a rendered box so it sits in the middle of the screen.
func Center(box string, screenW, screenH int) string {
	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "))
}

// Compose draws the visible cells of overlay on top of base. Blank columns
// of the overlay leave the base showing through.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(overlay, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		trimmed := strings.TrimLeft(plain, " ")
		if trimmed == "" {
			continue
		}
		start := len(plain) - len(trimmed)
		end := start + ansi.StringWidth(strings.TrimRight(trimmed, " "))

		under := baseLines[i]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}

		var b strings.Builder
		b.WriteString(fit(ansi.Cut(under, 0, start), start))
		b.WriteString(ansi.Cut(line, start, end))
		if end < width {
			b.WriteString(fit(ansi.Cut(under, end, width), width-end))
		}
		baseLines[i] = b.String()
	}
	return strings.Join(baseLines, "\n")
}

// fit pads s to exactly w columns; a wide rune cut in half leaves a gap.
func fit(s string, w int) string {
	sw := ansi.StringWidth(s)
	if sw < w {
		return s + strings.Repeat(" ", w-sw)
	}
	if sw > w {
		return ansi.Truncate(s, w, "")
	}
	return s
}
