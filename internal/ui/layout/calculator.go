// Package layout provides pure functions for page and panel dimensions.
package layout

// NarrowThreshold is the terminal width below which paired panels stack
// vertically instead of sitting side by side.
const NarrowThreshold = 90

// ContentOpts lists the chrome around the page area.
type ContentOpts struct {
	HeaderHeight int
	FooterHeight int
}

// ContentHeight returns the height left for the page once the header and
// footer are drawn. It never goes below zero.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	return max(windowHeight-opts.HeaderHeight-opts.FooterHeight, 0)
}

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// Size is the outer size of a panel, border included.
type Size struct {
	Width  int
	Height int
}

// SplitPair divides a width x height area between two panels. Wide areas
// put them side by side, narrow ones stack them. The first panel gets the
// odd column or row.
func SplitPair(width, height int) (first, second Size) {
	if IsNarrowMode(width) {
		top := height - height/2
		return Size{width, top}, Size{width, height - top}
	}
	left := width - width/2
	return Size{left, height}, Size{width - left, height}
}
