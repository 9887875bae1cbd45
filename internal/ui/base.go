package ui

// Base holds the area a view was laid out in. Pages and popups embed it.
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// TooSmall reports whether the area is narrower than minWidth or shorter
// than minHeight. Views render a placeholder instead of their content then.
func (b Base) TooSmall(minWidth, minHeight int) bool {
	return b.width < minWidth || b.height < minHeight
}
