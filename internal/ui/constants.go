// Package ui holds layout constants shared by the views.
package ui

const (
	// ScrollMargin is the number of rows kept visible around a selection.
	ScrollMargin = 2

	// BorderHeight is the vertical space taken by a panel border.
	BorderHeight = 2

	// PanelOverhead is border plus a title row and its separator.
	PanelOverhead = BorderHeight + 2

	// StatusHeight is the height of the bottom status line.
	StatusHeight = 1

	// MinWidth is the narrowest terminal the views lay out for.
	MinWidth = 40
)
