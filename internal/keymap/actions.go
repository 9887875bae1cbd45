// Package keymap defines the key bindings and resolves keys to actions.
package keymap

// Action is a user-triggerable command.
type Action string

const (
	// Global
	ActionQuit       Action = "quit"
	ActionHelp       Action = "help"
	ActionViewCharts Action = "view_charts"
	ActionViewSearch Action = "view_search"
	ActionCopyLink   Action = "copy_link"

	// Search page
	ActionFocusInput  Action = "focus_input"
	ActionNextTab     Action = "next_tab"
	ActionPrevTab     Action = "prev_tab"
	ActionTabAll      Action = "tab_all"
	ActionTabArtists  Action = "tab_artists"
	ActionTabAlbums   Action = "tab_albums"
	ActionTabTracks   Action = "tab_tracks"
	ActionRetry       Action = "retry"
	ActionNextSection Action = "next_section"
	ActionPrevSection Action = "prev_section"
	ActionMore        Action = "more"

	// Lists
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionOpen      Action = "open"
	ActionSimilar   Action = "similar"
	ActionSearchFor Action = "search_for"

	// Charts page
	ActionSwitchPanel Action = "switch_panel"
	ActionRefresh     Action = "refresh"

	ActionClose Action = "close"
)
