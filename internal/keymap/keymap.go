package keymap

// Binding ties keys to an action within a context. Context groups the
// bindings in the help popup.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// Binding contexts.
const (
	ContextGlobal  = "global"
	ContextSearch  = "search"
	ContextResults = "results"
	ContextCharts  = "charts"
	ContextSimilar = "similar"
)

// All lists every binding in help order.
var All = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},
	{ActionViewCharts, []string{"f1"}, "Charts page", ContextGlobal},
	{ActionViewSearch, []string{"f2"}, "Search page", ContextGlobal},
	{ActionCopyLink, []string{"y"}, "Copy share link", ContextGlobal},

	{ActionFocusInput, []string{"/"}, "Edit query", ContextSearch},
	{ActionNextTab, []string{"tab"}, "Next category", ContextSearch},
	{ActionPrevTab, []string{"shift+tab"}, "Previous category", ContextSearch},
	{ActionTabAll, []string{"1"}, "All", ContextSearch},
	{ActionTabArtists, []string{"2"}, "Artists", ContextSearch},
	{ActionTabAlbums, []string{"3"}, "Albums", ContextSearch},
	{ActionTabTracks, []string{"4"}, "Tracks", ContextSearch},
	{ActionRetry, []string{"r"}, "Retry failed search", ContextSearch},

	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextResults},
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextResults},
	{ActionNextSection, []string{"l", "right"}, "Next section", ContextResults},
	{ActionPrevSection, []string{"h", "left"}, "Previous section", ContextResults},
	{ActionMore, []string{"m"}, "More of this section", ContextResults},
	{ActionOpen, []string{"enter", "o"}, "Open on Last.fm", ContextResults},
	{ActionSimilar, []string{"s"}, "Similar artists", ContextResults},

	{ActionSwitchPanel, []string{"tab"}, "Switch artists/tracks", ContextCharts},
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextCharts},
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextCharts},
	{ActionOpen, []string{"enter", "o"}, "Open on Last.fm", ContextCharts},
	{ActionSimilar, []string{"s"}, "Similar artists", ContextCharts},
	{ActionRefresh, []string{"r"}, "Reload charts", ContextCharts},

	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextSimilar},
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextSimilar},
	{ActionSwitchPanel, []string{"tab"}, "Switch section", ContextSimilar},
	{ActionSearchFor, []string{"enter"}, "Search for artist", ContextSimilar},
	{ActionClose, []string{"esc", "q"}, "Close", ContextSimilar},
}

// ByContext returns the bindings of a context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, b := range All {
		if b.Context == context {
			result = append(result, b)
		}
	}
	return result
}

// ForContexts returns the bindings of the given contexts, in that order.
func ForContexts(contexts ...string) []Binding {
	var result []Binding
	for _, c := range contexts {
		result = append(result, ByContext(c)...)
	}
	return result
}
