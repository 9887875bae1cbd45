package searchview

import "github.com/llehouerou/lfmbrowse/internal/ui/action"

// OpenURL requests opening a Last.fm page in the browser.
type OpenURL struct {
	URL string
}

func (OpenURL) ActionType() string { return "search.open_url" }

// ShowSimilar requests the similar artists popup for an artist.
type ShowSimilar struct {
	Artist string
}

func (ShowSimilar) ActionType() string { return "search.show_similar" }

// ActionMsg wraps a search page action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "search", Action: a}
}
