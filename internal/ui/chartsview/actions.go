package chartsview

import "github.com/llehouerou/lfmbrowse/internal/ui/action"

// OpenURL requests opening a Last.fm page in the browser.
type OpenURL struct {
	URL string
}

func (OpenURL) ActionType() string { return "charts.open_url" }

// ShowSimilar requests the similar artists popup for an artist.
type ShowSimilar struct {
	Artist string
}

func (ShowSimilar) ActionType() string { return "charts.show_similar" }

// ActionMsg wraps a charts page action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "charts", Action: a}
}
