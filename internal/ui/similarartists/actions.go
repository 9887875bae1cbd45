// Package similarartists is the popup listing artists similar to one artist
// and that artist's top tracks.
package similarartists

import (
	"github.com/llehouerou/lfmbrowse/internal/search"
	"github.com/llehouerou/lfmbrowse/internal/ui/action"
)

// Close requests closing the popup.
type Close struct{}

func (Close) ActionType() string { return "similar.close" }

// Search requests a search for the selected entry.
type Search struct {
	Query    string
	Category search.Category
}

func (Search) ActionType() string { return "similar.search" }

// ActionMsg wraps an action with the component source.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "similar", Action: a}
}
