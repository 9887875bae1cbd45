package app

import (
	"go.uber.org/zap"

	"github.com/llehouerou/lfmbrowse/internal/search"
	"github.com/llehouerou/lfmbrowse/internal/state"
)

// persistedLocation keeps the current link in the state database. A link
// shared on the command line takes precedence over the saved one.
type persistedLocation struct {
	state  state.Interface
	shared *search.Link
	log    *zap.Logger
}

var _ search.Location = (*persistedLocation)(nil)

func newPersistedLocation(st state.Interface, shared *search.Link, log *zap.Logger) *persistedLocation {
	return &persistedLocation{state: st, shared: shared, log: log}
}

func (l *persistedLocation) Get() (search.Link, bool) {
	if l.shared != nil {
		return *l.shared, true
	}
	if l.state == nil {
		return search.Link{}, false
	}
	saved, err := l.state.GetSearch()
	if err != nil {
		l.log.Warn("restore last search failed", zap.Error(err))
		return search.Link{}, false
	}
	if saved == nil || saved.Query == "" {
		return search.Link{}, false
	}
	category, ok := search.ParseCategory(saved.Tab)
	if !ok {
		category = search.All
	}
	return search.Link{Query: saved.Query, Category: category}, true
}

func (l *persistedLocation) Set(link search.Link) {
	l.shared = nil
	if l.state == nil {
		return
	}
	l.state.SaveSearch(state.SearchState{
		Query: link.Query,
		Tab:   link.Category.String(),
	})
}
