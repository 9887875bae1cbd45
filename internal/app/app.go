// Package app is the root Bubble Tea model: it owns the pages, routes
// messages between them and performs the side effects they request.
package app

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/lfmbrowse/internal/charts"
	"github.com/llehouerou/lfmbrowse/internal/keymap"
	"github.com/llehouerou/lfmbrowse/internal/lastfm"
	"github.com/llehouerou/lfmbrowse/internal/search"
	"github.com/llehouerou/lfmbrowse/internal/state"
	"github.com/llehouerou/lfmbrowse/internal/ui/chartsview"
	"github.com/llehouerou/lfmbrowse/internal/ui/headerbar"
	"github.com/llehouerou/lfmbrowse/internal/ui/searchview"
	"github.com/llehouerou/lfmbrowse/internal/ui/similarartists"
)

// Clipboard receives copied share links.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Deps are the collaborators of the root model. Searcher, Loader and State
// are required.
type Deps struct {
	Ctx       context.Context
	Searcher  search.Searcher
	Loader    *charts.Loader
	Discovery similarartists.Source // nil hides the similar artists popup
	Relations similarartists.Store  // nil disables relation caching
	State     state.Interface
	// SharedLink, when set, is opened instead of the last saved search.
	SharedLink *search.Link
	Clipboard  Clipboard
	OpenURL    func(url string) error
	Log        *zap.Logger
}

// Model is the root application model.
type Model struct {
	ctx       context.Context
	log       *zap.Logger
	keys      *keymap.Resolver
	discovery similarartists.Source
	relations similarartists.Store
	clipboard Clipboard
	openURL   func(string) error

	Page   headerbar.Page
	Search searchview.Model
	Charts chartsview.Model
	Popups PopupManager

	notice    notice
	noticeSeq int
	noticeTTL time.Duration
	width     int
	height    int
}

// New builds the root model. With a shared link the search page opens
// first; otherwise the charts page does.
func New(d Deps) Model {
	if d.Ctx == nil {
		d.Ctx = context.Background()
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Clipboard == nil {
		d.Clipboard = systemClipboard{}
	}
	if d.OpenURL == nil {
		d.OpenURL = lastfm.OpenBrowser
	}

	loc := newPersistedLocation(d.State, d.SharedLink, d.Log)
	coord := search.New(d.Searcher, loc, d.Log.Named("search"))

	m := Model{
		ctx:       d.Ctx,
		log:       d.Log,
		keys:      keymap.NewResolver(keymap.ByContext(keymap.ContextGlobal)),
		discovery: d.Discovery,
		relations: d.Relations,
		clipboard: d.Clipboard,
		openURL:   d.OpenURL,
		Page:      headerbar.PageCharts,
		Search:    searchview.New(coord),
		Charts:    chartsview.New(d.Ctx, d.Loader),
		noticeTTL: noticeTTL,
	}
	if d.SharedLink != nil {
		m.Page = headerbar.PageSearch
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Charts.Init(), m.Search.Init())
}
