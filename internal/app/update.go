package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/lfmbrowse/internal/charts"
	"github.com/llehouerou/lfmbrowse/internal/keymap"
	"github.com/llehouerou/lfmbrowse/internal/search"
	"github.com/llehouerou/lfmbrowse/internal/ui/action"
	"github.com/llehouerou/lfmbrowse/internal/ui/chartsview"
	"github.com/llehouerou/lfmbrowse/internal/ui/headerbar"
	"github.com/llehouerou/lfmbrowse/internal/ui/helpbindings"
	"github.com/llehouerou/lfmbrowse/internal/ui/layout"
	"github.com/llehouerou/lfmbrowse/internal/ui/searchview"
	"github.com/llehouerou/lfmbrowse/internal/ui/similarartists"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case action.Msg:
		return m.handleAction(msg)

	case search.ResultMsg:
		var cmd tea.Cmd
		m.Search, cmd = m.Search.Update(msg)
		return m, cmd

	case charts.ArtistsLoadedMsg, charts.TracksLoadedMsg:
		var cmd tea.Cmd
		m.Charts, cmd = m.Charts.Update(msg)
		return m, cmd

	case similarartists.FetchResultMsg:
		if msg.Err != nil {
			m.log.Warn("similar artists failed", zap.String("artist", msg.Artist), zap.Error(msg.Err))
		}
		return m, m.Popups.Update(msg)

	case noticeMsg:
		m.noticeSeq++
		m.notice = msg.notice
		return m, clearNoticeCmd(m.noticeSeq, m.noticeTTL)

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = notice{}
		}
		return m, nil
	}

	// Cursor blinks and other input traffic belong to the query input.
	if m.Page == headerbar.PageSearch {
		var cmd tea.Cmd
		m.Search, cmd = m.Search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.Popups.Active() != PopupNone {
		return m, m.Popups.Update(msg)
	}
	if m.Page == headerbar.PageSearch && m.Search.Editing() {
		var cmd tea.Cmd
		m.Search, cmd = m.Search.Update(msg)
		return m, cmd
	}

	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		return m, m.Popups.ShowHelp(helpContexts(m.Page))
	case keymap.ActionViewCharts:
		m.Page = headerbar.PageCharts
		return m, nil
	case keymap.ActionViewSearch:
		m.Page = headerbar.PageSearch
		if m.Search.State().Query == "" {
			var cmd tea.Cmd
			m.Search, cmd = m.Search.StartEditing()
			return m, cmd
		}
		return m, nil
	case keymap.ActionCopyLink:
		return m, m.copyLinkCmd()
	}

	var cmd tea.Cmd
	if m.Page == headerbar.PageSearch {
		m.Search, cmd = m.Search.Update(msg)
	} else {
		if msg.String() == "/" {
			m.Page = headerbar.PageSearch
			m.Search, cmd = m.Search.StartEditing()
			return m, cmd
		}
		m.Charts, cmd = m.Charts.Update(msg)
	}
	return m, cmd
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	m.log.Debug("ui action", zap.String("source", msg.Source), zap.String("action", msg.Action.ActionType()))

	switch a := msg.Action.(type) {
	case helpbindings.Close, similarartists.Close:
		m.Popups.Hide()
	case similarartists.Search:
		m.Popups.Hide()
		m.Page = headerbar.PageSearch
		var cmd tea.Cmd
		m.Search, cmd = m.Search.Open(a.Query, a.Category)
		return m, cmd
	case searchview.OpenURL:
		return m, m.openURLCmd(a.URL)
	case chartsview.OpenURL:
		return m, m.openURLCmd(a.URL)
	case searchview.ShowSimilar:
		return m, m.showSimilar(a.Artist)
	case chartsview.ShowSimilar:
		return m, m.showSimilar(a.Artist)
	}
	return m, nil
}

func (m *Model) showSimilar(artist string) tea.Cmd {
	if m.discovery == nil {
		return infoCmd("Similar artists are unavailable")
	}
	return tea.Batch(
		m.Popups.ShowSimilar(artist),
		m.fetchSimilarCmd(m.ctx, artist),
	)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	pageHeight := layout.ContentHeight(height, layout.ContentOpts{
		HeaderHeight: headerbar.Height,
		FooterHeight: footerHeight,
	})
	m.Search.SetSize(width, pageHeight)
	m.Charts.SetSize(width, pageHeight)
	m.Popups.SetSize(width, height)
}
