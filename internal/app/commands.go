package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/lfmbrowse/internal/errmsg"
	"github.com/llehouerou/lfmbrowse/internal/ui/similarartists"
)

func (m Model) copyLinkCmd() tea.Cmd {
	link := m.Search.Link()
	if link == "" {
		return infoCmd("Nothing to share yet")
	}
	clip := m.clipboard
	log := m.log
	return func() tea.Msg {
		if err := clip.WriteAll(link); err != nil {
			log.Warn("copy link failed", zap.Error(err))
			return noticeMsg{notice{text: errmsg.Format(errmsg.OpCopyLink, err), isErr: true}}
		}
		return noticeMsg{notice{text: "Copied " + link}}
	}
}

func (m Model) openURLCmd(url string) tea.Cmd {
	open := m.openURL
	log := m.log
	return func() tea.Msg {
		if err := open(url); err != nil {
			log.Warn("open link failed", zap.String("url", url), zap.Error(err))
			return noticeMsg{notice{text: errmsg.Format(errmsg.OpOpenLink, err), isErr: true}}
		}
		return noticeMsg{notice{text: "Opened " + url}}
	}
}

func (m Model) fetchSimilarCmd(ctx context.Context, artist string) tea.Cmd {
	return similarartists.FetchCmd(ctx, similarartists.FetchParams{
		Source: m.discovery,
		Store:  m.relations,
		Log:    m.log.Named("similar"),
		Artist: artist,
	})
}
