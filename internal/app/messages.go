package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const noticeTTL = 4 * time.Second

type notice struct {
	text  string
	isErr bool
}

// noticeMsg shows a transient message in the footer.
type noticeMsg struct {
	notice
}

// clearNoticeMsg hides the notice it was scheduled for.
type clearNoticeMsg struct {
	seq int
}

func infoCmd(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{notice{text: text}} }
}

func errorCmd(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{notice{text: text, isErr: true}} }
}

func clearNoticeCmd(seq int, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg { return clearNoticeMsg{seq: seq} })
}
