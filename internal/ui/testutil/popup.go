package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/lfmbrowse/internal/ui/popup"
)

// PopupHarness drives a popup in tests and records the commands it returns.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness initializes p and records its init command.
func NewPopupHarness(p popup.Popup, width, height int) *PopupHarness {
	p.SetSize(width, height)
	h := &PopupHarness{popup: p}
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Popup returns the current popup value.
func (h *PopupHarness) Popup() popup.Popup {
	return h.popup
}

// View returns the stripped popup content.
func (h *PopupHarness) View() string {
	return StripANSI(h.popup.View())
}

// Send delivers msg and returns the resulting command.
func (h *PopupHarness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Press sends the named key.
func (h *PopupHarness) Press(name string) tea.Cmd {
	return h.Send(Key(name))
}

// Commands returns every recorded command.
func (h *PopupHarness) Commands() []tea.Cmd {
	return h.cmds
}

// Run executes cmd and returns its message; nil runs to nil.
func Run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// RunAndSend executes cmd and delivers its message back to the popup.
func (h *PopupHarness) RunAndSend(cmd tea.Cmd) (tea.Msg, tea.Cmd) {
	msg := Run(cmd)
	if msg == nil {
		return nil, nil
	}
	return msg, h.Send(msg)
}
