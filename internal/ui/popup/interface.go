package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component drawn over the current page.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	// View renders the content only; the caller adds border and placement.
	View() string
	SetSize(width, height int)
}
