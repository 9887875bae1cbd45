package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/lfmbrowse/internal/keymap"
	"github.com/llehouerou/lfmbrowse/internal/ui/headerbar"
	"github.com/llehouerou/lfmbrowse/internal/ui/helpbindings"
	"github.com/llehouerou/lfmbrowse/internal/ui/popup"
	"github.com/llehouerou/lfmbrowse/internal/ui/similarartists"
)

// PopupType identifies the open popup.
type PopupType int

const (
	PopupNone PopupType = iota
	PopupHelp
	PopupSimilar
)

// PopupManager holds the single open popup, if any.
type PopupManager struct {
	kind   PopupType
	active popup.Popup
	size   popup.SizeConfig
	width  int
	height int
}

// SetSize records the screen size popups are laid out in.
func (p *PopupManager) SetSize(width, height int) {
	p.width = width
	p.height = height
	if p.active != nil {
		p.active.SetSize(popup.ContentSize(width, height, p.size))
	}
}

// Active returns the open popup type.
func (p *PopupManager) Active() PopupType {
	return p.kind
}

// ShowHelp opens the key bindings popup for the given contexts.
func (p *PopupManager) ShowHelp(contexts []string) tea.Cmd {
	return p.show(PopupHelp, helpbindings.New(contexts...), popup.SizeMedium)
}

// ShowSimilar opens the similar artists popup for artist.
func (p *PopupManager) ShowSimilar(artist string) tea.Cmd {
	return p.show(PopupSimilar, similarartists.New(artist), popup.SizeLarge)
}

func (p *PopupManager) show(kind PopupType, pp popup.Popup, size popup.SizeConfig) tea.Cmd {
	p.kind = kind
	p.active = pp
	p.size = size
	pp.SetSize(popup.ContentSize(p.width, p.height, size))
	return pp.Init()
}

// Hide closes the open popup.
func (p *PopupManager) Hide() {
	p.kind = PopupNone
	p.active = nil
}

// Update forwards msg to the open popup.
func (p *PopupManager) Update(msg tea.Msg) tea.Cmd {
	if p.active == nil {
		return nil
	}
	var cmd tea.Cmd
	p.active, cmd = p.active.Update(msg)
	return cmd
}

// Render draws the open popup over base.
func (p *PopupManager) Render(base string) string {
	if p.active == nil {
		return base
	}
	box := popup.RenderBordered(p.active.View(), p.width, p.height, p.size)
	return popup.Compose(base, box, p.width)
}

// helpContexts lists the binding contexts relevant to a page.
func helpContexts(page headerbar.Page) []string {
	if page == headerbar.PageSearch {
		return []string{keymap.ContextGlobal, keymap.ContextSearch, keymap.ContextResults}
	}
	return []string{keymap.ContextGlobal, keymap.ContextCharts}
}
