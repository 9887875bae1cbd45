package searchview

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/lfmbrowse/internal/keymap"
	"github.com/llehouerou/lfmbrowse/internal/search"
)

var tabActions = map[keymap.Action]search.Category{
	keymap.ActionTabAll:     search.All,
	keymap.ActionTabArtists: search.Artists,
	keymap.ActionTabAlbums:  search.Albums,
	keymap.ActionTabTracks:  search.Tracks,
}

// Update handles search results and keys. Global keys are left to the
// caller.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case search.ResultMsg:
		if m.coord.Update(msg) {
			m.refresh()
		}
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.editing = false
		m.input.Blur()
		cmd := m.coord.Submit(m.input.Value())
		m.refresh()
		return m, cmd
	case tea.KeyEscape:
		m.editing = false
		m.input.Blur()
		m.input.SetValue(m.state.Query)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	act := m.keys.Resolve(msg.String())
	if cat, ok := tabActions[act]; ok {
		return m.changeCategory(cat)
	}

	switch act {
	case keymap.ActionFocusInput:
		return m.StartEditing()
	case keymap.ActionNextTab:
		return m.changeCategory(m.state.Category.Next())
	case keymap.ActionPrevTab:
		return m.changeCategory(m.state.Category.Prev())
	case keymap.ActionRetry:
		if m.state.Err == nil {
			return m, nil
		}
		cmd := m.coord.Retry()
		m.refresh()
		return m, cmd
	case keymap.ActionMoveDown:
		m.cursors[m.focus].Move(1, m.sectionLen(m.focus), m.listHeight(m.focus))
	case keymap.ActionMoveUp:
		m.cursors[m.focus].Move(-1, m.sectionLen(m.focus), m.listHeight(m.focus))
	case keymap.ActionNextSection:
		m.shiftFocus(1)
	case keymap.ActionPrevSection:
		m.shiftFocus(-1)
	case keymap.ActionMore:
		if m.state.Category == search.All {
			return m.changeCategory(m.focus)
		}
	case keymap.ActionOpen:
		if url := m.selectedURL(); url != "" {
			return m, func() tea.Msg { return ActionMsg(OpenURL{URL: url}) }
		}
	case keymap.ActionSimilar:
		if artist := m.selectedArtist(); artist != "" {
			return m, func() tea.Msg { return ActionMsg(ShowSimilar{Artist: artist}) }
		}
	}
	return m, nil
}

func (m Model) changeCategory(cat search.Category) (Model, tea.Cmd) {
	cmd := m.coord.ChangeCategory(cat)
	m.refresh()
	if !slices.Contains(m.sections(), m.focus) {
		m.focus = m.sections()[0]
	}
	return m, cmd
}

func (m *Model) shiftFocus(delta int) {
	secs := m.sections()
	i := slices.Index(secs, m.focus)
	if i < 0 {
		m.focus = secs[0]
		return
	}
	m.focus = secs[(i+delta+len(secs))%len(secs)]
}

func (m Model) selectedURL() string {
	if m.sectionLen(m.focus) == 0 {
		return ""
	}
	pos := m.cursors[m.focus].Pos()
	switch m.focus {
	case search.Artists:
		return m.state.Artists[pos].URL
	case search.Albums:
		return m.state.Albums[pos].URL
	case search.Tracks:
		return m.state.Tracks[pos].URL
	}
	return ""
}

func (m Model) selectedArtist() string {
	if m.sectionLen(m.focus) == 0 {
		return ""
	}
	pos := m.cursors[m.focus].Pos()
	switch m.focus {
	case search.Artists:
		return m.state.Artists[pos].Name
	case search.Albums:
		return m.state.Albums[pos].Artist
	case search.Tracks:
		return m.state.Tracks[pos].Artist.Name
	}
	return ""
}
