package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/lfmbrowse/internal/charts"
	"github.com/llehouerou/lfmbrowse/internal/lastfm"
	"github.com/llehouerou/lfmbrowse/internal/search"
	"github.com/llehouerou/lfmbrowse/internal/state"
	"github.com/llehouerou/lfmbrowse/internal/ui/headerbar"
	"github.com/llehouerou/lfmbrowse/internal/ui/testutil"
)

type fakeLastfm struct {
	mu      sync.Mutex
	queries []string
}

func (f *fakeLastfm) note(q string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
}

func (f *fakeLastfm) Queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

func (f *fakeLastfm) SearchArtists(_ context.Context, q string, _ int) ([]lastfm.Artist, error) {
	f.note("artists:" + q)
	return []lastfm.Artist{{Name: "Daft Punk", URL: "https://www.last.fm/music/Daft+Punk"}}, nil
}

func (f *fakeLastfm) SearchAlbums(_ context.Context, q string, _ int) ([]lastfm.Album, error) {
	f.note("albums:" + q)
	return []lastfm.Album{{Name: "Discovery", Artist: "Daft Punk"}}, nil
}

func (f *fakeLastfm) SearchTracks(_ context.Context, q string, _ int) ([]lastfm.Track, error) {
	f.note("tracks:" + q)
	return nil, nil
}

func (f *fakeLastfm) TopArtists(context.Context, int) ([]lastfm.Artist, error) {
	return []lastfm.Artist{{Name: "Radiohead", URL: "https://www.last.fm/music/Radiohead"}}, nil
}

func (f *fakeLastfm) TopTracks(context.Context, int) ([]lastfm.Track, error) {
	return nil, nil
}

func (f *fakeLastfm) ArtistTopTags(context.Context, string, int) ([]lastfm.Tag, error) {
	return []lastfm.Tag{{Name: "alternative"}}, nil
}

func (f *fakeLastfm) TrackTopTags(context.Context, string, string, int) ([]lastfm.Tag, error) {
	return nil, nil
}

type fakeDiscovery struct{}

func (fakeDiscovery) SimilarArtists(string, int) ([]lastfm.SimilarArtist, error) {
	return []lastfm.SimilarArtist{{Name: "Justice", MatchScore: 0.8}}, nil
}

func (fakeDiscovery) ArtistTopTracks(string, int) ([]lastfm.TopTrack, error) {
	return []lastfm.TopTrack{{Name: "One More Time", Rank: 1}}, nil
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	c.text = text
	return c.err
}

type harness struct {
	t      *testing.T
	m      Model
	api    *fakeLastfm
	state  *state.Mock
	clip   *fakeClipboard
	opened []string
	quit   bool
}

func newHarness(t *testing.T, shared *search.Link) *harness {
	t.Helper()
	h := &harness{t: t, api: &fakeLastfm{}, state: state.NewMock(), clip: &fakeClipboard{}}
	h.m = New(Deps{
		Searcher:   h.api,
		Loader:     charts.NewLoader(h.api, nil, charts.Options{}, nil),
		Discovery:  fakeDiscovery{},
		State:      h.state,
		SharedLink: shared,
		Clipboard:  h.clip,
		OpenURL: func(url string) error {
			h.opened = append(h.opened, url)
			return nil
		},
	})
	h.m.noticeTTL = time.Millisecond
	h.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	h.run(h.m.Init())
	return h
}

// send delivers msg and runs whatever it triggers.
func (h *harness) send(msg tea.Msg) {
	h.t.Helper()
	updated, cmd := h.m.Update(msg)
	h.m = updated.(Model)
	h.run(cmd)
}

// run executes cmd, feeding results back. Notice expiry is dropped.
func (h *harness) run(cmd tea.Cmd) {
	h.t.Helper()
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			h.run(c)
		}
	case tea.QuitMsg:
		h.quit = true
	case clearNoticeMsg:
	default:
		h.send(msg)
	}
}

func (h *harness) press(keys ...string) {
	h.t.Helper()
	for _, k := range keys {
		h.send(testutil.Key(k))
	}
}

func (h *harness) typeText(text string) {
	for _, k := range testutil.Type(text) {
		h.send(k)
	}
}

func (h *harness) view() string {
	return testutil.StripANSI(h.m.View())
}

func TestStartsOnChartsWithoutLink(t *testing.T) {
	h := newHarness(t, nil)

	assert.Equal(t, headerbar.PageCharts, h.m.Page)
	assert.Empty(t, h.api.Queries())
	assert.Contains(t, h.view(), "Radiohead")
	assert.Contains(t, h.view(), "alternative")
}

func TestSharedLinkOpensSearch(t *testing.T) {
	h := newHarness(t, &search.Link{Query: "daft punk", Category: search.Albums})

	assert.Equal(t, headerbar.PageSearch, h.m.Page)
	assert.Equal(t, []string{"albums:daft punk"}, h.api.Queries())
	assert.Contains(t, h.view(), "Discovery · Daft Punk")
	assert.Contains(t, h.view(), "?q=daft+punk&tab=albums")

	saved, err := h.state.GetSearch()
	require.NoError(t, err)
	assert.Equal(t, "daft punk", saved.Query)
	assert.Equal(t, "albums", saved.Tab)
}

func TestRestoresSavedSearch(t *testing.T) {
	st := state.NewMock()
	st.SetSearch(&state.SearchState{Query: "justice", Tab: "artists"})
	api := &fakeLastfm{}
	m := New(Deps{
		Searcher: api,
		Loader:   charts.NewLoader(api, nil, charts.Options{}, nil),
		State:    st,
	})

	msgs := drainCmd(m.Search.Init())
	require.Len(t, msgs, 1)
	assert.Equal(t, []string{"artists:justice"}, api.Queries())
	assert.Equal(t, headerbar.PageCharts, m.Page)
}

func TestSearchFromChartsWithSlash(t *testing.T) {
	h := newHarness(t, nil)

	h.press("/")
	assert.Equal(t, headerbar.PageSearch, h.m.Page)
	require.True(t, h.m.Search.Editing())

	h.typeText("daft punk")
	h.press("enter")

	assert.ElementsMatch(t, []string{"artists:daft punk", "albums:daft punk", "tracks:daft punk"}, h.api.Queries())
	assert.Equal(t, search.Settled, h.m.Search.State().Status)
	assert.Equal(t, 2, h.state.SaveCount(), "saved on start and settle")
}

func TestGlobalKeysIgnoredWhileEditing(t *testing.T) {
	h := newHarness(t, nil)
	h.press("f2")
	require.True(t, h.m.Search.Editing(), "empty search page focuses the input")

	h.typeText("q?y")
	assert.False(t, h.quit)
	assert.Equal(t, PopupNone, h.m.Popups.Active())

	h.press("ctrl+c")
	assert.True(t, h.quit)
}

func TestPageSwitching(t *testing.T) {
	h := newHarness(t, &search.Link{Query: "daft punk"})

	h.press("f1")
	assert.Equal(t, headerbar.PageCharts, h.m.Page)
	h.press("f2")
	assert.Equal(t, headerbar.PageSearch, h.m.Page)
	assert.False(t, h.m.Search.Editing(), "existing search keeps results focused")
}

func TestCopyLink(t *testing.T) {
	h := newHarness(t, &search.Link{Query: "daft punk", Category: search.Tracks})

	h.press("y")
	assert.Equal(t, "?q=daft+punk&tab=tracks", h.clip.text)
	assert.Contains(t, h.view(), "Copied ?q=daft+punk&tab=tracks")
}

func TestCopyLinkFailure(t *testing.T) {
	h := newHarness(t, &search.Link{Query: "daft punk"})
	h.clip.err = errors.New("no clipboard utility")

	h.press("y")
	assert.Contains(t, h.view(), "Failed to copy link: no clipboard utility")
}

func TestCopyLinkWithoutSearch(t *testing.T) {
	h := newHarness(t, nil)
	h.press("y")
	assert.Empty(t, h.clip.text)
	assert.Contains(t, h.view(), "Nothing to share yet")
}

func TestOpenChartArtist(t *testing.T) {
	h := newHarness(t, nil)
	h.press("enter")
	assert.Equal(t, []string{"https://www.last.fm/music/Radiohead"}, h.opened)
}

func TestHelpPopup(t *testing.T) {
	h := newHarness(t, nil)

	h.press("?")
	assert.Equal(t, PopupHelp, h.m.Popups.Active())
	assert.Contains(t, h.view(), "Reload charts")

	h.press("q")
	assert.Equal(t, PopupNone, h.m.Popups.Active())
	assert.False(t, h.quit, "q closes the popup, not the app")
}

func TestSimilarPopupSearchesArtist(t *testing.T) {
	h := newHarness(t, nil)

	h.press("s")
	require.Equal(t, PopupSimilar, h.m.Popups.Active())
	assert.Contains(t, h.view(), "Similar to Radiohead")
	assert.Contains(t, h.view(), "Justice")

	h.press("enter")
	assert.Equal(t, PopupNone, h.m.Popups.Active())
	assert.Equal(t, headerbar.PageSearch, h.m.Page)
	assert.Equal(t, []string{"artists:Justice"}, h.api.Queries())
	assert.Equal(t, "?q=Justice&tab=artists", h.m.Search.Link())
}

func TestQuit(t *testing.T) {
	h := newHarness(t, nil)
	h.press("q")
	assert.True(t, h.quit)
}

func TestViewFillsScreen(t *testing.T) {
	h := newHarness(t, nil)
	assert.Len(t, strings.Split(h.m.View(), "\n"), 40)
}

func TestPersistedLocationPrefersSharedLinkOnce(t *testing.T) {
	st := state.NewMock()
	st.SetSearch(&state.SearchState{Query: "saved", Tab: "bogus"})
	shared := &search.Link{Query: "shared", Category: search.Tracks}
	loc := newPersistedLocation(st, shared, nil)

	link, ok := loc.Get()
	require.True(t, ok)
	assert.Equal(t, *shared, link)

	loc.Set(search.Link{Query: "next", Category: search.Artists})
	link, ok = loc.Get()
	require.True(t, ok)
	assert.Equal(t, search.Link{Query: "next", Category: search.Artists}, link)

	st.SetSearch(&state.SearchState{Query: "saved", Tab: "bogus"})
	link, _ = loc.Get()
	assert.Equal(t, search.All, link.Category, "unknown tab falls back to all")
}

func drainCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drainCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
