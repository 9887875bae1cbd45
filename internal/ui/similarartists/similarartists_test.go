package similarartists

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/lfmbrowse/internal/cache"
	"github.com/llehouerou/lfmbrowse/internal/lastfm"
	"github.com/llehouerou/lfmbrowse/internal/search"
	"github.com/llehouerou/lfmbrowse/internal/state"
	"github.com/llehouerou/lfmbrowse/internal/ui/action"
	"github.com/llehouerou/lfmbrowse/internal/ui/testutil"
)

type fakeSource struct {
	similar      []lastfm.SimilarArtist
	tracks       []lastfm.TopTrack
	similarErr   error
	tracksErr    error
	similarCalls int
	tracksCalls  int
}

func (f *fakeSource) SimilarArtists(string, int) ([]lastfm.SimilarArtist, error) {
	f.similarCalls++
	return f.similar, f.similarErr
}

func (f *fakeSource) ArtistTopTracks(string, int) ([]lastfm.TopTrack, error) {
	f.tracksCalls++
	return f.tracks, f.tracksErr
}

func newSource() *fakeSource {
	return &fakeSource{
		similar: []lastfm.SimilarArtist{
			{Name: "Muse", MatchScore: 0.9},
			{Name: "Portishead", MatchScore: 0.7},
		},
		tracks: []lastfm.TopTrack{
			{Name: "Creep", Playcount: 1200, Rank: 1},
			{Name: "Karma Police", Playcount: 900, Rank: 2},
		},
	}
}

func newStore(t *testing.T) *cache.Cache {
	t.Helper()
	mgr, err := state.OpenPath(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = mgr.Close() })
	return cache.New(mgr.DB(), 7)
}

func fetch(t *testing.T, src Source, store Store) FetchResultMsg {
	t.Helper()
	msg := FetchCmd(context.Background(), FetchParams{Source: src, Store: store, Artist: "Radiohead"})()
	res, ok := msg.(FetchResultMsg)
	require.True(t, ok, "got %T", msg)
	return res
}

func TestFetchCmd(t *testing.T) {
	src := newSource()
	res := fetch(t, src, nil)

	require.NoError(t, res.Err)
	assert.Equal(t, "Radiohead", res.Artist)
	assert.Len(t, res.Similar, 2)
	assert.Len(t, res.TopTracks, 2)
}

func TestFetchCmdServesFromStore(t *testing.T) {
	store := newStore(t)
	src := newSource()

	first := fetch(t, src, store)
	require.NoError(t, first.Err)

	second := fetch(t, src, store)
	require.NoError(t, second.Err)

	assert.Equal(t, 1, src.similarCalls)
	assert.Equal(t, 1, src.tracksCalls)
	assert.Equal(t, first.Similar, second.Similar)
	assert.Equal(t, first.TopTracks, second.TopTracks)
}

func TestFetchCmdSimilarFailure(t *testing.T) {
	src := newSource()
	src.similarErr = errors.New("boom")

	res := fetch(t, src, nil)
	assert.Error(t, res.Err)
}

func TestFetchCmdTopTracksFailureDegrades(t *testing.T) {
	store := newStore(t)
	src := newSource()
	src.tracksErr = errors.New("boom")

	res := fetch(t, src, store)
	require.NoError(t, res.Err)
	assert.Len(t, res.Similar, 2)
	assert.Empty(t, res.TopTracks)

	// Failures are not cached.
	src.tracksErr = nil
	res = fetch(t, src, store)
	assert.Len(t, res.TopTracks, 2)
	assert.Equal(t, 2, src.tracksCalls)
}

func newHarness(t *testing.T) *testutil.PopupHarness {
	t.Helper()
	h := testutil.NewPopupHarness(New("Radiohead"), 60, 30)
	h.Send(fetch(t, newSource(), nil))
	return h
}

func actionOf(t *testing.T, h *testutil.PopupHarness, key string) action.Action {
	t.Helper()
	msg := testutil.Run(h.Press(key))
	am, ok := msg.(action.Msg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, "similar", am.Source)
	return am.Action
}

func TestViewLoading(t *testing.T) {
	h := testutil.NewPopupHarness(New("Radiohead"), 60, 30)
	assert.Contains(t, h.View(), "Loading")
	assert.Nil(t, h.Press("enter"))
}

func TestViewSections(t *testing.T) {
	h := newHarness(t)
	view := h.View()

	assert.Contains(t, view, "Similar to Radiohead")
	assert.Contains(t, view, "Similar artists")
	assert.Contains(t, view, "Muse")
	assert.Contains(t, view, "90%")
	assert.Contains(t, view, "Top tracks")
	assert.Contains(t, view, "1.  Creep")
	assert.Contains(t, view, "1,200 plays")
}

func TestViewError(t *testing.T) {
	h := testutil.NewPopupHarness(New("Radiohead"), 60, 30)
	h.Send(FetchResultMsg{Artist: "Radiohead", Err: errors.New("boom")})
	assert.Contains(t, h.View(), "Failed to load similar artists: boom")
}

func TestIgnoresResultForOtherArtist(t *testing.T) {
	h := testutil.NewPopupHarness(New("Radiohead"), 60, 30)
	h.Send(FetchResultMsg{Artist: "Muse"})
	assert.Contains(t, h.View(), "Loading")
}

func TestEnterSearchesSimilarArtist(t *testing.T) {
	h := newHarness(t)
	h.Press("j")

	got := actionOf(t, h, "enter")
	assert.Equal(t, Search{Query: "Portishead", Category: search.Artists}, got)
}

func TestEnterSearchesTopTrack(t *testing.T) {
	h := newHarness(t)
	h.Press("tab")
	h.Press("j")

	got := actionOf(t, h, "enter")
	assert.Equal(t, Search{Query: "Radiohead Karma Police", Category: search.Tracks}, got)
}

func TestCloseKeys(t *testing.T) {
	for _, key := range []string{"esc", "q"} {
		h := newHarness(t)
		assert.Equal(t, Close{}, actionOf(t, h, key))
	}
}

func TestCursorClamps(t *testing.T) {
	h := newHarness(t)
	for range 5 {
		h.Press("j")
	}
	m := h.Popup().(*Model)
	assert.Equal(t, 1, m.cursors[sectionSimilar].Pos())
}
