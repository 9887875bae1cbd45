package similarartists

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/lfmbrowse/internal/cache"
	"github.com/llehouerou/lfmbrowse/internal/lastfm"
)

const (
	similarLimit   = 30
	topTracksLimit = 10
)

// Source fetches artist relations. *lastfm.Discovery implements it.
type Source interface {
	SimilarArtists(artist string, limit int) ([]lastfm.SimilarArtist, error)
	ArtistTopTracks(artist string, limit int) ([]lastfm.TopTrack, error)
}

var _ Source = (*lastfm.Discovery)(nil)

// Store caches artist relations. *cache.Cache implements it.
type Store interface {
	SimilarArtists(ctx context.Context, artist string) ([]lastfm.SimilarArtist, error)
	SetSimilarArtists(ctx context.Context, artist string, similar []lastfm.SimilarArtist) error
	ArtistTopTracks(ctx context.Context, artist string) ([]lastfm.TopTrack, error)
	SetArtistTopTracks(ctx context.Context, artist string, tracks []lastfm.TopTrack) error
}

var _ Store = (*cache.Cache)(nil)

// FetchResultMsg carries the relations of Artist.
type FetchResultMsg struct {
	Artist    string
	Similar   []lastfm.SimilarArtist
	TopTracks []lastfm.TopTrack
	Err       error
}

// FetchParams configures FetchCmd. Store and Log may be nil.
type FetchParams struct {
	Source Source
	Store  Store
	Log    *zap.Logger
	Artist string
}

// FetchCmd loads similar artists and top tracks concurrently, serving each
// from the store when it holds a fresh copy. A top tracks failure is logged
// and leaves that section empty; a similar artists failure fails the popup.
func FetchCmd(ctx context.Context, p FetchParams) tea.Cmd {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("artist", p.Artist))

	return func() tea.Msg {
		msg := FetchResultMsg{Artist: p.Artist}
		var g errgroup.Group

		g.Go(func() error {
			similar, err := cached(ctx, log, p.Store,
				func(s Store) ([]lastfm.SimilarArtist, error) { return s.SimilarArtists(ctx, p.Artist) },
				func() ([]lastfm.SimilarArtist, error) { return p.Source.SimilarArtists(p.Artist, similarLimit) },
				func(s Store, v []lastfm.SimilarArtist) error { return s.SetSimilarArtists(ctx, p.Artist, v) },
			)
			msg.Similar = similar
			return err
		})
		g.Go(func() error {
			tracks, err := cached(ctx, log, p.Store,
				func(s Store) ([]lastfm.TopTrack, error) { return s.ArtistTopTracks(ctx, p.Artist) },
				func() ([]lastfm.TopTrack, error) { return p.Source.ArtistTopTracks(p.Artist, topTracksLimit) },
				func(s Store, v []lastfm.TopTrack) error { return s.SetArtistTopTracks(ctx, p.Artist, v) },
			)
			if err != nil {
				log.Warn("artist top tracks failed", zap.Error(err))
				return nil
			}
			msg.TopTracks = tracks
			return nil
		})

		msg.Err = g.Wait()
		return msg
	}
}

func cached[T any](
	ctx context.Context,
	log *zap.Logger,
	store Store,
	get func(Store) ([]T, error),
	fetch func() ([]T, error),
	set func(Store, []T) error,
) ([]T, error) {
	if store != nil {
		v, err := get(store)
		if err != nil {
			log.Warn("relation cache read failed", zap.Error(err))
		} else if v != nil {
			return v, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err := fetch()
	if err != nil {
		return nil, err
	}

	if store != nil && len(v) > 0 {
		if err := set(store, v); err != nil {
			log.Warn("relation cache write failed", zap.Error(err))
		}
	}
	return v, nil
}
