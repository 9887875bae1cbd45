// Package charts loads the global Last.fm charts and decorates every entry
// with its top genres.
package charts

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/lfmbrowse/internal/cache"
	"github.com/llehouerou/lfmbrowse/internal/lastfm"
)

const (
	DefaultArtistsLimit   = 12
	DefaultTracksLimit    = 18
	DefaultTagConcurrency = 4

	tagLimit = 3
)

// Source is the part of the Last.fm client the loader needs.
type Source interface {
	TopArtists(ctx context.Context, limit int) ([]lastfm.Artist, error)
	TopTracks(ctx context.Context, limit int) ([]lastfm.Track, error)
	ArtistTopTags(ctx context.Context, artist string, limit int) ([]lastfm.Tag, error)
	TrackTopTags(ctx context.Context, artist, track string, limit int) ([]lastfm.Tag, error)
}

var _ Source = (*lastfm.Client)(nil)

// TagCache stores tag lookups. *cache.Cache implements it.
type TagCache interface {
	Tags(ctx context.Context, subject string) ([]lastfm.Tag, bool, error)
	SetTags(ctx context.Context, subject string, tags []lastfm.Tag) error
}

var _ TagCache = (*cache.Cache)(nil)

// ArtistCard is a chart artist with its genres.
type ArtistCard struct {
	Artist lastfm.Artist
	Genres string
	Image  string
}

// TrackCard is a chart track with its genres.
type TrackCard struct {
	Track  lastfm.Track
	Genres string
	Image  string
}

// Options sizes the chart pages.
type Options struct {
	ArtistsLimit   int
	TracksLimit    int
	TagConcurrency int
}

func (o Options) withDefaults() Options {
	if o.ArtistsLimit <= 0 {
		o.ArtistsLimit = DefaultArtistsLimit
	}
	if o.TracksLimit <= 0 {
		o.TracksLimit = DefaultTracksLimit
	}
	if o.TagConcurrency <= 0 {
		o.TagConcurrency = DefaultTagConcurrency
	}
	return o
}

// Loader fetches chart pages.
type Loader struct {
	src   Source
	cache TagCache
	opts  Options
	log   *zap.Logger
}

// NewLoader creates a loader. cache may be nil to always hit the API.
func NewLoader(src Source, tagCache TagCache, opts Options, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		src:   src,
		cache: tagCache,
		opts:  opts.withDefaults(),
		log:   log,
	}
}

// Artists loads the top artists chart. Tag failures leave the affected card
// without genres.
func (l *Loader) Artists(ctx context.Context) ([]ArtistCard, error) {
	artists, err := l.src.TopArtists(ctx, l.opts.ArtistsLimit)
	if err != nil {
		return nil, fmt.Errorf("load top artists: %w", err)
	}

	cards := make([]ArtistCard, len(artists))
	var g errgroup.Group
	g.SetLimit(l.opts.TagConcurrency)

	for i, a := range artists {
		img, _ := lastfm.SelectImage(a.Images, lastfm.SizeExtraLarge)
		cards[i] = ArtistCard{Artist: a, Image: img}

		g.Go(func() error {
			tags := l.tags(ctx, cache.ArtistSubject(a.Name), func(ctx context.Context) ([]lastfm.Tag, error) {
				return l.src.ArtistTopTags(ctx, a.Name, tagLimit)
			})
			cards[i].Genres = lastfm.FormatGenres(tags)
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // tag lookups never fail the page

	return cards, nil
}

// Tracks loads the top tracks chart.
func (l *Loader) Tracks(ctx context.Context) ([]TrackCard, error) {
	tracks, err := l.src.TopTracks(ctx, l.opts.TracksLimit)
	if err != nil {
		return nil, fmt.Errorf("load top tracks: %w", err)
	}

	cards := make([]TrackCard, len(tracks))
	var g errgroup.Group
	g.SetLimit(l.opts.TagConcurrency)

	for i, t := range tracks {
		img, _ := lastfm.SelectImage(t.Images, lastfm.SizeExtraLarge)
		cards[i] = TrackCard{Track: t, Image: img}

		artist := t.Artist.Name
		g.Go(func() error {
			tags := l.tags(ctx, cache.TrackSubject(artist, t.Name), func(ctx context.Context) ([]lastfm.Tag, error) {
				return l.src.TrackTopTags(ctx, artist, t.Name, tagLimit)
			})
			cards[i].Genres = lastfm.FormatGenres(tags)
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // tag lookups never fail the page

	return cards, nil
}

// tags returns the tags of subject from the cache, or fetches and caches
// them. Failures are logged and yield no tags.
func (l *Loader) tags(
	ctx context.Context,
	subject string,
	fetch func(context.Context) ([]lastfm.Tag, error),
) []lastfm.Tag {
	if l.cache != nil {
		tags, ok, err := l.cache.Tags(ctx, subject)
		if err != nil {
			l.log.Warn("tag cache read failed", zap.String("subject", subject), zap.Error(err))
		} else if ok {
			return tags
		}
	}

	tags, err := fetch(ctx)
	if err != nil {
		l.log.Warn("tag lookup failed", zap.String("subject", subject), zap.Error(err))
		return nil
	}

	if l.cache != nil {
		if err := l.cache.SetTags(ctx, subject, tags); err != nil {
			l.log.Warn("tag cache write failed", zap.String("subject", subject), zap.Error(err))
		}
	}
	return tags
}
