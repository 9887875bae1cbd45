package lastfm

import (
	"errors"
	"fmt"

	"github.com/shkh/lastfm-go/lastfm"
)

// Discovery fetches artist relations (similar artists, top tracks) through
// the lastfm-go library. It backs the artist detail popup.
type Discovery struct {
	api *lastfm.Api
}

// NewDiscovery creates a Discovery with the given API credentials.
// The secret may be empty since only unauthenticated methods are used.
func NewDiscovery(apiKey, apiSecret string) *Discovery {
	return &Discovery{api: lastfm.New(apiKey, apiSecret)}
}

// SimilarArtists fetches artists similar to artist, best match first.
func (d *Discovery) SimilarArtists(artist string, limit int) ([]SimilarArtist, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	result, err := d.api.Artist.GetSimilar(lastfm.P{
		"artist": artist,
		"limit":  limit,
	})
	if err != nil {
		return nil, libError(MethodSimilarArtists, err)
	}

	artists := make([]SimilarArtist, 0, len(result.Similars))
	for _, a := range result.Similars {
		score := 0.0
		if a.Match != "" {
			_, _ = fmt.Sscanf(a.Match, "%f", &score) //nolint:errcheck // parse failure means score stays 0
		}
		artists = append(artists, SimilarArtist{
			Name:       a.Name,
			MatchScore: score,
		})
	}
	return artists, nil
}

// ArtistTopTracks fetches an artist's most played tracks, ranked from 1.
func (d *Discovery) ArtistTopTracks(artist string, limit int) ([]TopTrack, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	result, err := d.api.Artist.GetTopTracks(lastfm.P{
		"artist": artist,
		"limit":  limit,
	})
	if err != nil {
		return nil, libError(MethodArtistTracks, err)
	}

	tracks := make([]TopTrack, 0, len(result.Tracks))
	for i, t := range result.Tracks {
		playcount := 0
		if t.PlayCount != "" {
			_, _ = fmt.Sscanf(t.PlayCount, "%d", &playcount) //nolint:errcheck // parse failure means count stays 0
		}
		tracks = append(tracks, TopTrack{
			Name:      t.Name,
			Playcount: playcount,
			Rank:      i + 1,
		})
	}
	return tracks, nil
}

// libError maps lastfm-go failures onto APIError.
func libError(method string, err error) error {
	var lerr *lastfm.LastfmError
	if errors.As(err, &lerr) {
		return &APIError{Method: method, Code: lerr.Code, Message: lerr.Message}
	}
	return &APIError{Method: method, Err: err}
}
