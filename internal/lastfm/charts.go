package lastfm

import (
	"context"
	"errors"
	"net/url"
)

var (
	errMissingArtists = errors.New("invalid response: missing artists")
	errMissingTracks  = errors.New("invalid response: missing tracks")
)

// TopArtists returns the global artist chart.
func (c *Client) TopArtists(ctx context.Context, limit int) ([]Artist, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	var resp topArtistsResponse
	if err := c.call(ctx, MethodTopArtists, url.Values{"limit": {limitParam(limit)}}, &resp); err != nil {
		return nil, err
	}
	if resp.Artists == nil {
		return nil, &APIError{Method: MethodTopArtists, Err: errMissingArtists}
	}
	return resp.Artists.Artist, nil
}

// TopTracks returns the global track chart.
func (c *Client) TopTracks(ctx context.Context, limit int) ([]Track, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	var resp topTracksResponse
	if err := c.call(ctx, MethodTopTracks, url.Values{"limit": {limitParam(limit)}}, &resp); err != nil {
		return nil, err
	}
	if resp.Tracks == nil {
		return nil, &APIError{Method: MethodTopTracks, Err: errMissingTracks}
	}
	return resp.Tracks.Track, nil
}

// ArtistTopTags returns an artist's most applied tags, most relevant first.
func (c *Client) ArtistTopTags(ctx context.Context, artist string, limit int) ([]Tag, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	var resp topTagsResponse
	params := url.Values{"artist": {artist}, "limit": {limitParam(limit)}}
	if err := c.call(ctx, MethodArtistTopTags, params, &resp); err != nil {
		return nil, err
	}
	return resp.TopTags.Tag, nil
}

// TrackTopTags returns a track's most applied tags, most relevant first.
func (c *Client) TrackTopTags(ctx context.Context, artist, track string, limit int) ([]Tag, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	var resp topTagsResponse
	params := url.Values{"artist": {artist}, "track": {track}, "limit": {limitParam(limit)}}
	if err := c.call(ctx, MethodTrackTopTags, params, &resp); err != nil {
		return nil, err
	}
	return resp.TopTags.Tag, nil
}
