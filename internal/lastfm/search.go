package lastfm

import (
	"context"
	"net/url"
	"strings"
)

// SearchArtists searches artists by name. A blank query returns no results
// without calling the API.
func (c *Client) SearchArtists(ctx context.Context, query string, limit int) ([]Artist, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	var resp artistSearchResponse
	params := url.Values{"artist": {query}, "limit": {limitParam(limit)}}
	if err := c.call(ctx, MethodArtistSearch, params, &resp); err != nil {
		return nil, err
	}
	return resp.Results.Matches.Artist, nil
}

// SearchAlbums searches albums by title. A blank query returns no results
// without calling the API.
func (c *Client) SearchAlbums(ctx context.Context, query string, limit int) ([]Album, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	var resp albumSearchResponse
	params := url.Values{"album": {query}, "limit": {limitParam(limit)}}
	if err := c.call(ctx, MethodAlbumSearch, params, &resp); err != nil {
		return nil, err
	}
	return resp.Results.Matches.Album, nil
}

// SearchTracks searches tracks by title. A blank query returns no results
// without calling the API.
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]Track, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	var resp trackSearchResponse
	params := url.Values{"track": {query}, "limit": {limitParam(limit)}}
	if err := c.call(ctx, MethodTrackSearch, params, &resp); err != nil {
		return nil, err
	}
	return resp.Results.Matches.Track, nil
}
