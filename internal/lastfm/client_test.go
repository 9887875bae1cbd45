package lastfm

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockTransport is a mock http.RoundTripper that records requests.
type mockTransport struct {
	status   int
	body     string
	err      error
	requests []*http.Request
}

func (m *mockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	status := m.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(m.body)),
		Header:     make(http.Header),
	}, nil
}

func newTestClient(mock *mockTransport) *Client {
	return NewClient("test-key", WithHTTPClient(&http.Client{Transport: mock}))
}

func TestSearchArtists_RequestParameters(t *testing.T) {
	mock := &mockTransport{body: `{"results":{"artistmatches":{"artist":[]}}}`}
	c := newTestClient(mock)

	_, err := c.SearchArtists(context.Background(), "  Radiohead ", 12)
	require.NoError(t, err)
	require.Len(t, mock.requests, 1)

	req := mock.requests[0]
	q := req.URL.Query()
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "artist.search", q.Get("method"))
	assert.Equal(t, "Radiohead", q.Get("artist"))
	assert.Equal(t, "12", q.Get("limit"))
	assert.Equal(t, "test-key", q.Get("api_key"))
	assert.Equal(t, "json", q.Get("format"))
	assert.Equal(t, "ws.audioscrobbler.com", req.URL.Host)
	assert.Equal(t, userAgent, req.Header.Get("User-Agent"))
}

func TestSearch_EmptyQuerySkipsAPI(t *testing.T) {
	mock := &mockTransport{}
	c := newTestClient(mock)
	ctx := context.Background()

	artists, err := c.SearchArtists(ctx, "   ", 10)
	require.NoError(t, err)
	assert.Empty(t, artists)

	albums, err := c.SearchAlbums(ctx, "", 10)
	require.NoError(t, err)
	assert.Empty(t, albums)

	tracks, err := c.SearchTracks(ctx, "\t", 10)
	require.NoError(t, err)
	assert.Empty(t, tracks)

	assert.Empty(t, mock.requests, "blank queries must not reach the API")
}

func TestSearch_InvalidLimit(t *testing.T) {
	mock := &mockTransport{}
	c := newTestClient(mock)

	_, err := c.SearchTracks(context.Background(), "creep", 0)
	require.ErrorIs(t, err, ErrInvalidLimit)
	assert.Empty(t, mock.requests)
}

func TestSearchAlbums_SingleObjectNormalizesToSlice(t *testing.T) {
	mock := &mockTransport{body: `{
		"results": {
			"albummatches": {
				"album": {
					"name": "Discovery",
					"artist": "Daft Punk",
					"url": "https://www.last.fm/music/Daft+Punk/Discovery",
					"image": [
						{"#text": "https://img/s.png", "size": "small"},
						{"#text": "https://img/m.png", "size": "medium"}
					]
				}
			}
		}
	}`}
	c := newTestClient(mock)

	albums, err := c.SearchAlbums(context.Background(), "discovery", 20)
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, "Discovery", albums[0].Name)
	assert.Equal(t, "Daft Punk", albums[0].Artist)
	assert.Len(t, albums[0].Images, 2)

	q := mock.requests[0].URL.Query()
	assert.Equal(t, "album.search", q.Get("method"))
	assert.Equal(t, "discovery", q.Get("album"))
	assert.Equal(t, "20", q.Get("limit"))
}

func TestSearchArtists_ArrayResponse(t *testing.T) {
	mock := &mockTransport{body: `{
		"results": {
			"artistmatches": {
				"artist": [
					{"name": "Muse", "listeners": "4521337", "url": "https://www.last.fm/music/Muse"},
					{"name": "Muse & Friends", "listeners": "not-a-number", "url": "https://www.last.fm/music/Muse+&+Friends"}
				]
			}
		}
	}`}
	c := newTestClient(mock)

	artists, err := c.SearchArtists(context.Background(), "muse", 12)
	require.NoError(t, err)
	require.Len(t, artists, 2)
	assert.Equal(t, Count(4521337), artists[0].Listeners)
	assert.Equal(t, Count(0), artists[1].Listeners)
}

func TestSearchTracks_MissingMatchesIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"null node", `{"results":{"trackmatches":{"track":null}}}`},
		{"empty string node", `{"results":{"trackmatches":{"track":""}}}`},
		{"missing results", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(&mockTransport{body: tt.body})
			tracks, err := c.SearchTracks(context.Background(), "x", 30)
			require.NoError(t, err)
			assert.Empty(t, tracks)
		})
	}
}

func TestSearchTracks_ArtistAsString(t *testing.T) {
	mock := &mockTransport{body: `{
		"results": {"trackmatches": {"track": [
			{"name": "Starlight", "artist": "Muse", "listeners": "1200"}
		]}}
	}`}
	c := newTestClient(mock)

	tracks, err := c.SearchTracks(context.Background(), "starlight", 10)
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "Muse", tracks[0].Artist.Name)
	assert.Equal(t, Count(1200), tracks[0].Listeners)
}

func TestCall_NonSuccessStatus(t *testing.T) {
	mock := &mockTransport{status: http.StatusServiceUnavailable, body: "upstream down"}
	c := newTestClient(mock)

	_, err := c.SearchArtists(context.Background(), "muse", 10)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, MethodArtistSearch, apiErr.Method)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.Contains(t, err.Error(), "status 503")
}

func TestCall_ErrorPayload(t *testing.T) {
	mock := &mockTransport{body: `{"error": 10, "message": "Invalid API key - You must be granted a valid key by last.fm"}`}
	c := newTestClient(mock)

	_, err := c.SearchAlbums(context.Background(), "ok computer", 10)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 10, apiErr.Code)
	assert.Contains(t, apiErr.Message, "Invalid API key")
}

func TestCall_ErrorPayloadWithClientErrorStatus(t *testing.T) {
	mock := &mockTransport{
		status: http.StatusBadRequest,
		body:   `{"error": 6, "message": "Artist not found"}`,
	}
	c := newTestClient(mock)

	_, err := c.ArtistTopTags(context.Background(), "nobody", 3)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, 6, apiErr.Code)
	assert.Equal(t, "Artist not found", apiErr.Message)
}

func TestCall_TransportError(t *testing.T) {
	netErr := errors.New("connection refused")
	c := newTestClient(&mockTransport{err: netErr})

	_, err := c.SearchTracks(context.Background(), "muse", 10)

	require.True(t, IsAPIError(err))
	assert.ErrorIs(t, err, netErr)
}

func TestCall_MalformedJSON(t *testing.T) {
	c := newTestClient(&mockTransport{body: `{"results": [`})

	_, err := c.SearchTracks(context.Background(), "muse", 10)

	require.True(t, IsAPIError(err))
	assert.Contains(t, err.Error(), "decode response")
}

func TestTopArtists(t *testing.T) {
	mock := &mockTransport{body: `{
		"artists": {
			"artist": [
				{"name": "Taylor Swift", "playcount": "100", "listeners": "50"},
				{"name": "The Weeknd", "playcount": "90", "listeners": "40"}
			],
			"@attr": {"page": "1", "perPage": "12", "totalPages": "1", "total": "2"}
		}
	}`}
	c := newTestClient(mock)

	artists, err := c.TopArtists(context.Background(), 12)
	require.NoError(t, err)
	require.Len(t, artists, 2)
	assert.Equal(t, "The Weeknd", artists[1].Name)
	assert.Equal(t, Count(100), artists[0].Playcount)
	assert.Equal(t, "chart.gettopartists", mock.requests[0].URL.Query().Get("method"))
}

func TestTopArtists_MissingNode(t *testing.T) {
	c := newTestClient(&mockTransport{body: `{"something": {}}`})

	_, err := c.TopArtists(context.Background(), 12)
	require.Error(t, err)
	assert.True(t, IsAPIError(err))
}

func TestTopTracks_ArtistAsObject(t *testing.T) {
	mock := &mockTransport{body: `{
		"tracks": {"track": [{
			"name": "Blinding Lights",
			"duration": "200",
			"playcount": "123",
			"artist": {"name": "The Weeknd", "mbid": "abc", "url": "https://www.last.fm/music/The+Weeknd"}
		}]}
	}`}
	c := newTestClient(mock)

	tracks, err := c.TopTracks(context.Background(), 18)
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "The Weeknd", tracks[0].Artist.Name)
	assert.Equal(t, "abc", tracks[0].Artist.MBID)
	assert.Equal(t, Count(200), tracks[0].Duration)
	assert.Equal(t, "3m20s", tracks[0].Length().String())
}

func TestTrackTopTags(t *testing.T) {
	mock := &mockTransport{body: `{
		"toptags": {
			"tag": [
				{"name": "pop", "count": 100, "url": "u1"},
				{"name": "synthpop", "count": 55, "url": "u2"}
			],
			"@attr": {"artist": "The Weeknd", "track": "Blinding Lights"}
		}
	}`}
	c := newTestClient(mock)

	tags, err := c.TrackTopTags(context.Background(), "The Weeknd", "Blinding Lights", 3)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "pop", tags[0].Name)
	assert.Equal(t, Count(100), tags[0].Count)

	q := mock.requests[0].URL.Query()
	assert.Equal(t, "track.gettoptags", q.Get("method"))
	assert.Equal(t, "The Weeknd", q.Get("artist"))
	assert.Equal(t, "Blinding Lights", q.Get("track"))
	assert.Equal(t, "3", q.Get("limit"))
}

func TestWithBaseURL(t *testing.T) {
	mock := &mockTransport{body: `{}`}
	c := NewClient("k",
		WithHTTPClient(&http.Client{Transport: mock}),
		WithBaseURL("http://localhost:9999/2.0/"),
	)

	_, err := c.SearchAlbums(context.Background(), "x", 1)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9999", mock.requests[0].URL.Host)
	assert.Equal(t, "/2.0/", mock.requests[0].URL.Path)
}
