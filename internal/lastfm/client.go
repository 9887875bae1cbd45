// Package lastfm is a client for the Last.fm web API: artist, album and
// track search, the global charts and top tags.
package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the Last.fm API root.
	DefaultBaseURL = "https://ws.audioscrobbler.com/2.0/"

	userAgent      = "lfmbrowse/0.1 (https://github.com/llehouerou/lfmbrowse)"
	defaultTimeout = 15 * time.Second
)

// API methods used by the client.
const (
	MethodArtistSearch   = "artist.search"
	MethodAlbumSearch    = "album.search"
	MethodTrackSearch    = "track.search"
	MethodTopArtists     = "chart.gettopartists"
	MethodTopTracks      = "chart.gettoptracks"
	MethodArtistTopTags  = "artist.gettoptags"
	MethodTrackTopTags   = "track.gettoptags"
	MethodSimilarArtists = "artist.getsimilar"
	MethodArtistTracks   = "artist.gettoptracks"
)

// Client performs read-only, unauthenticated Last.fm API calls.
// It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL points the client at another API root.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient creates a client authenticating with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// call performs one GET for method and decodes the JSON body into out.
func (c *Client) call(ctx context.Context, method string, params url.Values, out any) error {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("method", method)
	q.Set("api_key", c.apiKey)
	q.Set("format", "json")

	reqURL := c.baseURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("lastfm request failed", zap.String("method", method), zap.Error(err))
		return &APIError{Method: method, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Method: method, Status: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	c.log.Debug("lastfm request",
		zap.String("method", method),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	// Error payloads come with both 2xx and 4xx statuses.
	var payload errorPayload
	_ = json.Unmarshal(body, &payload) //nolint:errcheck // non-object bodies just carry no error

	if !isSuccess(resp.StatusCode) {
		msg := payload.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{Method: method, Status: resp.StatusCode, Code: payload.Error, Message: msg}
	}
	if payload.Error != 0 {
		return &APIError{Method: method, Status: resp.StatusCode, Code: payload.Error, Message: payload.Message}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &APIError{Method: method, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func limitParam(limit int) string {
	return strconv.Itoa(limit)
}
