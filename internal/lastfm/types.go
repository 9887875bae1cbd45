package lastfm

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Image is one size variant of an artist, album or track picture.
type Image struct {
	URL  string `json:"#text"`
	Size string `json:"size"`
}

// Tag is a user-applied tag as returned by the *.gettoptags methods.
type Tag struct {
	Name  string `json:"name"`
	Count Count  `json:"count"`
	URL   string `json:"url"`
}

// Artist is an artist from a search or chart response.
type Artist struct {
	Name      string      `json:"name"`
	MBID      string      `json:"mbid"`
	URL       string      `json:"url"`
	Listeners Count       `json:"listeners"`
	Playcount Count       `json:"playcount"`
	Images    List[Image] `json:"image"`
}

// Album is an album from a search response.
type Album struct {
	Name   string      `json:"name"`
	Artist string      `json:"artist"`
	MBID   string      `json:"mbid"`
	URL    string      `json:"url"`
	Images List[Image] `json:"image"`
}

// Track is a track from a search or chart response.
type Track struct {
	Name      string      `json:"name"`
	Artist    ArtistRef   `json:"artist"`
	MBID      string      `json:"mbid"`
	URL       string      `json:"url"`
	Duration  Count       `json:"duration"` // seconds, 0 when unknown
	Playcount Count       `json:"playcount"`
	Listeners Count       `json:"listeners"`
	Images    List[Image] `json:"image"`
}

// Length returns the track duration, or 0 when Last.fm does not know it.
func (t Track) Length() time.Duration {
	return time.Duration(t.Duration) * time.Second
}

// SimilarArtist represents a similar artist from Last.fm.
type SimilarArtist struct {
	Name       string
	MatchScore float64 // 0.0-1.0 similarity score
}

// TopTrack represents a top track for an artist from Last.fm.
type TopTrack struct {
	Name      string
	Playcount int
	Rank      int
}

// ArtistRef is the artist a track belongs to. Search responses send a bare
// name, chart responses send an object; both decode here.
type ArtistRef struct {
	Name string `json:"name"`
	MBID string `json:"mbid"`
	URL  string `json:"url"`
}

func (a *ArtistRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		*a = ArtistRef{}
		return json.Unmarshal(data, &a.Name)
	}
	type plain ArtistRef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = ArtistRef(p)
	return nil
}

// Count is a numeric counter. Last.fm encodes most of them as strings.
// Values that do not parse decode to zero.
type Count int64

func (c *Count) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if s == "" || s == "null" {
		*c = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		*c = 0
		return nil //nolint:nilerr // malformed counters are treated as unknown
	}
	*c = Count(n)
	return nil
}

// List decodes a node that Last.fm sends as an array when there are several
// matches, as a bare object when there is exactly one, and as null or an
// empty string when there are none.
type List[T any] []T

func (l *List[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")), data[0] == '"':
		*l = nil
	case data[0] == '[':
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*l = items
	default:
		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			return err
		}
		*l = List[T]{item}
	}
	return nil
}

// Response envelopes.

type errorPayload struct {
	Error   int    `json:"error"`
	Message string `json:"message"`
}

type artistSearchResponse struct {
	Results struct {
		Matches struct {
			Artist List[Artist] `json:"artist"`
		} `json:"artistmatches"`
	} `json:"results"`
}

type albumSearchResponse struct {
	Results struct {
		Matches struct {
			Album List[Album] `json:"album"`
		} `json:"albummatches"`
	} `json:"results"`
}

type trackSearchResponse struct {
	Results struct {
		Matches struct {
			Track List[Track] `json:"track"`
		} `json:"trackmatches"`
	} `json:"results"`
}

type topArtistsResponse struct {
	Artists *struct {
		Artist List[Artist] `json:"artist"`
	} `json:"artists"`
}

type topTracksResponse struct {
	Tracks *struct {
		Track List[Track] `json:"track"`
	} `json:"tracks"`
}

type topTagsResponse struct {
	TopTags struct {
		Tag List[Tag] `json:"tag"`
	} `json:"toptags"`
}
