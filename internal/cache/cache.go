// Package cache stores Last.fm lookups in SQLite with a time-to-live.
// The tables are created by the state package.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	dbutil "github.com/llehouerou/lfmbrowse/internal/db"
	"github.com/llehouerou/lfmbrowse/internal/lastfm"
)

// Cache manages the Last.fm data cache in SQLite.
type Cache struct {
	db      *sql.DB
	ttlDays int
}

// New creates a Cache whose entries expire after ttlDays.
func New(db *sql.DB, ttlDays int) *Cache {
	return &Cache{
		db:      db,
		ttlDays: ttlDays,
	}
}

func (c *Cache) isExpired(fetchedAt int64) bool {
	return fetchedAt < dbutil.ExpiryCutoff(c.ttlDays)
}

// ArtistSubject is the tag cache key of an artist.
func ArtistSubject(artist string) string {
	return "artist:" + normalizeKey(artist)
}

// TrackSubject is the tag cache key of a track.
func TrackSubject(artist, track string) string {
	return "track:" + normalizeKey(artist) + "\x1f" + normalizeKey(track)
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Tags returns the cached top tags of subject. ok is false when nothing is
// cached or the entry expired; an empty tag list can be a valid hit.
func (c *Cache) Tags(ctx context.Context, subject string) (tags []lastfm.Tag, ok bool, err error) {
	var fetchedAt int64
	err = c.db.QueryRowContext(ctx, `
		SELECT fetched_at FROM lastfm_tag_subjects WHERE subject = ?
	`, subject).Scan(&fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if c.isExpired(fetchedAt) {
		return nil, false, nil
	}

	rows, err := c.db.QueryContext(ctx, `
		SELECT name, url FROM lastfm_top_tags
		WHERE subject = ?
		ORDER BY position ASC
	`, subject)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	for rows.Next() {
		var tag lastfm.Tag
		var url sql.NullString
		if err := rows.Scan(&tag.Name, &url); err != nil {
			return nil, false, err
		}
		tag.URL = dbutil.NullStringValue(url)
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	return tags, true, nil
}

// SetTags replaces the cached top tags of subject.
func (c *Cache) SetTags(ctx context.Context, subject string, tags []lastfm.Tag) error {
	now := time.Now().Unix()
	return dbutil.WithTx(ctx, c.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM lastfm_top_tags WHERE subject = ?`, subject); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO lastfm_tag_subjects (subject, fetched_at) VALUES (?, ?)
			ON CONFLICT(subject) DO UPDATE SET fetched_at = excluded.fetched_at
		`, subject, now); err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO lastfm_top_tags (subject, position, name, url)
			VALUES (?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, tag := range tags {
			if _, err := stmt.ExecContext(ctx, subject, i, tag.Name, dbutil.NullString(tag.URL)); err != nil {
				return err
			}
		}
		return nil
	})
}

// SimilarArtists returns cached similar artists if not expired.
// A nil result means the cache has nothing usable.
func (c *Cache) SimilarArtists(ctx context.Context, artist string) ([]lastfm.SimilarArtist, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT similar_artist, match_score, fetched_at
		FROM lastfm_similar_artists
		WHERE artist = ?
		ORDER BY match_score DESC
	`, normalizeKey(artist))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []lastfm.SimilarArtist
	for rows.Next() {
		var similar lastfm.SimilarArtist
		var fetchedAt int64
		if err := rows.Scan(&similar.Name, &similar.MatchScore, &fetchedAt); err != nil {
			return nil, err
		}
		// Entries of one artist share a timestamp.
		if c.isExpired(fetchedAt) {
			return nil, nil
		}
		result = append(result, similar)
	}

	return result, rows.Err()
}

// SetSimilarArtists caches similar artists for an artist.
func (c *Cache) SetSimilarArtists(ctx context.Context, artist string, similar []lastfm.SimilarArtist) error {
	key := normalizeKey(artist)
	now := time.Now().Unix()
	return dbutil.WithTx(ctx, c.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM lastfm_similar_artists WHERE artist = ?`, key); err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT OR REPLACE INTO lastfm_similar_artists (artist, similar_artist, match_score, fetched_at)
			VALUES (?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, s := range similar {
			if _, err := stmt.ExecContext(ctx, key, s.Name, s.MatchScore, now); err != nil {
				return err
			}
		}
		return nil
	})
}

// ArtistTopTracks returns cached top tracks if not expired.
// A nil result means the cache has nothing usable.
func (c *Cache) ArtistTopTracks(ctx context.Context, artist string) ([]lastfm.TopTrack, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT track_name, playcount, rank, fetched_at
		FROM lastfm_artist_top_tracks
		WHERE artist = ?
		ORDER BY rank ASC
	`, normalizeKey(artist))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []lastfm.TopTrack
	for rows.Next() {
		var track lastfm.TopTrack
		var fetchedAt int64
		if err := rows.Scan(&track.Name, &track.Playcount, &track.Rank, &fetchedAt); err != nil {
			return nil, err
		}
		if c.isExpired(fetchedAt) {
			return nil, nil
		}
		result = append(result, track)
	}

	return result, rows.Err()
}

// SetArtistTopTracks caches top tracks for an artist.
func (c *Cache) SetArtistTopTracks(ctx context.Context, artist string, tracks []lastfm.TopTrack) error {
	key := normalizeKey(artist)
	now := time.Now().Unix()
	return dbutil.WithTx(ctx, c.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM lastfm_artist_top_tracks WHERE artist = ?`, key); err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT OR REPLACE INTO lastfm_artist_top_tracks (artist, track_name, playcount, rank, fetched_at)
			VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, t := range tracks {
			if _, err := stmt.ExecContext(ctx, key, t.Name, t.Playcount, t.Rank, now); err != nil {
				return err
			}
		}
		return nil
	})
}

// CleanExpired removes all expired cache entries.
func (c *Cache) CleanExpired(ctx context.Context) error {
	expiry := dbutil.ExpiryCutoff(c.ttlDays)

	return dbutil.WithTx(ctx, c.db, func(tx *sql.Tx) error {
		stmts := []string{
			`DELETE FROM lastfm_top_tags WHERE subject IN
				(SELECT subject FROM lastfm_tag_subjects WHERE fetched_at < ?)`,
			`DELETE FROM lastfm_tag_subjects WHERE fetched_at < ?`,
			`DELETE FROM lastfm_similar_artists WHERE fetched_at < ?`,
			`DELETE FROM lastfm_artist_top_tracks WHERE fetched_at < ?`,
		}
		for _, q := range stmts {
			if _, err := tx.ExecContext(ctx, q, expiry); err != nil {
				return err
			}
		}
		return nil
	})
}
