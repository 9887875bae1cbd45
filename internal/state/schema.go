package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS search_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			query TEXT NOT NULL,
			tab TEXT NOT NULL DEFAULT 'top',
			updated_at INTEGER NOT NULL
		);

		-- Last.fm lookup caches
		CREATE TABLE IF NOT EXISTS lastfm_tag_subjects (
			subject TEXT PRIMARY KEY,
			fetched_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS lastfm_top_tags (
			subject TEXT NOT NULL REFERENCES lastfm_tag_subjects(subject) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			url TEXT,
			PRIMARY KEY (subject, position)
		);

		CREATE TABLE IF NOT EXISTS lastfm_similar_artists (
			artist TEXT NOT NULL,
			similar_artist TEXT NOT NULL,
			match_score REAL NOT NULL,
			fetched_at INTEGER NOT NULL,
			PRIMARY KEY (artist, similar_artist)
		);

		CREATE TABLE IF NOT EXISTS lastfm_artist_top_tracks (
			artist TEXT NOT NULL,
			track_name TEXT NOT NULL,
			playcount INTEGER NOT NULL,
			rank INTEGER NOT NULL,
			fetched_at INTEGER NOT NULL,
			PRIMARY KEY (artist, track_name)
		);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
