package state

import (
	"database/sql"
	"errors"
	"time"
)

// SearchState is the last search the user ran.
type SearchState struct {
	Query     string
	Tab       string // category link name: "top", "artists", "albums" or "tracks"
	UpdatedAt time.Time
}

func getSearch(db *sql.DB) (*SearchState, error) {
	var state SearchState
	var updatedAt int64

	err := db.QueryRow(`
		SELECT query, tab, updated_at FROM search_state WHERE id = 1
	`).Scan(&state.Query, &state.Tab, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved search is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.UpdatedAt = time.Unix(updatedAt, 0)
	return &state, nil
}

func saveSearch(db *sql.DB, state SearchState) error {
	_, err := db.Exec(`
		INSERT INTO search_state (id, query, tab, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			query = excluded.query,
			tab = excluded.tab,
			updated_at = excluded.updated_at
	`, state.Query, state.Tab, state.UpdatedAt.Unix())
	return err
}
