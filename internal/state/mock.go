package state

import (
	"database/sql"
)

// Mock is a test double for Manager.
type Mock struct {
	search *SearchState
	saves  int
	closed bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SaveSearch(state SearchState) {
	m.search = &state
	m.saves++
}

func (m *Mock) GetSearch() (*SearchState, error) {
	return m.search, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetSearch(state *SearchState) { m.search = state }

func (m *Mock) SaveCount() int { return m.saves }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
