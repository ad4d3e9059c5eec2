package dataset

import (
	"sync"

	"pulsex/domain/survey"
	"pulsex/internal/errors"
)

// Store holds the survey table as process-wide immutable state.
// The table is produced exactly once; there is no invalidation path.
type Store struct {
	once   sync.Once
	table  *survey.Table
	source string
	err    error
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// Init runs load on the first call only. Later calls return the outcome of
// the first one, whatever load they are given.
func (s *Store) Init(source string, load func() (*survey.Table, error)) (*survey.Table, error) {
	s.once.Do(func() {
		table, err := load()
		if err == nil && table == nil {
			err = errors.InternalError("dataset loader returned no table")
		}
		s.table, s.source, s.err = table, source, err
	})
	return s.table, s.err
}

// Table returns the loaded table, or nil before a successful Init
func (s *Store) Table() *survey.Table {
	return s.table
}

// Source describes where the table came from
func (s *Store) Source() string {
	return s.source
}
