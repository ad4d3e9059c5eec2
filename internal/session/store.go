package session

import (
	"context"
	"sync"
	"time"

	"pulsex/domain/core"
	"pulsex/domain/survey"
)

// Store is an in-memory SessionRepository. A session is idle when it has
// been neither read nor saved for longer than the TTL; idle entries are
// dropped on access and by Prune.
type Store struct {
	mu      sync.Mutex
	entries map[core.SessionID]entry
	ttl     time.Duration
	now     func() time.Time
}

type entry struct {
	criteria survey.Criteria
	lastSeen time.Time
}

// NewStore creates an empty session store
func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[core.SessionID]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// LastCriteria returns a copy of the criteria last saved for the session
// and marks the session as active
func (s *Store) LastCriteria(ctx context.Context, sessionID core.SessionID) (survey.Criteria, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sessionID]
	if !ok {
		return survey.Criteria{}, false
	}
	if s.expired(e) {
		delete(s.entries, sessionID)
		return survey.Criteria{}, false
	}
	e.lastSeen = s.now()
	s.entries[sessionID] = e
	return copyCriteria(e.criteria), true
}

// SaveCriteria stores a copy of criteria for the session
func (s *Store) SaveCriteria(ctx context.Context, sessionID core.SessionID, criteria survey.Criteria) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionID] = entry{criteria: copyCriteria(criteria), lastSeen: s.now()}
	return nil
}

// Prune removes expired sessions and returns how many were dropped
func (s *Store) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.entries {
		if s.expired(e) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked sessions
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) expired(e entry) bool {
	return s.ttl > 0 && s.now().Sub(e.lastSeen) > s.ttl
}

func copyCriteria(c survey.Criteria) survey.Criteria {
	out := survey.Criteria{
		Genders:    append([]string(nil), c.Genders...),
		Races:      append([]string(nil), c.Races...),
		Educations: append([]string(nil), c.Educations...),
	}
	if c.Age != nil {
		age := *c.Age
		out.Age = &age
	}
	return out
}
