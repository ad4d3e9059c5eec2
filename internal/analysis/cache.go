package analysis

import (
	"sync"

	"pulsex/domain/core"
	"pulsex/domain/survey"
)

// MembershipCache memoizes membership vectors for one table. When it reaches
// its capacity it is cleared wholesale. Vectors are copied in and out.
type MembershipCache struct {
	mu       sync.Mutex
	table    *survey.Table
	capacity int
	entries  map[core.CriteriaHash]survey.Membership
	hits     int
	misses   int
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Entries int `json:"entries"`
	Hits    int `json:"hits"`
	Misses  int `json:"misses"`
}

// NewMembershipCache creates a cache bound to table. A capacity below 1
// disables caching.
func NewMembershipCache(table *survey.Table, capacity int) *MembershipCache {
	return &MembershipCache{
		table:    table,
		capacity: capacity,
		entries:  make(map[core.CriteriaHash]survey.Membership),
	}
}

// Membership returns the vector for criteria, computing it on a miss
func (c *MembershipCache) Membership(criteria survey.Criteria) survey.Membership {
	if c.capacity < 1 {
		return ComputeCriteriaMembership(c.table, criteria)
	}

	key := core.NewCriteriaHash(criteria.Canonical())

	c.mu.Lock()
	if cached, ok := c.entries[key]; ok {
		c.hits++
		c.mu.Unlock()
		return cached.Clone()
	}
	c.misses++
	c.mu.Unlock()

	labels := ComputeCriteriaMembership(c.table, criteria)

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.capacity {
		c.entries = make(map[core.CriteriaHash]survey.Membership)
	}
	c.entries[key] = labels.Clone()
	return labels
}

// Stats returns a snapshot of the cache counters
func (c *MembershipCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{Entries: len(c.entries), Hits: c.hits, Misses: c.misses}
}
