// Package cache memoizes pricing results for repeated interactive previews.
// Entries are keyed strictly by input fingerprint, so concurrent callers with
// different inputs never observe each other's results.
package cache

import (
	"sync"

	"github.com/mbeaudry/quotient/internal/domain/quote"
)

// Cache is the injectable result-cache abstraction consulted by the
// orchestrator's optimized path.
type Cache interface {
	Get(fingerprint string) (*quote.PricingResult, bool)
	Put(fingerprint string, result *quote.PricingResult)
	Invalidate(fingerprint string)
	Clear()
	Len() int
}

// Stats counts cache traffic. Eviction counts only capacity evictions, not
// explicit invalidation.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Memory is a process-scoped Cache bounded by a fixed capacity with oldest
// insertion-first eviction. Safe for concurrent use.
type Memory struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*quote.PricingResult
	order    []string
	stats    Stats
}

// NewMemory creates a Memory cache. A capacity of zero or below disables
// eviction entirely; correctness never depends on eviction, only memory use.
func NewMemory(capacity int) *Memory {
	return &Memory{
		capacity: capacity,
		entries:  make(map[string]*quote.PricingResult),
	}
}

// Get returns the cached result for the fingerprint, if present.
func (m *Memory) Get(fingerprint string) (*quote.PricingResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result, ok := m.entries[fingerprint]
	if ok {
		m.stats.Hits++
	} else {
		m.stats.Misses++
	}
	return result, ok
}

// Put stores a result under the fingerprint, evicting the oldest entry when
// the capacity bound is reached.
func (m *Memory) Put(fingerprint string, result *quote.PricingResult) {
	if result == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[fingerprint]; exists {
		m.entries[fingerprint] = result
		return
	}

	if m.capacity > 0 && len(m.entries) >= m.capacity {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.entries, oldest)
		m.stats.Evictions++
	}

	m.entries[fingerprint] = result
	m.order = append(m.order, fingerprint)
}

// Invalidate removes one entry by fingerprint.
func (m *Memory) Invalidate(fingerprint string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[fingerprint]; !exists {
		return
	}

	delete(m.entries, fingerprint)
	for i, key := range m.order {
		if key == fingerprint {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Clear drops every entry.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]*quote.PricingResult)
	m.order = nil
}

// Len reports the number of cached results.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Stats returns a snapshot of the traffic counters.
func (m *Memory) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}
