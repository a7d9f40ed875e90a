// Package cache stores rendered wallpaper bytes per user.
//
// Entries are keyed by (identity, revision) where the revision is any opaque
// marker that changes when the user's theme or moods change. Entries are also
// day-sensitive: a wallpaper rendered yesterday is stale today, because the
// future/empty cutoff moves at midnight.
package cache

import (
	"sync"
	"time"
)

// Cache is the wallpaper byte cache consumed by the HTTP surface.
type Cache interface {
	// Get returns the cached bytes for identity if they were rendered
	// under the same revision on the current calendar day.
	Get(identity, revision string) ([]byte, bool)
	// Set stores freshly rendered bytes for identity under revision.
	Set(identity, revision string, png []byte)
	// Invalidate drops any entry for identity.
	Invalidate(identity string)
}

type entry struct {
	day      string // calendar day the bytes were rendered on
	revision string
	png      []byte
}

// Memory is a size-bounded in-memory Cache. The zero value is not usable;
// construct with NewMemory.
type Memory struct {
	mu         sync.Mutex
	entries    map[string]entry
	order      []string // identities in insertion order, oldest first
	maxEntries int
	now        func() time.Time
}

// NewMemory creates a Memory cache holding at most maxEntries users.
// maxEntries <= 0 means unbounded.
func NewMemory(maxEntries int) *Memory {
	return &Memory{
		entries:    make(map[string]entry),
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (m *Memory) day() string {
	return m.now().Format("2006-01-02")
}

// Get implements Cache.
func (m *Memory) Get(identity, revision string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[identity]
	if !ok || e.revision != revision || e.day != m.day() {
		return nil, false
	}
	return e.png, true
}

// Set implements Cache.
func (m *Memory) Set(identity, revision string, png []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[identity]; !exists {
		if m.maxEntries > 0 && len(m.entries) >= m.maxEntries {
			m.evictOldestLocked()
		}
		m.order = append(m.order, identity)
	}
	m.entries[identity] = entry{day: m.day(), revision: revision, png: png}
}

// Invalidate implements Cache.
func (m *Memory) Invalidate(identity string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked(identity)
}

func (m *Memory) evictOldestLocked() {
	if len(m.order) == 0 {
		return
	}
	m.removeLocked(m.order[0])
}

func (m *Memory) removeLocked(identity string) {
	if _, ok := m.entries[identity]; !ok {
		return
	}
	delete(m.entries, identity)
	for i, id := range m.order {
		if id == identity {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Len reports the number of cached identities.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
