// store.go — Wallpaper-token lookup seam.
// Accounts, sessions, and persistence live outside this repo; the server
// only needs a way to resolve a token into render inputs plus a revision
// marker that changes whenever those inputs change.
package server

import (
	"errors"
	"sync"

	"github.com/soleren/moodpaper/pkg/theme"
)

// ErrTokenNotFound is returned for tokens no user owns. It is the only
// store failure surfaced to wallpaper clients.
var ErrTokenNotFound = errors.New("wallpaper token not found")

// User bundles everything a wallpaper render needs for one subject.
type User struct {
	ID string
	// Revision is an opaque marker (e.g. an updated-at timestamp) that
	// changes whenever Theme or Moods change. It keys the render cache.
	Revision string
	Theme    theme.Theme
	Moods    map[string]theme.Mood
}

// Store resolves wallpaper tokens. Implementations backed by a real
// database plug in here.
type Store interface {
	ByWallpaperToken(token string) (User, error)
}

// MemoryStore is an in-memory Store for serve mode and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	byToken map[string]User
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byToken: make(map[string]User)}
}

// Put registers or replaces the user behind a token.
func (s *MemoryStore) Put(token string, user User) {
	s.mu.Lock()
	s.byToken[token] = user
	s.mu.Unlock()
}

// ByWallpaperToken implements Store.
func (s *MemoryStore) ByWallpaperToken(token string) (User, error) {
	s.mu.RLock()
	user, ok := s.byToken[token]
	s.mu.RUnlock()
	if !ok {
		return User{}, ErrTokenNotFound
	}
	return user, nil
}
