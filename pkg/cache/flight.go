// flight.go — Render stampede guard.
// Concurrent requests for the same (identity, revision) share one render
// instead of each burning a full-canvas raster pass.
package cache

import "golang.org/x/sync/singleflight"

// RenderFunc produces wallpaper bytes on a cache miss.
type RenderFunc func() ([]byte, error)

// Flight combines a Cache with in-flight render deduplication.
type Flight struct {
	cache Cache
	group singleflight.Group
}

// NewFlight wraps a cache with a single-flight render coordinator.
func NewFlight(c Cache) *Flight {
	return &Flight{cache: c}
}

// Do returns cached bytes for (identity, revision) or renders them, making
// sure at most one render runs per key even under concurrent callers.
// Render errors are not cached.
func (f *Flight) Do(identity, revision string, render RenderFunc) ([]byte, error) {
	if png, ok := f.cache.Get(identity, revision); ok {
		return png, nil
	}

	v, err, _ := f.group.Do(identity+"\x00"+revision, func() (interface{}, error) {
		// A concurrent caller may have filled the cache while this one
		// waited on the group.
		if png, ok := f.cache.Get(identity, revision); ok {
			return png, nil
		}
		png, err := render()
		if err != nil {
			return nil, err
		}
		f.cache.Set(identity, revision, png)
		return png, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Invalidate drops the cached bytes for identity.
func (f *Flight) Invalidate(identity string) {
	f.cache.Invalidate(identity)
}
