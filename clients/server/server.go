// Package server exposes the wallpaper renderer over HTTP.
//
// Routes:
//
//	GET /w/{token}          — the subject's current wallpaper PNG (cached)
//	GET /w/{token}/preview  — ephemeral theme override via query params (uncached)
//	GET /healthz            — liveness
package server

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/soleren/moodpaper/pkg/cache"
	"github.com/soleren/moodpaper/pkg/theme"
	"github.com/soleren/moodpaper/pkg/wallpaper"
)

// cacheHeaders keep server-side caching while preventing clients and
// proxies from reusing stale wallpaper bytes after a theme/mood update.
var cacheHeaders = map[string]string{
	"Cache-Control": "no-store, max-age=0",
	"Pragma":        "no-cache",
	"Expires":       "0",
}

// Server wires the store, the render cache, and the core renderer.
type Server struct {
	store  Store
	flight *cache.Flight
	now    func() time.Time
}

// New creates a Server. The cache is injected so lifetime and eviction
// policy stay the caller's decision.
func New(store Store, c cache.Cache) *Server {
	return &Server{
		store:  store,
		flight: cache.NewFlight(c),
		now:    time.Now,
	}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /w/{token}", s.handleWallpaper)
	mux.HandleFunc("GET /w/{token}/preview", s.handlePreview)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// ListenAndServe runs the server on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("moodpaper API → http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleWallpaper(w http.ResponseWriter, r *http.Request) {
	user, ok := s.lookup(w, r)
	if !ok {
		return
	}

	png, err := s.flight.Do(user.ID, user.Revision, func() ([]byte, error) {
		return wallpaper.Render(user.Theme, user.Moods, s.now())
	})
	if err != nil {
		log.Printf("render wallpaper for %s: %v", user.ID, err)
		http.Error(w, "wallpaper render failed", http.StatusInternalServerError)
		return
	}

	writePNG(w, png)
}

// handlePreview applies query-parameter overrides to the stored theme and
// renders fresh, without persisting or caching anything.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	user, ok := s.lookup(w, r)
	if !ok {
		return
	}

	previewTheme := user.Theme.Apply(theme.PreviewPatch(r.URL.Query()))
	png, err := wallpaper.Render(previewTheme, user.Moods, s.now())
	if err != nil {
		log.Printf("render preview for %s: %v", user.ID, err)
		http.Error(w, "wallpaper render failed", http.StatusInternalServerError)
		return
	}

	writePNG(w, png)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (User, bool) {
	user, err := s.store.ByWallpaperToken(r.PathValue("token"))
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			http.Error(w, "Wallpaper token not found.", http.StatusNotFound)
		} else {
			log.Printf("token lookup: %v", err)
			http.Error(w, "store lookup failed", http.StatusInternalServerError)
		}
		return User{}, false
	}
	return user, true
}

func writePNG(w http.ResponseWriter, png []byte) {
	for k, v := range cacheHeaders {
		w.Header().Set(k, v)
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
