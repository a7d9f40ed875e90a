// Package theme models the wallpaper theme and mood entries, plus the
// normalization and patch rules that keep them valid. Invalid values never
// error out of this package — they fall back to the previous or default
// value so a render is always possible.
package theme

import (
	"fmt"
	"strings"
	"time"
)

// DateKeyFormat is the canonical mood-entry key layout, e.g. "2026-02-14".
const DateKeyFormat = "2006-01-02"

// Mood level bounds.
const (
	MinMoodLevel = 1
	MaxMoodLevel = 5
)

// MaxNoteLength bounds the optional free-text note on a mood entry.
const MaxNoteLength = 240

// Shape values. ShapeRough is a legacy value: accepted, rendered as rounded.
const (
	ShapeRounded = "rounded"
	ShapeSquare  = "square"
	ShapeRough   = "rough"
)

// Theme holds every user-tunable rendering setting.
type Theme struct {
	BGColor    string            `json:"bg_color"`
	MoodColors map[string]string `json:"mood_colors"` // keys "1".."5"
	// EmptyColor is the explicit "no entry" dot color. Empty string means
	// "derive from the background".
	EmptyColor        string `json:"empty_color,omitempty"`
	Shape             string `json:"shape"`
	Spacing           string `json:"spacing"`
	Position          string `json:"position"`
	AvoidLockScreenUI bool   `json:"avoid_lock_screen_ui"`
	Columns           int    `json:"columns"`
	// BGImageURL is an opaque passthrough for clients; rendering ignores it.
	BGImageURL string `json:"bg_image_url,omitempty"`
}

// Mood is one day's logged entry. Only Level affects rendering.
type Mood struct {
	Level int    `json:"level"`
	Note  string `json:"note,omitempty"`
}

// Default returns a fresh copy of the default theme.
func Default() Theme {
	return Theme{
		BGColor: "#0d1117",
		MoodColors: map[string]string{
			"1": "#ef4444",
			"2": "#f97316",
			"3": "#eab308",
			"4": "#22c55e",
			"5": "#3b82f6",
		},
		EmptyColor:        "",
		Shape:             ShapeRounded,
		Spacing:           "medium",
		Position:          "clock",
		AvoidLockScreenUI: false,
		Columns:           14,
		BGImageURL:        "",
	}
}

// Clone returns a deep copy of t (the mood color map is not shared).
func (t Theme) Clone() Theme {
	out := t
	out.MoodColors = make(map[string]string, len(t.MoodColors))
	for k, v := range t.MoodColors {
		out.MoodColors[k] = v
	}
	return out
}

// ValidateMood checks a mood entry's level and note bounds.
func ValidateMood(m Mood) error {
	if m.Level < MinMoodLevel || m.Level > MaxMoodLevel {
		return fmt.Errorf("mood level %d out of range [%d, %d]", m.Level, MinMoodLevel, MaxMoodLevel)
	}
	if len(m.Note) > MaxNoteLength {
		return fmt.Errorf("mood note is %d chars, max %d", len(m.Note), MaxNoteLength)
	}
	return nil
}

// ParseDateKey parses a strict YYYY-MM-DD date key. The parsed date must
// round-trip to the same string, so "2026-2-14" and other loose spellings
// are rejected.
func ParseDateKey(key string) (time.Time, error) {
	parsed, err := time.ParseInLocation(DateKeyFormat, key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date key %q: %w", key, err)
	}
	if parsed.Format(DateKeyFormat) != key {
		return time.Time{}, fmt.Errorf("parse date key %q: not canonical", key)
	}
	return parsed, nil
}

// NormalizeHexColor accepts "rrggbb" or "#rrggbb" (any case, surrounding
// whitespace tolerated) and returns the canonical lowercase "#rrggbb" form.
// Anything else returns fallback.
func NormalizeHexColor(value, fallback string) string {
	trimmed := strings.TrimSpace(value)

	var candidate string
	switch {
	case len(trimmed) == 7 && trimmed[0] == '#':
		candidate = trimmed[1:]
	case len(trimmed) == 6:
		candidate = trimmed
	default:
		return fallback
	}

	for i := 0; i < len(candidate); i++ {
		c := candidate[i]
		isHex := ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
		if !isHex {
			return fallback
		}
	}

	return "#" + strings.ToLower(candidate)
}

// NormalizeColumns keeps a column count within [7, 31]; out-of-range input
// falls back (typically to the theme's current value).
func NormalizeColumns(value, fallback int) int {
	if value < 7 || value > 31 {
		return fallback
	}
	return value
}

// NormalizeShape accepts rounded, square, and the legacy rough value.
func NormalizeShape(value, fallback string) string {
	switch value {
	case ShapeRounded, ShapeSquare, ShapeRough:
		return value
	}
	return fallback
}

// NormalizeSpacing accepts tight, medium, and wide.
func NormalizeSpacing(value, fallback string) string {
	switch value {
	case "tight", "medium", "wide":
		return value
	}
	return fallback
}

// NormalizePosition accepts clock and center.
func NormalizePosition(value, fallback string) string {
	switch value {
	case "clock", "center":
		return value
	}
	return fallback
}
