// patch.go — Partial theme updates.
// Optional fields are tri-state (absent / present-null / present-value) so
// "clear the empty color" and "leave the empty color alone" stay distinct
// through a JSON round trip.
package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Opt is a tri-state optional patch field.
type Opt[T any] struct {
	Present bool // the key appeared in the payload
	Null    bool // the key was explicitly null
	Value   T
}

// set returns an Opt carrying a value.
func set[T any](v T) Opt[T] {
	return Opt[T]{Present: true, Value: v}
}

// null returns an Opt carrying an explicit null.
func null[T any]() Opt[T] {
	return Opt[T]{Present: true, Null: true}
}

// Patch is a partial theme update. Zero-value fields are "absent" and leave
// the current theme untouched when applied.
type Patch struct {
	BGColor           Opt[string]
	EmptyColor        Opt[string]
	Shape             Opt[string]
	Spacing           Opt[string]
	Position          Opt[string]
	AvoidLockScreenUI Opt[bool]
	Columns           Opt[int]
	BGImageURL        Opt[string]
	MoodColors        Opt[map[string]string]
}

// patchKeyAliases maps each patch field to its accepted payload keys, in
// priority order (snake_case wins over the camelCase alias).
var patchKeyAliases = map[string][]string{
	"bg_color":             {"bg_color", "bgColor"},
	"empty_color":          {"empty_color", "emptyColor"},
	"shape":                {"shape"},
	"spacing":              {"spacing"},
	"position":             {"position"},
	"avoid_lock_screen_ui": {"avoid_lock_screen_ui", "avoidLockScreenUi"},
	"columns":              {"columns", "gridColumns"},
	"bg_image_url":         {"bg_image_url", "bgImageUrl"},
	"mood_colors":          {"mood_colors", "moodColors"},
}

// ParsePatch decodes a JSON object into a Patch, tracking which keys were
// present and which were explicitly null.
func ParsePatch(payload []byte) (Patch, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return Patch{}, fmt.Errorf("parse theme patch: %w", err)
	}

	lookup := func(field string) (json.RawMessage, bool) {
		for _, key := range patchKeyAliases[field] {
			if v, ok := raw[key]; ok {
				return v, true
			}
		}
		return nil, false
	}

	var p Patch
	p.BGColor = optString(lookup, "bg_color")
	p.EmptyColor = optString(lookup, "empty_color")
	p.Shape = optString(lookup, "shape")
	p.Spacing = optString(lookup, "spacing")
	p.Position = optString(lookup, "position")
	p.BGImageURL = optString(lookup, "bg_image_url")

	if v, ok := lookup("avoid_lock_screen_ui"); ok {
		if isJSONNull(v) {
			p.AvoidLockScreenUI = null[bool]()
		} else {
			var b bool
			if err := json.Unmarshal(v, &b); err == nil {
				p.AvoidLockScreenUI = set(b)
			}
		}
	}

	if v, ok := lookup("columns"); ok {
		if isJSONNull(v) {
			p.Columns = null[int]()
		} else {
			var n int
			if err := json.Unmarshal(v, &n); err == nil {
				p.Columns = set(n)
			}
		}
	}

	if v, ok := lookup("mood_colors"); ok && !isJSONNull(v) {
		var m map[string]string
		if err := json.Unmarshal(v, &m); err == nil {
			p.MoodColors = set(m)
		}
	}

	return p, nil
}

func optString(lookup func(string) (json.RawMessage, bool), field string) Opt[string] {
	v, ok := lookup(field)
	if !ok {
		return Opt[string]{}
	}
	if isJSONNull(v) {
		return null[string]()
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return Opt[string]{}
	}
	return set(s)
}

func isJSONNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// Apply merges a patch onto t and returns the result. Every field keeps its
// last-known-good value when the patch carries something invalid.
func (t Theme) Apply(p Patch) Theme {
	next := t.Clone()
	if len(next.MoodColors) == 0 {
		next.MoodColors = Default().MoodColors
	}

	if p.BGColor.Present && !p.BGColor.Null {
		if c := NormalizeHexColor(p.BGColor.Value, ""); c != "" {
			next.BGColor = c
		}
	}

	// Explicit null reverts to the derived empty color.
	if p.EmptyColor.Present {
		if p.EmptyColor.Null {
			next.EmptyColor = ""
		} else if c := NormalizeHexColor(p.EmptyColor.Value, ""); c != "" {
			next.EmptyColor = c
		}
	}

	if p.Shape.Present && !p.Shape.Null {
		next.Shape = NormalizeShape(p.Shape.Value, next.Shape)
	}
	if p.Spacing.Present && !p.Spacing.Null {
		next.Spacing = NormalizeSpacing(p.Spacing.Value, next.Spacing)
	}
	if p.Position.Present && !p.Position.Null {
		next.Position = NormalizePosition(p.Position.Value, next.Position)
	}

	if p.AvoidLockScreenUI.Present && !p.AvoidLockScreenUI.Null {
		next.AvoidLockScreenUI = p.AvoidLockScreenUI.Value
	}

	if p.Columns.Present && !p.Columns.Null {
		next.Columns = NormalizeColumns(p.Columns.Value, next.Columns)
	}

	if p.BGImageURL.Present {
		if p.BGImageURL.Null {
			next.BGImageURL = ""
		} else {
			next.BGImageURL = p.BGImageURL.Value
		}
	}

	if p.MoodColors.Present && !p.MoodColors.Null {
		for level := MinMoodLevel; level <= MaxMoodLevel; level++ {
			key := strconv.Itoa(level)
			if c := NormalizeHexColor(p.MoodColors.Value[key], ""); c != "" {
				next.MoodColors[key] = c
			}
		}
	}

	return next
}

// PreviewPatch builds an ephemeral patch from wallpaper-preview query
// parameters. Only layout-affecting settings are exposed this way.
func PreviewPatch(query url.Values) Patch {
	var p Patch

	for _, key := range patchKeyAliases["columns"] {
		if v := query.Get(key); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				p.Columns = set(n)
			}
			break
		}
	}

	for _, key := range patchKeyAliases["avoid_lock_screen_ui"] {
		if v := query.Get(key); v != "" {
			switch v {
			case "true", "1":
				p.AvoidLockScreenUI = set(true)
			case "false", "0":
				p.AvoidLockScreenUI = set(false)
			}
			break
		}
	}

	return p
}
