//go:build js && wasm

// moodpaper WASM — Client-side wallpaper renderer.
// Compiled with: GOOS=js GOARCH=wasm go build -o moodpaper.wasm ./clients/wasm/
//
// Lets the mobile/web client preview theme edits locally without a round
// trip to the API: the exact same deterministic pipeline runs in the
// browser, so the preview is pixel-identical to the server render.
package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"syscall/js"
	"time"

	"github.com/soleren/moodpaper/pkg/theme"
	"github.com/soleren/moodpaper/pkg/wallpaper"
)

func main() {
	fmt.Println("moodpaper WASM loaded")

	js.Global().Set("goRenderWallpaper", js.FuncOf(renderWallpaper))
	js.Global().Set("goApplyThemePatch", js.FuncOf(applyThemePatch))
	js.Global().Set("goReady", js.ValueOf(true))

	// Block forever (WASM must not exit).
	select {}
}

// goRenderWallpaper(themeJSON, moodsJSON, dateKey) — render and return a
// base64 PNG. themeJSON is a patch over the default theme; dateKey may be
// "" for today.
func renderWallpaper(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("error: need themeJSON, moodsJSON")
	}

	t, err := themeFromJSON(args[0].String())
	if err != nil {
		return js.ValueOf("error: " + err.Error())
	}

	var moods map[string]theme.Mood
	if s := args[1].String(); s != "" && s != "null" {
		if err := json.Unmarshal([]byte(s), &moods); err != nil {
			return js.ValueOf("error: parse moods: " + err.Error())
		}
	}

	var today time.Time
	if len(args) >= 3 && args[2].String() != "" {
		today, err = theme.ParseDateKey(args[2].String())
		if err != nil {
			return js.ValueOf("error: " + err.Error())
		}
	}

	png, err := wallpaper.Render(t, moods, today)
	if err != nil {
		return js.ValueOf("error: render: " + err.Error())
	}

	return js.ValueOf(base64.StdEncoding.EncodeToString(png))
}

// goApplyThemePatch(themeJSON, patchJSON) — merge a patch and return the
// resulting theme JSON, using the same normalization rules as the API.
func applyThemePatch(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("error: need themeJSON, patchJSON")
	}

	t, err := themeFromJSON(args[0].String())
	if err != nil {
		return js.ValueOf("error: " + err.Error())
	}

	patch, err := theme.ParsePatch([]byte(args[1].String()))
	if err != nil {
		return js.ValueOf("error: " + err.Error())
	}

	out, err := json.Marshal(t.Apply(patch))
	if err != nil {
		return js.ValueOf("error: encode theme: " + err.Error())
	}
	return js.ValueOf(string(out))
}

// themeFromJSON treats the input as a patch over the default theme, so
// partial documents and invalid values degrade gracefully.
func themeFromJSON(raw string) (theme.Theme, error) {
	t := theme.Default()
	if raw == "" || raw == "null" || raw == "{}" {
		return t, nil
	}
	patch, err := theme.ParsePatch([]byte(raw))
	if err != nil {
		return theme.Theme{}, fmt.Errorf("parse theme: %w", err)
	}
	return t.Apply(patch), nil
}
