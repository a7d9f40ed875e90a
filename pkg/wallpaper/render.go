// Package wallpaper renders a year-in-pixels mood calendar as a
// 1290×2796 lockscreen PNG.
//
// The pipeline is pure and deterministic: identical theme, moods, and render
// date always produce byte-identical output. Bad input values (colors,
// shapes, column counts) fall back to defaults rather than failing — a
// user-facing wallpaper render should always produce some correct image.
package wallpaper

import (
	"time"

	"github.com/soleren/moodpaper/pkg/theme"
)

// Render draws the wallpaper for the year of today. A zero today means the
// current date. The returned bytes are a complete PNG stream.
//
// Rendering a full canvas is a bounded but non-trivial amount of CPU work
// (~3.6M pixels); callers serving concurrent requests should run each call
// on its own goroutine and dedupe with a cache keyed by (identity, revision).
func Render(t theme.Theme, moods map[string]theme.Mood, today time.Time) ([]byte, error) {
	if today.IsZero() {
		today = time.Now()
	}
	year := today.Year()

	lay := ResolveLayout(LayoutParams{
		Columns:           theme.NormalizeColumns(t.Columns, theme.Default().Columns),
		Spacing:           t.Spacing,
		Position:          t.Position,
		Shape:             t.Shape,
		AvoidLockScreenUI: t.AvoidLockScreenUI,
	}, year)

	pal := BuildPalette(t)

	canvas := NewCanvas(CanvasWidth, CanvasHeight)
	top, bottom := BackgroundGradient(pal.Background)
	canvas.FillGradient(top, bottom)

	for _, dot := range ClassifyDays(year, today, moods, pal, lay) {
		col := ApplyReadability(dot.Color, pal.Background, dot.Kind, dot.CenterX, dot.CenterY)
		canvas.FillCell(dot.X, dot.Y, lay.DotSize, lay.DotSize, col, lay.Radius)
	}

	return EncodePNG(canvas.Width, canvas.Height, canvas.Pix)
}
